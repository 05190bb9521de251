// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package monophyly

import (
	"errors"
	"fmt"

	"github.com/js-arias/blind"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot saves a bar chart with the proportion
// of monophyletic gene tree files
// of each species.
// The format of the image is taken
// from the file extension.
func (r *Results) Plot(name string) error {
	sp := r.Species()
	if len(sp) == 0 {
		return errors.New("no tested species")
	}

	p := plot.New()
	p.Y.Label.Text = "monophyletic gene trees (proportion)"
	p.Y.Min = 0
	p.Y.Max = 1

	w := vg.Points(12)
	for i, s := range sp {
		prop, _ := r.Proportion(s)
		bars, err := plotter.NewBarChart(plotter.Values{prop}, w)
		if err != nil {
			return fmt.Errorf("while building chart: %v", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = blind.Gradient(prop)
		bars.XMin = float64(i)
		p.Add(bars)
	}
	p.NominalX(sp...)

	width := vg.Length(len(sp))*2*w + 2*vg.Inch
	if err := p.Save(width, 4*vg.Inch, name); err != nil {
		return err
	}
	return nil
}
