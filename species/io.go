// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package species

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadTable reads the assignment of individuals to species
// from a plain text table.
//
// Each line of the table contains at least two fields,
// separated by spaces or tabs:
//
//   - the ID of the individual, as used in the gene trees
//   - the species label
//
// Any other field is ignored.
// Empty lines,
// and lines starting with '#',
// are ignored.
//
// Here is an example file:
//
//	# individuals
//	ind1	sp1
//	ind2	sp1
//	ind3	sp2
func ReadTable(r io.Reader) (*Map, error) {
	m := New()

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, fmt.Errorf("on line %d: expecting individual and species, found %q", ln, line)
		}
		m.Add(f[0], f[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("on line %d: %v", ln+1, err)
	}
	return m, nil
}

// TSV writes the map as a TSV file.
func (m *Map) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	// header
	header := []string{"species", "individual"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, sp := range m.Labels() {
		for _, id := range m.Members(sp) {
			row := []string{
				sp,
				id,
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
