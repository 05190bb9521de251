// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package species provides an assignment
// of sampled individuals
// to species.
package species

import "slices"

// Map is a table of individuals
// assigned to a species.
type Map struct {
	ind  map[string]string
	dups map[string]bool
}

// New creates a new empty map.
func New() *Map {
	return &Map{
		ind:  make(map[string]string),
		dups: make(map[string]bool),
	}
}

// Add assigns an individual to a species.
// If the individual was already assigned,
// the new species replaces the previous one,
// and the individual is recorded as duplicated.
func (m *Map) Add(id, sp string) {
	if id == "" || sp == "" {
		return
	}
	if _, ok := m.ind[id]; ok {
		m.dups[id] = true
	}
	m.ind[id] = sp
}

// Species returns the species assigned to an individual.
func (m *Map) Species(id string) (string, bool) {
	sp, ok := m.ind[id]
	return sp, ok
}

// Len returns the number of individuals in the map.
func (m *Map) Len() int {
	return len(m.ind)
}

// Individuals returns the individuals
// defined in the map.
func (m *Map) Individuals() []string {
	ids := make([]string, 0, len(m.ind))
	for id := range m.ind {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Labels returns the species labels
// defined in the map.
func (m *Map) Labels() []string {
	set := make(map[string]bool)
	for _, sp := range m.ind {
		set[sp] = true
	}

	labels := make([]string, 0, len(set))
	for sp := range set {
		labels = append(labels, sp)
	}
	slices.Sort(labels)
	return labels
}

// Members returns the individuals
// assigned to a given species.
func (m *Map) Members(sp string) []string {
	var ids []string
	for id, s := range m.ind {
		if s != sp {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Dups returns the individuals
// that were assigned more than once.
func (m *Map) Dups() []string {
	ids := make([]string, 0, len(m.dups))
	for id := range m.dups {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
