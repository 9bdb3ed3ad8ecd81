// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

import (
	"github.com/jiangyuinsar/pylith/inp"

	"github.com/cpmech/gosl/chk"
)

// Solution holds the array of subfields composites that make up the
// solution field. It is configured once and then only read by the
// DOF numbering.
type Solution struct {

	// facility array
	Name    string // name of array: "subfields"
	Family  string // family of items: "soln_subfields"
	Tip     string // short help
	Default string // type of the single item built if nothing is configured

	// factory of items; NewSet by default
	ItemFactory func(name string) (*SubfieldSet, error)

	// items
	Items []*SubfieldSet // composites in order

	// internal
	state State
}

// add solution to factory
func init() {
	SetSolutionFactory("solution", NewSolution)
}

// NewSolution returns a new (declared) solution field with displacement,
// pressure, and fault Lagrange multiplier subfields by default
func NewSolution() *Solution {
	return &Solution{
		Name:        "subfields",
		Family:      SubfieldsFamily,
		Tip:         "Subfields in solution.",
		Default:     "solndisppreslagrange",
		ItemFactory: NewSet,
	}
}

// State returns the lifecycle state
func (o *Solution) State() State {
	return o.state
}

// Configure builds and configures all items. dat may be nil.
// Either all items are configured or the solution is left untouched.
func (o *Solution) Configure(dat *inp.SolutionData) (err error) {

	// check
	if o.state == Configured {
		return chk.Err("solution is configured already")
	}
	var given []*inp.SubfieldsData
	if dat != nil {
		given = dat.Subfields
	}

	// default population
	if len(given) == 0 {
		given = []*inp.SubfieldsData{{Type: o.Default}}
	}

	// items
	factory := o.ItemFactory
	if factory == nil {
		factory = NewSet
	}
	items := make([]*SubfieldSet, len(given))
	for i, idat := range given {
		if idat == nil {
			return chk.Err("solution: %s item # %d is empty", o.Name, i)
		}
		typ := idat.Type
		if typ == "" {
			typ = o.Default
		}
		items[i], err = factory(typ)
		if err != nil {
			return chk.Err("solution: cannot allocate %s item # %d:\n%v", o.Name, i, err)
		}
		err = items[i].Configure(idat)
		if err != nil {
			return chk.Err("solution: cannot configure %s item # %d:\n%v", o.Name, i, err)
		}
	}

	// unique subfield names
	owner := make(map[string]string)
	for _, item := range items {
		for _, sf := range item.Components() {
			name := sf.Info().Name
			if prev, ok := owner[name]; ok {
				return chk.Err("solution: subfield %q is given by %q and %q", name, prev, item.Label())
			}
			owner[name] = item.Label()
		}
	}

	// commit
	o.Items = items
	o.state = Configured
	return
}

// Subfields returns all subfield descriptors; items in order and, within
// each item, components in order. Declared solutions are configured with
// the default population first.
func (o *Solution) Subfields() (res []Subfield) {
	if o.state == Declared {
		err := o.Configure(nil)
		if err != nil {
			chk.Panic("solution: default configuration failed:\n%v", err)
		}
	}
	for _, item := range o.Items {
		res = append(res, item.Components()...)
	}
	return
}

// Names returns the names of all subfields in order
func (o *Solution) Names() []string {
	sfs := o.Subfields()
	names := make([]string, len(sfs))
	for i, sf := range sfs {
		names[i] = sf.Info().Name
	}
	return names
}

// Find returns the subfield with given name or nil if not available
func (o *Solution) Find(name string) Subfield {
	for _, sf := range o.Subfields() {
		if sf.Info().Name == name {
			return sf
		}
	}
	return nil
}
