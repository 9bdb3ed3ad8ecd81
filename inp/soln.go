// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// SubfieldData holds the user settings for one subfield slot
type SubfieldData struct {
	Slot  string     `json:"slot" yaml:"slot"`   // slot to be filled. ex: displacement, pressure, lagrange_fault
	Type  string     `json:"type" yaml:"type"`   // descriptor type; empty means the slot default
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // numeric properties. ex: basisorder, quadorder
	Extra string     `json:"extra" yaml:"extra"` // extra properties (in keycode format). ex: "!space:point !alias:p"
}

// SubfieldsData holds the settings for one item of the solution's subfields array
type SubfieldsData struct {
	Name  string          `json:"name" yaml:"name"`   // item label; empty means the composite default
	Type  string          `json:"type" yaml:"type"`   // composite type. ex: solndisppreslagrange
	Slots []*SubfieldData `json:"slots" yaml:"slots"` // overrides for slots of this composite
}

// SolutionData holds the definition of the solution field
type SolutionData struct {
	Type      string           `json:"type" yaml:"type"`           // solution factory; empty means "solution"
	Subfields []*SubfieldsData `json:"subfields" yaml:"subfields"` // subfields array; empty means the default composite
}

// PostProcess sets default values and checks for missing data
func (o *SolutionData) PostProcess() error {
	if o.Type == "" {
		o.Type = "solution"
	}
	for i, item := range o.Subfields {
		if item == nil {
			return chk.Err("subfields item # %d is empty", i)
		}
		for j, slot := range item.Slots {
			if slot == nil {
				return chk.Err("slot # %d of subfields item # %d is empty", j, i)
			}
			slot.Slot = strings.TrimSpace(slot.Slot)
			if slot.Slot == "" {
				return chk.Err("slot # %d of subfields item # %d has no name", j, i)
			}
		}
	}
	return nil
}

// Item returns the subfields item with given index or nil if not available
func (o *SolutionData) Item(idx int) *SubfieldsData {
	if o == nil || idx < 0 || idx >= len(o.Subfields) {
		return nil
	}
	return o.Subfields[idx]
}
