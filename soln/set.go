// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

import (
	"bytes"

	"github.com/jiangyuinsar/pylith/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// State defines the lifecycle state of subfields and solutions
type State int

const (
	Declared   State = iota // slots registered with default factories; no instances
	Configured              // descriptors instantiated; read-only from now on
)

// String returns the name of the state
func (o State) String() string {
	if o == Configured {
		return "configured"
	}
	return "declared"
}

// Slot holds a named facility of a composite
type Slot struct {
	Name    string // key. ex: "displacement"
	Family  string // family of descriptors allowed in this slot
	Tip     string // short help
	Default string // default descriptor type in factory
}

// SubfieldSet is a closed composite of subfields. The order of Slots is
// the order of Components and thus the order of DOF numbering.
type SubfieldSet struct {

	// input
	PostConfigure func(components []Subfield) error // [optional] runs after the base configuration

	// internal
	kind  string         // type in factory. ex: "solndisppreslagrange"
	label string         // identity. ex: "solndisppres"
	slots []Slot         // ordered slots
	index map[string]int // slot name => index in slots
	items []Subfield     // [len(slots)] descriptors; nil if declared
	state State          // lifecycle state
}

// NewSubfieldSet returns a declared composite with the given ordered slots
func NewSubfieldSet(kind, label string, slots ...Slot) (o *SubfieldSet) {
	o = &SubfieldSet{kind: kind, label: label, slots: append([]Slot(nil), slots...)}
	o.index = make(map[string]int, len(slots))
	for i, slot := range o.slots {
		if _, dup := o.index[slot.Name]; dup {
			chk.Panic("subfields %q: slot %q is declared twice", label, slot.Name)
		}
		if slot.Family == "" {
			o.slots[i].Family = SubfieldFamily
		}
		o.index[slot.Name] = i
	}
	return
}

// Kind returns the type of this composite in factory
func (o *SubfieldSet) Kind() string { return o.kind }

// Label returns the identity of this composite
func (o *SubfieldSet) Label() string { return o.label }

// Family returns the family this composite belongs to
func (o *SubfieldSet) Family() string { return SubfieldsFamily }

// State returns the lifecycle state
func (o *SubfieldSet) State() State { return o.state }

// Slots returns a copy of the ordered slots
func (o *SubfieldSet) Slots() []Slot {
	return append([]Slot(nil), o.slots...)
}

// Names returns the slot names in order
func (o *SubfieldSet) Names() []string {
	names := make([]string, len(o.slots))
	for i, slot := range o.slots {
		names[i] = slot.Name
	}
	return names
}

// Tip returns the short help of a slot
func (o *SubfieldSet) Tip(name string) string {
	if i, ok := o.index[name]; ok {
		return o.slots[i].Tip
	}
	return ""
}

// Help returns a listing of the slots and their tips
func (o *SubfieldSet) Help() string {
	var b bytes.Buffer
	io.Ff(&b, "%s [%s] (family %q)\n", o.label, o.kind, SubfieldsFamily)
	for _, slot := range o.slots {
		io.Ff(&b, "  %-16s %s (family %q, default %q)\n", slot.Name, slot.Tip, slot.Family, slot.Default)
	}
	return b.String()
}

// Configure instantiates all descriptors. dat may be nil, meaning all
// defaults. Either every slot is built or nothing changes.
func (o *SubfieldSet) Configure(dat *inp.SubfieldsData) (err error) {

	// check
	if o.state == Configured {
		return chk.Err("subfields %q are configured already", o.label)
	}
	if dat != nil && dat.Type != "" && dat.Type != o.kind {
		return chk.Err("subfields %q: cannot configure type %q with data for type %q", o.label, o.kind, dat.Type)
	}

	// base configuration
	items, err := o.build(dat)
	if err != nil {
		return
	}

	// extension point
	if o.PostConfigure != nil {
		err = o.PostConfigure(items)
		if err != nil {
			return chk.Err("subfields %q: post-configuration failed:\n%v", o.label, err)
		}
	}

	// commit
	if dat != nil && dat.Name != "" {
		o.label = dat.Name
	}
	o.items = items
	o.state = Configured
	return
}

// Components returns the descriptors in the order of the slots.
// Declared composites are configured with defaults first.
func (o *SubfieldSet) Components() []Subfield {
	if o.state == Declared {
		err := o.Configure(nil)
		if err != nil {
			chk.Panic("subfields %q: default configuration failed:\n%v", o.label, err)
		}
	}
	if len(o.items) != len(o.slots) {
		chk.Panic("subfields %q: number of components (%d) differs from number of slots (%d)", o.label, len(o.items), len(o.slots))
	}
	for i, slot := range o.slots {
		if o.items[i].Info().Name != slot.Name {
			chk.Panic("subfields %q: component # %d is %q but slot is %q", o.label, i, o.items[i].Info().Name, slot.Name)
		}
	}
	return append([]Subfield(nil), o.items...)
}

// Find returns the descriptor in slot name or nil if not available
func (o *SubfieldSet) Find(name string) Subfield {
	i, ok := o.index[name]
	if !ok {
		return nil
	}
	return o.Components()[i]
}

// build allocates and initialises all descriptors
func (o *SubfieldSet) build(dat *inp.SubfieldsData) (items []Subfield, err error) {

	// user settings for each slot
	settings := make(map[string]*inp.SubfieldData)
	if dat != nil {
		for _, s := range dat.Slots {
			if s == nil {
				return nil, chk.Err("subfields %q: empty slot data", o.label)
			}
			if _, ok := o.index[s.Slot]; !ok {
				return nil, chk.Err("subfields %q: cannot find slot %q. available: %v", o.label, s.Slot, o.Names())
			}
			if _, dup := settings[s.Slot]; dup {
				return nil, chk.Err("subfields %q: slot %q is given more than once", o.label, s.Slot)
			}
			settings[s.Slot] = s
		}
	}

	// allocate descriptors
	items = make([]Subfield, len(o.slots))
	for i, slot := range o.slots {
		typ := slot.Default
		var prms dbf.Params
		var extra string
		if s, ok := settings[slot.Name]; ok {
			if s.Type != "" {
				typ = s.Type
			}
			prms, extra = s.Prms, s.Extra
		}
		if fam := Family(typ); fam != slot.Family {
			if fam == "" {
				return nil, chk.Err("subfields %q: slot %q: type %q is not available in family %q", o.label, slot.Name, typ, slot.Family)
			}
			return nil, chk.Err("subfields %q: slot %q: type %q belongs to family %q instead of %q", o.label, slot.Name, typ, fam, slot.Family)
		}
		sf, err := NewSubfield(typ)
		if err != nil {
			return nil, chk.Err("subfields %q: slot %q:\n%v", o.label, slot.Name, err)
		}
		sf.Info().Name = slot.Name
		if slot.Tip != "" {
			sf.Info().Tip = slot.Tip
		}
		err = sf.Init(prms, extra)
		if err != nil {
			return nil, chk.Err("subfields %q: cannot initialise slot %q:\n%v", o.label, slot.Name, err)
		}
		items[i] = sf
	}
	return
}
