// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

// slots shared by compositions
var (
	displacementSlot = Slot{Name: "displacement", Family: SubfieldFamily, Tip: "Displacement subfield.", Default: "displacement"}
	velocitySlot     = Slot{Name: "velocity", Family: SubfieldFamily, Tip: "Velocity subfield.", Default: "velocity"}
	pressureSlot     = Slot{Name: "pressure", Family: SubfieldFamily, Tip: "Pressure subfield.", Default: "pressure"}
	lagrangeSlot     = Slot{Name: "lagrange_fault", Family: SubfieldFamily, Tip: "Fault Lagrange multiplier subfield.", Default: "lagrange_fault"}
)

// add compositions to factory
func init() {
	SetSetAllocator("solndisp", NewDisp)
	SetSetAllocator("solndispvel", NewDispVel)
	SetSetAllocator("solndisppres", NewDispPres)
	SetSetAllocator("solndisplagrange", NewDispLagrange)
	SetSetAllocator("solndisppreslagrange", NewDispPresLagrange)
}

// NewDispPresLagrange returns the subfields container with displacement,
// pressure, and fault Lagrange multiplier subfields; in this order
func NewDispPresLagrange() *SubfieldSet {
	return NewSubfieldSet("solndisppreslagrange", "solndisppres", displacementSlot, pressureSlot, lagrangeSlot)
}

// NewDisp returns the subfields container with the displacement subfield only
func NewDisp() *SubfieldSet {
	return NewSubfieldSet("solndisp", "solndisp", displacementSlot)
}

// NewDispVel returns the subfields container with displacement and velocity subfields
func NewDispVel() *SubfieldSet {
	return NewSubfieldSet("solndispvel", "solndispvel", displacementSlot, velocitySlot)
}

// NewDispPres returns the subfields container with displacement and pressure subfields
func NewDispPres() *SubfieldSet {
	return NewSubfieldSet("solndisppres", "solndisppres", displacementSlot, pressureSlot)
}

// NewDispLagrange returns the subfields container with displacement and fault Lagrange multiplier subfields
func NewDispLagrange() *SubfieldSet {
	return NewSubfieldSet("solndisplagrange", "solndisplagrange", displacementSlot, lagrangeSlot)
}
