// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package soln implements the solution field and its subfields
//
//	       / u \          u -- displacement (or velocity)
//	  y =  | p |          p -- pressure
//	       \ λ /          λ -- fault Lagrange multiplier
package soln

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// vector field types
const (
	Scalar = "scalar"
	Vector = "vector"
)

// Subfield defines what all subfield descriptors must implement
type Subfield interface {
	Init(prms dbf.Params, extra string) error // initialises descriptor with user properties
	GetPrms() dbf.Params                      // gets (an example) of parameters
	Info() *Info                              // returns descriptor data
	Dofs(ndim int) []string                   // returns the DOF keys at each node; 1 <= ndim <= 3. ex: ["ux", "uy"]
}

// Info holds the data describing one subfield
type Info struct {

	// identity
	Name      string // slot key. ex: "lagrange_fault"
	Type      string // descriptor type in factory. ex: "lagrange_fault"
	FieldName string // name of field. ex: "lagrange_multiplier_fault"
	Alias     string // user alias; FieldName if not given
	Tip       string // short help

	// discretization
	VectorType string // Scalar or Vector
	BasisOrder int    // order of basis functions
	QuadOrder  int    // order of quadrature; negative means use BasisOrder
	Dimension  int    // topological dimension; -1 means use domain dimension
	Continuous bool   // basis is continuous
	Space      string // finite element space: "polynomial" or "point"
	CellBasis  string // "default", "simplex" or "tensor"

	// problem
	FaultOnly bool   // DOFs exist only at fault nodes
	Scale     string // nondimensional scale. ex: "length", "pressure"
	Keys      string // DOF key prefix. ex: "u" => ux, uy, uz
}

// Components returns the names of the components of this subfield.
// ndim must be 1, 2 or 3.
func (o *Info) Components(ndim int) (names []string) {
	if o.VectorType == Scalar {
		return []string{o.FieldName}
	}
	for _, c := range axes(ndim) {
		names = append(names, o.FieldName+"_"+c)
	}
	return
}

// Quadrature returns the quadrature order to be used
func (o *Info) Quadrature() int {
	if o.QuadOrder < 0 {
		return o.BasisOrder
	}
	return o.QuadOrder
}

// String returns a summary of this subfield
func (o *Info) String() string {
	return io.Sf("%s (%s, %s, basis=%d, quad=%d)", o.Name, o.Alias, o.VectorType, o.BasisOrder, o.Quadrature())
}

// base implements the common functionality of all subfields
type base struct {
	info Info
}

// Info returns descriptor data
func (o *base) Info() *Info {
	return &o.info
}

// GetPrms gets (an example) of parameters
func (o *base) GetPrms() dbf.Params {
	return []*dbf.P{
		{N: "basisorder", V: 1},
		{N: "quadorder", V: 1},
		{N: "dimension", V: -1},
		{N: "continuous", V: 1},
	}
}

// Dofs returns the DOF keys at each node. ndim must be 1, 2 or 3.
func (o *base) Dofs(ndim int) []string {
	if o.info.VectorType == Scalar {
		return []string{o.info.Keys}
	}
	keys := make([]string, ndim)
	for i, c := range axes(ndim) {
		keys[i] = o.info.Keys + c
	}
	return keys
}

// Init initialises descriptor with user properties
func (o *base) Init(prms dbf.Params, extra string) (err error) {

	// parameters
	for _, p := range prms {
		if p == nil {
			return chk.Err("%s: nil parameter", o.info.Type)
		}
		switch strings.ToLower(p.N) {
		case "basisorder":
			o.info.BasisOrder, err = toInt(o.info.Type, p)
		case "quadorder":
			o.info.QuadOrder, err = toInt(o.info.Type, p)
		case "dimension":
			o.info.Dimension, err = toInt(o.info.Type, p)
		case "continuous":
			o.info.Continuous = p.V > 0
		default:
			return chk.Err("%s: parameter named %q is incorrect", o.info.Type, p.N)
		}
		if err != nil {
			return
		}
	}

	// extra properties
	if val, found := io.Keycode(extra, "alias"); found {
		if val == "" {
			return chk.Err("%s: alias cannot be empty", o.info.Type)
		}
		o.info.Alias = val
	}
	if val, found := io.Keycode(extra, "space"); found {
		o.info.Space = val
	}
	if val, found := io.Keycode(extra, "cell"); found {
		o.info.CellBasis = val
	}

	// check
	if o.info.Alias == "" {
		o.info.Alias = o.info.FieldName
	}
	if o.info.BasisOrder < 0 {
		return chk.Err("%s: basis order must be non-negative. %d is invalid", o.info.Type, o.info.BasisOrder)
	}
	if o.info.QuadOrder < -1 {
		return chk.Err("%s: quadrature order must be -1 (use basis order) or non-negative. %d is invalid", o.info.Type, o.info.QuadOrder)
	}
	if o.info.QuadOrder >= 0 && o.info.QuadOrder < o.info.BasisOrder {
		return chk.Err("%s: quadrature order (%d) must not be smaller than basis order (%d)", o.info.Type, o.info.QuadOrder, o.info.BasisOrder)
	}
	if o.info.Dimension < -1 || o.info.Dimension > 3 {
		return chk.Err("%s: dimension must be -1, 0, 1, 2 or 3. %d is invalid", o.info.Type, o.info.Dimension)
	}
	switch o.info.Space {
	case "polynomial", "point":
	default:
		return chk.Err("%s: finite element space %q is invalid; use \"polynomial\" or \"point\"", o.info.Type, o.info.Space)
	}
	switch o.info.CellBasis {
	case "default", "simplex", "tensor":
	default:
		return chk.Err("%s: cell basis %q is invalid; use \"default\", \"simplex\" or \"tensor\"", o.info.Type, o.info.CellBasis)
	}
	return
}

// newBase returns a base with default discretization settings
func newBase(typ, field, keys, vtype, scale, tip string) base {
	return base{Info{
		Type:       typ,
		FieldName:  field,
		Tip:        tip,
		VectorType: vtype,
		BasisOrder: 1,
		QuadOrder:  -1,
		Dimension:  -1,
		Continuous: true,
		Space:      "polynomial",
		CellBasis:  "default",
		Scale:      scale,
		Keys:       keys,
	}}
}

// toInt converts a parameter value that must be an integer
func toInt(typ string, p *dbf.P) (int, error) {
	if p.V != math.Trunc(p.V) || math.IsInf(p.V, 0) {
		return 0, chk.Err("%s: parameter %q must be an integer. %g is invalid", typ, p.N, p.V)
	}
	if p.V < math.MinInt32 || p.V > math.MaxInt32 {
		return 0, chk.Err("%s: parameter %q is out of range. %g is invalid", typ, p.N, p.V)
	}
	return int(p.V), nil
}

// axes returns the first ndim axis names
func axes(ndim int) []string {
	if ndim < 1 || ndim > 3 {
		chk.Panic("space dimension must be 1, 2 or 3. %d is invalid", ndim)
	}
	return []string{"x", "y", "z"}[:ndim]
}
