// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem numbers the degrees-of-freedom of a solution field
package fem

import (
	"bytes"

	"github.com/jiangyuinsar/pylith/soln"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Layout holds the equation numbers of all DOFs of a configured solution.
// Equations are numbered node by node and, within each node, subfield by
// subfield in the order given by the solution:
//
//	node 0: ux uy p          (non-fault node)
//	node 1: ux uy p lx ly    (fault node)
type Layout struct {

	// input
	Ndim      int             // space dimension
	Subfields []soln.Subfield // subfields in numbering order

	// nodes
	Nodes []*Node // [nnodes] all nodes
	Fault []int   // ids of fault nodes

	// maps
	Sub2eqs map[string][]int  // subfield name => equation numbers
	Dof2sub map[string]string // DOF key => subfield name

	// dimensions
	Ny   int // number of equations, except λ
	Nlam int // number of fault Lagrange multipliers
	Nyb  int // total number of equations: ny + nλ
}

// NewLayout numbers the DOFs of sol over nnodes nodes. Subfields marked
// FaultOnly get DOFs at the nodes listed in faultNodes only.
func NewLayout(sol *soln.Solution, ndim, nnodes int, faultNodes []int) (o *Layout, err error) {

	// check
	if sol == nil || sol.State() != soln.Configured {
		return nil, chk.Err("solution must be configured before numbering DOFs")
	}
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("space dimension must be 1, 2 or 3. %d is invalid", ndim)
	}
	if nnodes < 1 {
		return nil, chk.Err("number of nodes must be positive. %d is invalid", nnodes)
	}
	isfault := make([]bool, nnodes)
	for _, id := range faultNodes {
		if id < 0 || id >= nnodes {
			return nil, chk.Err("fault node %d is out of range [0, %d)", id, nnodes)
		}
		if isfault[id] {
			return nil, chk.Err("fault node %d is given more than once", id)
		}
		isfault[id] = true
	}

	// new layout
	o = new(Layout)
	o.Ndim = ndim
	o.Subfields = sol.Subfields()
	o.Fault = append([]int(nil), faultNodes...)
	o.Sub2eqs = make(map[string][]int)
	o.Dof2sub = make(map[string]string)
	o.Nodes = make([]*Node, nnodes)

	// DOF keys of each subfield
	keys := make([][]string, len(o.Subfields))
	for i, sf := range o.Subfields {
		info := sf.Info()
		keys[i] = sf.Dofs(ndim)
		o.Sub2eqs[info.Name] = []int{}
		for _, key := range keys[i] {
			if other, ok := o.Dof2sub[key]; ok {
				return nil, chk.Err("DOF %q of subfield %q is used by subfield %q already", key, info.Name, other)
			}
			o.Dof2sub[key] = info.Name
		}
	}

	// set DOFs and equation numbers
	var eq int
	for id := 0; id < nnodes; id++ {
		nod := NewNode(id, isfault[id])
		o.Nodes[id] = nod
		for i, sf := range o.Subfields {
			info := sf.Info()
			if info.FaultOnly && !nod.Fault {
				continue
			}
			for _, key := range keys[i] {
				o.Sub2eqs[info.Name] = append(o.Sub2eqs[info.Name], eq)
				eq = nod.AddDofAndEq(key, info.Name, eq)
				if info.FaultOnly {
					o.Nlam++
				} else {
					o.Ny++
				}
			}
		}
	}
	o.Nyb = eq
	if o.Nyb == 0 {
		return nil, chk.Err("solution with subfields %v has no equations", sol.Names())
	}
	chk.IntAssert(o.Ny+o.Nlam, o.Nyb)
	return
}

// Eq returns the equation number of DOF key at node id
func (o *Layout) Eq(id int, key string) (int, error) {
	if id < 0 || id >= len(o.Nodes) {
		return -1, chk.Err("node %d is out of range [0, %d)", id, len(o.Nodes))
	}
	eq := o.Nodes[id].GetEq(key)
	if eq < 0 {
		return -1, chk.Err("node %d does not have DOF %q", id, key)
	}
	return eq, nil
}

// NewVector allocates a vector for all equations
func (o *Layout) NewVector() *mat.VecDense {
	return mat.NewVecDense(o.Nyb, nil)
}

// Gather returns the values of subfield name extracted from y
func (o *Layout) Gather(name string, y *mat.VecDense) (*mat.VecDense, error) {
	eqs, err := o.eqs(name, y)
	if err != nil {
		return nil, err
	}
	v := mat.NewVecDense(len(eqs), nil)
	for i, eq := range eqs {
		v.SetVec(i, y.AtVec(eq))
	}
	return v, nil
}

// Scatter sets the values of subfield name in y
func (o *Layout) Scatter(name string, y, v *mat.VecDense) error {
	eqs, err := o.eqs(name, y)
	if err != nil {
		return err
	}
	if v.Len() != len(eqs) {
		return chk.Err("subfield %q has %d equations but vector has %d values", name, len(eqs), v.Len())
	}
	for i, eq := range eqs {
		y.SetVec(eq, v.AtVec(i))
	}
	return nil
}

// String returns a summary of the layout
func (o *Layout) String() string {
	var b bytes.Buffer
	io.Ff(&b, "ndim = %d  nnodes = %d  nfault = %d\n", o.Ndim, len(o.Nodes), len(o.Fault))
	for _, sf := range o.Subfields {
		info := sf.Info()
		io.Ff(&b, "  %-16s %-28s neqs = %d\n", info.Name, info.Alias, len(o.Sub2eqs[info.Name]))
	}
	io.Ff(&b, "ny = %d  nλ = %d  nyb = %d\n", o.Ny, o.Nlam, o.Nyb)
	return b.String()
}

// eqs returns the equations of subfield name after checking y
func (o *Layout) eqs(name string, y *mat.VecDense) ([]int, error) {
	if y.Len() != o.Nyb {
		return nil, chk.Err("vector must have %d values. %d is invalid", o.Nyb, y.Len())
	}
	eqs, ok := o.Sub2eqs[name]
	if !ok {
		return nil, chk.Err("cannot find subfield %q", name)
	}
	if len(eqs) == 0 {
		return nil, chk.Err("subfield %q has no equations", name)
	}
	return eqs, nil
}
