// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// Dof holds information about a degree-of-freedom at a node
type Dof struct {
	Key string // primary variable key. ex: "ux", "p", "lx"
	Sub string // name of subfield owning this DOF. ex: "displacement"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Id    int             // vertex id
	Fault bool            // node is on the fault interface
	Dofs  []*Dof          // degrees-of-freedom in order of creation
	Dmap  map[string]*Dof // maps DOF key to Dof
}

// NewNode allocates a new Node
func NewNode(id int, fault bool) *Node {
	return &Node{Id: id, Fault: fault, Dmap: make(map[string]*Dof)}
}

// AddDofAndEq adds a new DOF and equation number to this node if it does
// not exist yet. It returns the next available equation number.
func (o *Node) AddDofAndEq(key, sub string, eq int) (nexteq int) {
	if _, ok := o.Dmap[key]; ok {
		return eq
	}
	d := &Dof{Key: key, Sub: sub, Eq: eq}
	o.Dofs = append(o.Dofs, d)
	o.Dmap[key] = d
	return eq + 1
}

// GetDof returns the DOF structure for given key or nil if not available
func (o *Node) GetDof(key string) *Dof {
	return o.Dmap[key]
}

// GetEq returns the equation number for given key or -1 if not available
func (o *Node) GetEq(key string) int {
	if d, ok := o.Dmap[key]; ok {
		return d.Eq
	}
	return -1
}

// GetKeys returns the DOF keys of this node in order
func (o *Node) GetKeys() (keys []string) {
	for _, d := range o.Dofs {
		keys = append(keys, d.Key)
	}
	return
}
