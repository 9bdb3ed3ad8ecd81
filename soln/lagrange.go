// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LagrangeFault implements the fault Lagrange multiplier subfield.
// Its DOFs (tractions on the fault interface) exist only at fault nodes.
type LagrangeFault struct {
	base
}

func init() {
	SetSubfieldAllocator("lagrange_fault", func() Subfield {
		o := &LagrangeFault{newBase("lagrange_fault", "lagrange_multiplier_fault", "l", Vector, "pressure", "Fault Lagrange multiplier subfield.")}
		o.info.FaultOnly = true
		return o
	})
}

// Init initialises descriptor with user properties
func (o *LagrangeFault) Init(prms dbf.Params, extra string) (err error) {
	err = o.base.Init(prms, extra)
	if err != nil {
		return
	}
	if o.info.Space == "point" {
		return chk.Err("%s: fault Lagrange multipliers require a polynomial space", o.info.Type)
	}
	return
}
