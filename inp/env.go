// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/caarlos0/env/v11"
	"github.com/cpmech/gosl/chk"
)

// Env holds overrides read from environment variables
type Env struct {
	SolnType string `env:"PYLITH_SOLN_TYPE"` // composite type of the first subfields item
	Ndim     int    `env:"PYLITH_NDIM"`      // space dimension
	DirOut   string `env:"PYLITH_DIROUT"`    // directory for output
	Verbose  bool   `env:"PYLITH_VERBOSE"`   // switch messages on
}

// ParseEnv loads overrides from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return chk.Err("parse env:\n%v", err)
	}
	return nil
}

// Apply applies non-empty overrides to simulation data
func (o Env) Apply(sim *Simulation) {
	if o.SolnType != "" {
		if len(sim.Solution.Subfields) == 0 {
			sim.Solution.Subfields = append(sim.Solution.Subfields, new(SubfieldsData))
		}
		sim.Solution.Subfields[0].Type = o.SolnType
	}
	if o.Ndim != 0 {
		sim.Data.Ndim = o.Ndim
	}
	if o.DirOut != "" {
		sim.Data.DirOut = o.DirOut
	}
	if o.Verbose {
		sim.Data.Verbose = true
	}
}
