// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/jiangyuinsar/pylith/fem"
	"github.com/jiangyuinsar/pylith/inp"
	"github.com/jiangyuinsar/pylith/soln"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	help := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nSolution subfields -- displacement, pressure and fault Lagrange multipliers\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"show slots and tips", "help", help,
		))
	}

	// run
	err := run(fnamepath, verbose, help)
	if err != nil {
		chk.Panic("%v", err)
	}
}

// run reads the simulation file, configures the solution and numbers its DOFs
func run(fnamepath string, verbose, help bool) (err error) {

	// input data
	sim, err := inp.ReadSim(fnamepath, "")
	if err != nil {
		return
	}
	showMsg := verbose || sim.Data.Verbose
	if showMsg {
		io.Pf("> simulation (%s) file read: %s\n", sim.Format, sim.Key)
	}

	// solution
	factory, err := soln.GetSolutionFactory(sim.Solution.Type)
	if err != nil {
		return
	}
	sol := factory()
	err = sol.Configure(&sim.Solution)
	if err != nil {
		return chk.Err("cannot configure solution:\n%v", err)
	}
	if showMsg {
		io.Pf("> solution configured with subfields %v\n", sol.Names())
	}
	if help {
		for _, item := range sol.Items {
			io.Pforan("%s", item.Help())
		}
	}

	// degrees-of-freedom
	lay, err := fem.NewLayout(sol, sim.Ndim, sim.Mesh.Nnodes, sim.Mesh.FaultNodes)
	if err != nil {
		return chk.Err("cannot number degrees-of-freedom:\n%v", err)
	}
	if showMsg {
		io.Pf("> degrees-of-freedom numbered\n")
		io.Pfgreen("%v", lay)
	}
	return
}
