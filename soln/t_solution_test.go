// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

import (
	"strings"
	"testing"

	"github.com/jiangyuinsar/pylith/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_solution01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solution01. factory => default population => order")

	factory, err := GetSolutionFactory("solution")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	sol := factory()
	if sol.Name != "subfields" || sol.Family != "soln_subfields" || sol.Tip != "Subfields in solution." {
		tst.Errorf("facility array data is incorrect: %+v\n", sol)
	}
	err = sol.Configure(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("names = %v\n", sol.Names())
	chk.Strings(tst, "names", sol.Names(), []string{"displacement", "pressure", "lagrange_fault"})
	if len(sol.Items) != 1 || sol.Items[0].Kind() != "solndisppreslagrange" || sol.Items[0].Label() != "solndisppres" {
		tst.Errorf("default population should be one solndisppreslagrange item\n")
	}
	if sol.State() != Configured {
		tst.Errorf("solution should be configured\n")
	}

	// lazy default configuration
	sol = NewSolution()
	chk.Strings(tst, "lazy names", names(sol.Subfields()), []string{"displacement", "pressure", "lagrange_fault"})

	// empty data means default population
	sol = NewSolution()
	err = sol.Configure(&inp.SolutionData{Type: "solution"})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Strings(tst, "empty data", sol.Names(), []string{"displacement", "pressure", "lagrange_fault"})
	if sol.Find("lagrange_fault") == nil || sol.Find("velocity") != nil {
		tst.Errorf("Find failed\n")
	}
}

func Test_solution02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solution02. configured items")

	sol := NewSolution()
	err := sol.Configure(&inp.SolutionData{Subfields: []*inp.SubfieldsData{
		{Type: "solndispvel"},
		{Type: "solndisplagrange", Slots: []*inp.SubfieldData{{Slot: "displacement", Type: "pressure"}}},
	}})
	if err == nil {
		tst.Errorf("pressure in the displacement slot clashes with displacement from first item\n")
		return
	}
	io.Pforan("%v\n", err)
	if !strings.Contains(err.Error(), "subfield \"displacement\" is given by") {
		tst.Errorf("error is incorrect: %v\n", err)
	}
	if sol.State() != Declared || sol.Items != nil {
		tst.Errorf("solution should be untouched\n")
	}

	// pressure only
	sol = NewSolution()
	err = sol.Configure(&inp.SolutionData{Subfields: []*inp.SubfieldsData{
		{Type: "solndisppres", Slots: []*inp.SubfieldData{
			{Slot: "pressure", Prms: []*dbf.P{&dbf.P{N: "basisorder", V: 2}}},
		}},
	}})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Strings(tst, "names", sol.Names(), []string{"displacement", "pressure"})
	chk.Ints(tst, "basis", []int{sol.Find("pressure").Info().BasisOrder}, []int{2})
}

func Test_solution03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solution03. all-or-nothing")

	bad := &inp.SolutionData{Subfields: []*inp.SubfieldsData{
		{Type: "solndisppreslagrange", Slots: []*inp.SubfieldData{
			{Slot: "displacement", Prms: []*dbf.P{&dbf.P{N: "basisorder", V: 2}}},
			{Slot: "pressure", Prms: []*dbf.P{&dbf.P{N: "basisorder", V: 0.5}}},
		}},
	}}
	sol := NewSolution()
	err := sol.Configure(bad)
	if err == nil {
		tst.Errorf("Configure should have failed\n")
		return
	}
	io.Pforan("%v\n", err)
	if sol.State() != Declared || sol.Items != nil {
		tst.Errorf("solution should be untouched\n")
	}

	// wrong family, unknown composite, nil item
	for _, dat := range []*inp.SolutionData{
		{Subfields: []*inp.SubfieldsData{{Type: "pressure"}}},
		{Subfields: []*inp.SubfieldsData{{Type: "solnthermal"}}},
		{Subfields: []*inp.SubfieldsData{nil}},
	} {
		err = sol.Configure(dat)
		if err == nil {
			tst.Errorf("Configure should have failed\n")
			continue
		}
		io.Pforan("%v\n", err)
	}
	err = sol.Configure(&inp.SolutionData{Subfields: []*inp.SubfieldsData{{Type: "pressure"}}})
	if err == nil || !strings.Contains(err.Error(), "belongs to family \"soln_subfield\"") {
		tst.Errorf("error should name the family: %v\n", err)
	}

	// configured only once
	err = sol.Configure(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = sol.Configure(nil)
	if err == nil {
		tst.Errorf("second Configure should have failed\n")
	}
}

func Test_solution04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solution04. item factory")

	var requested []string
	sol := NewSolution()
	sol.ItemFactory = func(name string) (*SubfieldSet, error) {
		requested = append(requested, name)
		return NewSet(name)
	}
	err := sol.Configure(&inp.SolutionData{Subfields: []*inp.SubfieldsData{{}}})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Strings(tst, "requested", requested, []string{"solndisppreslagrange"})
	chk.Strings(tst, "names", sol.Names(), []string{"displacement", "pressure", "lagrange_fault"})

	// zero solution uses NewSet
	var zero Solution
	zero.Default = "solndisp"
	err = zero.Configure(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Strings(tst, "zero", zero.Names(), []string{"displacement"})
}
