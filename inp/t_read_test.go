// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unsetEnv removes the PYLITH_* overrides for the duration of a test
func unsetEnv(tst *testing.T) {
	for _, key := range []string{"PYLITH_SOLN_TYPE", "PYLITH_NDIM", "PYLITH_DIROUT", "PYLITH_VERBOSE"} {
		tst.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func checkStrikeSlip(t *testing.T, sim *Simulation) {
	require.Equal(t, "strikeslip", sim.Key)
	require.Equal(t, "/tmp/pylith/strikeslip", sim.DirOut)
	require.Equal(t, 2, sim.Ndim)
	require.Equal(t, 6, sim.Mesh.Nnodes)
	require.Equal(t, []int{2, 3}, sim.Mesh.FaultNodes)
	require.Equal(t, "solution", sim.Solution.Type)
	require.Len(t, sim.Solution.Subfields, 1)

	item := sim.Solution.Item(0)
	require.NotNil(t, item)
	require.Equal(t, "solndisppreslagrange", item.Type)
	require.Len(t, item.Slots, 2)

	pres := item.Slots[0]
	require.Equal(t, "pressure", pres.Slot)
	require.Len(t, pres.Prms, 2)
	require.Equal(t, "basisorder", pres.Prms[0].N)
	require.Equal(t, 2.0, pres.Prms[0].V)
	require.Equal(t, "quadorder", pres.Prms[1].N)
	require.Equal(t, "!alias:p", pres.Extra)

	disp := item.Slots[1]
	require.Equal(t, "displacement", disp.Slot)
	require.Equal(t, "", disp.Type)
	require.Len(t, disp.Prms, 1)
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. json")

	unsetEnv(tst)

	sim, err := ReadSim("data/strikeslip.sim", "")
	require.NoError(tst, err)
	require.Equal(tst, "json", sim.Format)
	checkStrikeSlip(tst, sim)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. yaml")

	unsetEnv(tst)

	sim, err := ReadSim("data/strikeslip.yaml", "")
	require.NoError(tst, err)
	require.Equal(tst, "yaml", sim.Format)
	checkStrikeSlip(tst, sim)
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. defaults")

	unsetEnv(tst)

	sim, err := ReadSim("data/defaults.sim", "run1")
	require.NoError(tst, err)
	require.Equal(tst, "defaults-run1", sim.Key)
	require.Equal(tst, "/tmp/pylith/defaults", sim.DirOut)
	require.Equal(tst, 2, sim.Ndim)
	require.Equal(tst, "solution", sim.Solution.Type)
	require.Empty(tst, sim.Solution.Subfields)
	require.Nil(tst, sim.Solution.Item(0))
}

func Test_read04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read04. errors")

	unsetEnv(tst)

	_, err := ReadSim("data/doesnotexist.sim", "")
	require.Error(tst, err)

	_, err = ReadSim("data/badslot.sim", "")
	require.ErrorContains(tst, err, "has no name")

	_, err = ParseSim([]byte(`{"data":{"ndim":4}}`), "json")
	require.ErrorContains(tst, err, "space dimension")

	_, err = ParseSim([]byte(`{"solution":{"subfields":[null]}}`), "json")
	require.ErrorContains(tst, err, "is empty")

	_, err = ParseSim([]byte(`{"solution":{"subfields":[{"slots":[null]}]}}`), "json")
	require.ErrorContains(tst, err, "is empty")

	_, err = ParseSim([]byte(`{"data":{"ndim":"two"}}`), "json")
	require.Error(tst, err)

	_, err = ParseSim([]byte(`data: {ndim: 2}`), "toml")
	require.ErrorContains(tst, err, "not available")
}

func Test_read05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read05. formats")

	require.Equal(tst, "json", Format("a/b/c.sim"))
	require.Equal(tst, "json", Format("c.json"))
	require.Equal(tst, "yaml", Format("c.yaml"))
	require.Equal(tst, "yaml", Format("C.YML"))
}

func Test_read06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read06. parsing ignores environment")

	tst.Setenv("PYLITH_NDIM", "3")
	tst.Setenv("PYLITH_SOLN_TYPE", "solndisp")

	sim, err := ParseSim([]byte(`{"data":{"ndim":2}}`), "json")
	require.NoError(tst, err)
	require.Equal(tst, 2, sim.Ndim)
	require.Empty(tst, sim.Solution.Subfields)

	tst.Setenv("PYLITH_NDIM", "not-an-int")
	_, err = ParseSim([]byte(`{}`), "json")
	require.NoError(tst, err)
}
