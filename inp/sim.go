// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/pylith
	Ndim    int    `json:"ndim" yaml:"ndim"`       // space dimension; 0 means 2
	Verbose bool   `json:"verbose" yaml:"verbose"` // show messages
}

// MeshData holds the mesh counts required to lay out degrees of freedom
type MeshData struct {
	Nnodes     int   `json:"nnodes" yaml:"nnodes"`         // number of nodes
	FaultNodes []int `json:"faultnodes" yaml:"faultnodes"` // ids of nodes on the fault interface
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data     Data         `json:"data" yaml:"data"`         // stores global simulation data
	Mesh     MeshData     `json:"mesh" yaml:"mesh"`         // mesh counts
	Solution SolutionData `json:"solution" yaml:"solution"` // solution field and its subfields

	// derived
	Key    string `json:"-" yaml:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	DirOut string `json:"-" yaml:"-"` // directory to save results
	Ndim   int    `json:"-" yaml:"-"` // space dimension
	Format string `json:"-" yaml:"-"` // input format: "json" or "yaml"
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml file.
// Environment overrides (see Env) are applied after decoding.
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o, err = decode(b, Format(simfilepath))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot decode simulation file %q:\n%v", simfilepath, err)
	}

	// environment
	var env Env
	err = ParseEnv(&env)
	if err != nil {
		return nil, err
	}
	env.Apply(o)

	// derived values
	err = o.postProcess()
	if err != nil {
		return nil, chk.Err("ReadSim: invalid simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/pylith/" + fnkey
	}
	return
}

// ParseSim decodes simulation data given in format "json" or "yaml" and
// sets derived values. Environment variables are not read.
func ParseSim(b []byte, format string) (o *Simulation, err error) {
	o, err = decode(b, format)
	if err != nil {
		return nil, err
	}
	err = o.postProcess()
	if err != nil {
		return nil, err
	}
	return
}

// decode decodes simulation data given in format "json" or "yaml"
func decode(b []byte, format string) (o *Simulation, err error) {
	o = new(Simulation)
	o.Format = format
	switch format {
	case "json":
		err = json.Unmarshal(b, o)
	case "yaml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("format %q is not available; use \"json\" or \"yaml\"", format)
	}
	if err != nil {
		return nil, err
	}
	return
}

// postProcess sets the space dimension and checks the solution data
func (o *Simulation) postProcess() error {
	o.Ndim = o.Data.Ndim
	if o.Ndim == 0 {
		o.Ndim = 2
	}
	if o.Ndim < 1 || o.Ndim > 3 {
		return chk.Err("space dimension must be 1, 2 or 3. %d is invalid", o.Ndim)
	}
	return o.Solution.PostProcess()
}

// Format returns the input format corresponding to the file extension
func Format(simfilepath string) string {
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}
