// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// families
const (
	SubfieldFamily  = "soln_subfield"  // descriptors of one unknown
	SubfieldsFamily = "soln_subfields" // composites of descriptors (what composes a solution)
)

// SubfieldAllocator defines a function that allocates a subfield descriptor
type SubfieldAllocator func() Subfield

// SetAllocator defines a function that allocates a composite of subfields
type SetAllocator func() *SubfieldSet

// SolutionFactory defines a function that allocates a solution field
type SolutionFactory func() *Solution

// SetSubfieldAllocator sets a new subfield descriptor allocator
func SetSubfieldAllocator(name string, fcn SubfieldAllocator) {
	if Family(name) != "" {
		chk.Panic("cannot set subfield allocator %q because name exists already", name)
	}
	subfieldAllocators[name] = fcn
}

// SetSetAllocator sets a new composite allocator
func SetSetAllocator(name string, fcn SetAllocator) {
	if Family(name) != "" {
		chk.Panic("cannot set subfields allocator %q because name exists already", name)
	}
	setAllocators[name] = fcn
}

// SetSolutionFactory sets a new solution factory
func SetSolutionFactory(name string, fcn SolutionFactory) {
	if _, ok := solutionFactories[name]; ok {
		chk.Panic("cannot set solution factory %q because name exists already", name)
	}
	solutionFactories[name] = fcn
}

// NewSubfield returns a new subfield descriptor from factory
func NewSubfield(name string) (Subfield, error) {
	fcn, ok := subfieldAllocators[name]
	if !ok {
		return nil, familyErr(name, SubfieldFamily)
	}
	sf := fcn()
	if sf == nil {
		return nil, chk.Err("subfield %q is not available", name)
	}
	return sf, nil
}

// NewSet returns a new (declared) composite of subfields from factory
func NewSet(name string) (*SubfieldSet, error) {
	fcn, ok := setAllocators[name]
	if !ok {
		return nil, familyErr(name, SubfieldsFamily)
	}
	set := fcn()
	if set == nil {
		return nil, chk.Err("subfields %q are not available", name)
	}
	return set, nil
}

// GetSolutionFactory gets the function that allocates a solution field
func GetSolutionFactory(name string) (SolutionFactory, error) {
	if fcn, ok := solutionFactories[name]; ok {
		return fcn, nil
	}
	return nil, chk.Err("cannot find solution factory named %q. available: %v", name, keys(solutionFactories))
}

// Family returns the family of a registered type name or "" if not registered
func Family(name string) string {
	if _, ok := subfieldAllocators[name]; ok {
		return SubfieldFamily
	}
	if _, ok := setAllocators[name]; ok {
		return SubfieldsFamily
	}
	return ""
}

// SubfieldTypes returns the sorted names of all subfield descriptors
func SubfieldTypes() []string {
	return keys(subfieldAllocators)
}

// SetTypes returns the sorted names of all composites
func SetTypes() []string {
	return keys(setAllocators)
}

// familyErr returns the error of a name that is not in the wanted family
func familyErr(name, want string) error {
	if fam := Family(name); fam != "" {
		return chk.Err("%q belongs to family %q and cannot be used in family %q", name, fam, want)
	}
	switch want {
	case SubfieldFamily:
		return chk.Err("subfield %q is not available in %q database. available: %v", name, want, SubfieldTypes())
	}
	return chk.Err("subfields %q are not available in %q database. available: %v", name, want, SetTypes())
}

// keys returns the sorted keys of a map
func keys[T any](m map[string]T) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// subfieldAllocators holds all subfield descriptor allocators
var subfieldAllocators = make(map[string]SubfieldAllocator)

// setAllocators holds all composite allocators
var setAllocators = make(map[string]SetAllocator)

// solutionFactories holds all solution factories
var solutionFactories = make(map[string]SolutionFactory)
