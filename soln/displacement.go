// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

// Displacement implements the displacement subfield
type Displacement struct {
	base
}

// add subfield to factory
func init() {
	SetSubfieldAllocator("displacement", func() Subfield {
		return &Displacement{newBase("displacement", "displacement", "u", Vector, "length", "Displacement subfield.")}
	})
}
