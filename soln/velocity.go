// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

// Velocity implements the velocity subfield used by dynamic problems
type Velocity struct {
	base
}

func init() {
	SetSubfieldAllocator("velocity", func() Subfield {
		return &Velocity{newBase("velocity", "velocity", "v", Vector, "velocity", "Velocity subfield.")}
	})
}
