// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package soln

// Pressure implements the (fluid or mean stress) pressure subfield
type Pressure struct {
	base
}

func init() {
	SetSubfieldAllocator("pressure", func() Subfield {
		return &Pressure{newBase("pressure", "pressure", "p", Scalar, "pressure", "Pressure subfield.")}
	})
}
