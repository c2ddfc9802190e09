// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gen implements small general-purpose helpers
package gen

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MatBuild builds an nrow × ncol matrix from values laid out row by row
func MatBuild(nrow, ncol int, vals []float64) (mat [][]float64, err error) {
	if nrow < 1 || ncol < 1 {
		return nil, chk.Err("matbuild: dimensions %d × %d are invalid", nrow, ncol)
	}
	if len(vals) != nrow*ncol {
		return nil, chk.Err("matbuild: %d values cannot fill a %d × %d matrix", len(vals), nrow, ncol)
	}
	mat = utl.Alloc(nrow, ncol)
	for i := 0; i < nrow; i++ {
		for j := 0; j < ncol; j++ {
			mat[i][j] = vals[i*ncol+j]
		}
	}
	return
}
