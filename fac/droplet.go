// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fac

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SettlingVelocity iterates the droplet drag coefficient and terminal
// velocity to convergence on the Reynolds number. rhoc and rhod are the
// continuous and dispersed phase densities [lb/ft³], dm the droplet
// diameter [µm], mu the continuous phase viscosity [cp] and acc the
// relative convergence tolerance (0.01 when non-positive). Stokes' law
// applies for Re ≤ 1, the intermediate law otherwise.
func SettlingVelocity(rhoc, rhod, dm, mu, acc float64) (cd, vt float64, nit int, err error) {
	if rhoc <= 0 || mu <= 0 || dm <= 0 {
		err = chk.Err("drag: continuous phase is invalid. rhoc=%g, mu=%g, dm=%g", rhoc, mu, dm)
		return
	}
	if acc <= 0 {
		acc = 0.01
	}
	cd = 0.34
	re := 1e3
	e := 1.0
	for e > acc {
		reOld := re
		vt = 0.0119 * math.Sqrt(dm*math.Abs(rhod-rhoc)/cd/rhoc)
		re = 4.822e-3 * rhoc * dm * vt / mu
		if re <= 1.0 {
			cd = 24.0 / re
		} else {
			cd = 24.0/re + 3.0/math.Sqrt(re) + 0.34
		}
		e = math.Abs((re - reOld) / reOld)
		nit++
		if nit > 1000 {
			err = chk.Err("drag: iteration did not converge after %d steps", nit)
			return
		}
	}
	return
}
