// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Water implements produced water density and viscosity
type Water struct {

	// parameters
	Sg float64 // water specific gravity
}

// Init initialises model
func (o *Water) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "gamwat":
			o.Sg = p.V
		default:
			return chk.Err("water: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Sg <= 0 {
		return chk.Err("water: gravity gamwat must be positive. gamwat=%g is invalid", o.Sg)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Water) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "gamwat", V: 1.05},
	}
}

// Rho returns the water density [lb/ft³]
func (o Water) Rho() float64 {
	return 62.4 * o.Sg
}

// Visc computes the water viscosity [cp] at temperature T [°F]
func (o Water) Visc(T float64) float64 {
	return math.Exp(1.003 - 1.479e-2*T + 1.982e-5*T*T)
}
