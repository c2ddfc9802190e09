// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fac implements surface facilities sizing calculations
package fac

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// LiquidArea computes the liquid escape area [ft²] of a separator dump
// valve from the orifice equation, with liquid density rhoL [lb/ft³] and
// pressure drop dp [psi] across the valve. ql is the liquid rate [bbl/d]
// and c the discharge coefficient.
func LiquidArea(ql, c, rhoL, dp float64) float64 {
	return math.Pi / 4.0 * ql / (8081.7 * c) * math.Sqrt(rhoL/dp)
}

// LiquidAreaSG is LiquidArea with the liquid given by specific gravity and
// the valve discharging a separator at psep [psia] to atmosphere
func LiquidAreaSG(ql, c, gammaL, psep float64) float64 {
	return LiquidArea(ql, c, gammaL*62.4, psep-14.7)
}

// MultiStage designs a multi-stage separation train with geometric
// pressure progression: R = (p1/pn)^(1/(n-1)) between stages and linear
// temperature decline. Returns the stage pressures and temperatures.
func MultiStage(p1, t1, pn, tn float64, n int) (P, T []float64, R float64, err error) {
	if n < 2 {
		err = chk.Err("multistage: at least two stages are required. n=%d is invalid", n)
		return
	}
	if p1 <= pn || pn <= 0 {
		err = chk.Err("multistage: pressures must decline. p1=%g, pn=%g", p1, pn)
		return
	}
	R = math.Pow(p1/pn, 1.0/float64(n-1))
	P = make([]float64, n)
	T = make([]float64, n)
	P[0], T[0] = p1, t1
	for i := 1; i < n; i++ {
		P[i] = P[i-1] / R
		T[i] = T[i-1] - (t1-tn)/float64(n-1)
	}
	return
}

// Esg computes the gas separation efficiency [scf/STB] from the mole
// percentages recovered per stage, the phase molecular weights and the
// phase densities [lb/ft³]
func Esg(molesPct []float64, mwOil, mwGas, rhoOil, rhoGas float64) float64 {
	sum := 0.0
	for _, g := range molesPct {
		sum += g / 100.0
	}
	om := rhoOil / mwOil
	gm := rhoGas / mwGas
	return 5.615 * om / gm * sum
}

// EsgSG is Esg with the phases given by specific gravities (water = 1 for
// the oil, air = 1 for the gas)
func EsgSG(molesPct []float64, mwOil, mwGas, gammaOil, gammaGas float64) float64 {
	return Esg(molesPct, mwOil, mwGas, gammaOil*62.4, gammaGas*0.0764)
}
