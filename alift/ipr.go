// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"github.com/cpmech/gosl/chk"
)

// IPR implements the composite Vogel inflow performance relationship for
// one or more reservoir pressures. Above the bubble point the inflow is
// linear with productivity index J; below it the Vogel curve continues
// from the bubble-point rate. A reservoir already below the bubble point
// uses the pure two-phase Vogel form anchored at the well test.
type IPR struct {

	// input
	Pres  []float64 // reservoir pressures [psia]
	Pb    float64   // bubble point pressure [psia]
	Qtest []float64 // test rates, one per reservoir pressure [STB/d]
	Ptest []float64 // test flowing pressures, one per reservoir pressure [psia]
	J     float64   // fixed productivity index [STB/d/psi]; zero derives J from the tests

	// derived
	j    []float64 // productivity index per reservoir pressure
	qb   []float64 // rate at bubble point per reservoir pressure
	qmax []float64 // absolute open flow per reservoir pressure
}

// Init validates input and computes the per-pressure curve constants
func (o *IPR) Init() (err error) {
	n := len(o.Pres)
	if n == 0 {
		return chk.Err("ipr: at least one reservoir pressure is required")
	}
	if len(o.Qtest) != n || len(o.Ptest) != n {
		return chk.Err("ipr: number of well tests (%d, %d) must match number of reservoir pressures (%d)", len(o.Qtest), len(o.Ptest), n)
	}
	o.j = make([]float64, n)
	o.qb = make([]float64, n)
	o.qmax = make([]float64, n)
	for i := 0; i < n; i++ {
		pres := o.Pres[i]
		if pres <= 0 {
			return chk.Err("ipr: reservoir pressure must be positive. pres=%g is invalid", pres)
		}
		if o.Ptest[i] >= pres {
			return chk.Err("ipr: test pressure %g must be below reservoir pressure %g", o.Ptest[i], pres)
		}
		if pres > o.Pb {
			// composite: linear above pb, Vogel continuation below
			if o.J > 0 {
				o.j[i] = o.J
			} else {
				o.j[i] = o.Qtest[i] / (pres - o.Ptest[i])
			}
			o.qb[i] = o.j[i] * (pres - o.Pb)
			o.qmax[i] = o.qb[i] / vogel(o.Pb/pres)
		} else {
			// two-phase reservoir: pure Vogel from the test point
			o.qmax[i] = o.Qtest[i] / vogel(o.Ptest[i]/pres)
		}
	}
	return
}

// Npres returns the number of reservoir pressures
func (o *IPR) Npres() int {
	return len(o.Pres)
}

// Jidx returns the productivity index for reservoir pressure i
func (o *IPR) Jidx(i int) float64 {
	return o.j[i]
}

// Qb returns the bubble-point rate for reservoir pressure i
func (o *IPR) Qb(i int) float64 {
	return o.qb[i]
}

// Qmax returns the absolute open flow for reservoir pressure i
func (o *IPR) Qmax(i int) float64 {
	return o.qmax[i]
}

// Flowrate computes the inflow rate [STB/d] at flowing pressure pwf for
// reservoir pressure i
func (o *IPR) Flowrate(i int, pwf float64) (float64, error) {
	if i < 0 || i >= len(o.Pres) {
		return 0, chk.Err("ipr: reservoir pressure index %d is out of range", i)
	}
	pres := o.Pres[i]
	if pwf < 0 || pwf > pres {
		return 0, chk.Err("ipr: flowing pressure %g is outside [0, %g]", pwf, pres)
	}
	if pres > o.Pb && pwf > o.Pb {
		return o.j[i] * (pres - pwf), nil
	}
	return vogel(pwf/pres) * o.qmax[i], nil
}

// Curve computes the inflow curve over the given flowing pressures for
// reservoir pressure i
func (o *IPR) Curve(i int, pwfs []float64) (q []float64, err error) {
	q = make([]float64, len(pwfs))
	for k, pwf := range pwfs {
		q[k], err = o.Flowrate(i, pwf)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Report prints the curve constants with the cyan/red convention
func (o *IPR) Report() {
	printSection("inflow performance")
	for i := range o.Pres {
		printQty("reservoir pressure", "psia", "%.1f", o.Pres[i])
		if o.Pres[i] > o.Pb {
			printQty("productivity index J", "STB/d/psi", "%.4f", o.j[i])
			printQty("rate at bubble point qb", "STB/d", "%.2f", o.qb[i])
		}
		printQty("absolute open flow qmax", "STB/d", "%.2f", o.qmax[i])
	}
}

// vogel evaluates the Vogel dimensionless inflow term for x = pwf/pres
func vogel(x float64) float64 {
	return 1.0 - 0.2*x - 0.8*x*x
}
