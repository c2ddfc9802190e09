// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to verify the
// numerical well calculations
package ana

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// StaticColumn computes the pressure along a static liquid column in
// oilfield units. The density grows linearly with pressure:
//
//	ρ    = ρ0 + C・(p - p0)        [lb/ft³]
//	dp/dz = ρ/144                  [psi/ft]
//
// which integrates to
//
//	p(D) = p0 + (ρ0/C)・(exp(C・D/144) - 1)
//
// with the incompressible column p0 + ρ0・D/144 as the C → 0 limit.
type StaticColumn struct {
	R0 float64 // density at the column top [lb/ft³]
	P0 float64 // pressure at the column top [psia]
	C  float64 // compressibility [lb/ft³ per psi]; zero for incompressible
}

// Calc computes pressure and density at depth D [ft] below the column top
func (o StaticColumn) Calc(D float64) (p, rho float64) {
	if o.C == 0 {
		p = o.P0 + o.R0*D/144.0
		rho = o.R0
		return
	}
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*D/144.0)-1.0)
	rho = o.R0 + o.C*(p-o.P0)
	return
}

// Plot plots pressure and density down the column to depth Dmax
func (o StaticColumn) Plot(Dmax float64, np int, dirout, fnkey string) {

	D := utl.LinSpace(0, Dmax, np)
	P := make([]float64, np)
	R := make([]float64, np)
	for i, d := range D {
		P[i], R[i] = o.Calc(d)
		D[i] = -d
	}

	pMaxLin := o.P0 + o.R0*Dmax/144.0

	plt.Subplot(2, 1, 1)
	plt.Plot(P, D, &plt.A{C: "k", Ls: "-"})
	plt.Plot([]float64{o.P0, pMaxLin}, []float64{0, -Dmax}, &plt.A{C: "grey", Ls: "--"})
	plt.Gll("$p$ [psia]", "depth [ft]", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(R, D, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$\\rho$ [lb/ft$^3$]", "depth [ft]", nil)

	plt.Save(dirout, fnkey)
}
