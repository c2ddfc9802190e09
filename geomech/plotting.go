// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomech

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotMohr plots the three Mohr circles, the friction line and the fault
// point
func PlotMohr(o *FaultStress, res *FaultResult, np int, dirout, fnkey string) {

	colors := []string{"b", "g", "m"}
	for i, c := range res.Circles {
		th := utl.LinSpace(0, math.Pi, np)
		x := make([]float64, np)
		y := make([]float64, np)
		for k, t := range th {
			x[k] = c.C + c.R*math.Cos(t)
			y[k] = c.R * math.Sin(t)
		}
		plt.Plot(x, y, &plt.A{C: colors[i], Ls: "-"})
	}

	// friction line
	smax := res.Circles[2].C + res.Circles[2].R
	plt.Plot([]float64{0, smax}, []float64{0, o.Mu * smax}, &plt.A{C: "k", Ls: "--", L: "friction"})

	// fault point
	plt.Plot([]float64{res.Sn}, []float64{res.Tau}, &plt.A{C: "r", M: "o", L: "fault"})

	plt.Equal()
	plt.Gll("$\\sigma_n$ [psi]", "$\\tau$ [psi]", nil)
	plt.Save(dirout, fnkey)
}
