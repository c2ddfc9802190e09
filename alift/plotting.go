// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/bRunquist/utpgetools-package/flow"
)

// PlotIPR plots the inflow curves of all reservoir pressures
func PlotIPR(ipr *IPR, np int, dirout, fnkey string) (err error) {
	colors := []string{"b", "g", "r", "m", "c"}
	for i := 0; i < ipr.Npres(); i++ {
		pwfs := utl.LinSpace(0, ipr.Pres[i], np)
		q, e := ipr.Curve(i, pwfs)
		if e != nil {
			return e
		}
		clr := colors[i%len(colors)]
		plt.Plot(q, pwfs, &plt.A{C: clr, Ls: "-", L: io.Sf("$p_r$ = %.0f psia", ipr.Pres[i])})
	}
	plt.Gll("$q_l$ [STB/d]", "$p_{wf}$ [psia]", nil)
	plt.Save(dirout, fnkey)
	return
}

// PlotNodal plots inflow, outflow and the operating point for reservoir
// pressure i
func PlotNodal(ipr *IPR, i int, trv *flow.Traverse, rates []float64, np int, dirout, fnkey string) (err error) {

	pwfs := utl.LinSpace(0, ipr.Pres[i], np)
	q, err := ipr.Curve(i, pwfs)
	if err != nil {
		return
	}
	plt.Plot(q, pwfs, &plt.A{C: "b", Ls: "-", L: "IPR"})

	bhps, err := trv.Curve(rates)
	if err != nil {
		return
	}
	plt.Plot(rates, bhps, &plt.A{C: "r", Ls: "-", L: "VLP"})

	qop, pop, err := OperatingPoint(ipr, i, trv, utl.LinSpace(ipr.Pres[i]*0.95, ipr.Pres[i]*0.05, np))
	if err == nil {
		plt.Plot([]float64{qop}, []float64{pop}, &plt.A{C: "k", M: "o", L: "operating point"})
	}

	plt.Gll("$q_l$ [STB/d]", "$p_{wf}$ [psia]", nil)
	plt.Save(dirout, fnkey)
	return nil
}
