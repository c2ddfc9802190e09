// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/plt"
)

// PlotProfile plots a pressure traverse with depth increasing downwards
func PlotProfile(Z, P []float64, dirout, fnkey string) {
	D := make([]float64, len(Z))
	for i, z := range Z {
		D[i] = -z
	}
	plt.Plot(P, D, &plt.A{C: "b", Ls: "-", M: "o"})
	plt.Gll("$p$ [psia]", "depth [ft]", nil)
	plt.Save(dirout, fnkey)
}

// PlotCurve plots an outflow (VLP) curve
func PlotCurve(rates, bhps []float64, dirout, fnkey string) {
	plt.Plot(rates, bhps, &plt.A{C: "r", Ls: "-", M: "o", L: "VLP"})
	plt.Gll("$q_l$ [STB/d]", "$p_{wf}$ [psia]", nil)
	plt.Save(dirout, fnkey)
}
