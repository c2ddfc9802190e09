// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotOil plots solution ratio, FVF, viscosity and density of an oil model
// over a pressure range at temperature T
func PlotOil(oil *Oil, pmin, pmax, T float64, np int, dirout, fnkey string) {

	P := utl.LinSpace(pmin, pmax, np)
	Rs := make([]float64, np)
	Bo := make([]float64, np)
	Mu := make([]float64, np)
	Rho := make([]float64, np)
	for i, p := range P {
		Rs[i] = oil.Rs(p, T)
		Bo[i] = oil.Bo(p, T)
		Mu[i] = oil.Visc(p, T)
		Rho[i] = oil.Rho(p, T)
	}

	plt.Subplot(2, 2, 1)
	plt.Plot(P, Rs, &plt.A{C: "b", Ls: "-"})
	plt.Gll("$p$ [psia]", "$R_s$ [scf/STB]", nil)

	plt.Subplot(2, 2, 2)
	plt.Plot(P, Bo, &plt.A{C: "g", Ls: "-"})
	plt.Gll("$p$ [psia]", "$B_o$ [bbl/STB]", nil)

	plt.Subplot(2, 2, 3)
	plt.Plot(P, Mu, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$p$ [psia]", "$\\mu_o$ [cp]", nil)

	plt.Subplot(2, 2, 4)
	plt.Plot(P, Rho, &plt.A{C: "k", Ls: "-"})
	plt.Gll("$p$ [psia]", "$\\rho_o$ [lb/ft$^3$]", nil)

	plt.Save(dirout, fnkey)
}

// PlotGas plots z-factor and gas FVF over a pressure range at temperature T
func PlotGas(gas *Gas, pmin, pmax, T float64, np int, dirout, fnkey string) {

	P := utl.LinSpace(pmin, pmax, np)
	Z := make([]float64, np)
	Bg := make([]float64, np)
	for i, p := range P {
		Z[i] = gas.Zfactor(p, T)
		Bg[i] = gas.Bg(p, T)
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(P, Z, &plt.A{C: "b", Ls: "-"})
	plt.Gll("$p$ [psia]", "$z$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(P, Bg, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$p$ [psia]", "$B_g$ [ft$^3$/scf]", nil)

	plt.Save(dirout, fnkey)
}
