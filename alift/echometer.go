// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/bRunquist/utpgetools-package/pvt"
)

// Echometer estimates the flowing bottomhole pressure of a pumping well
// from an acoustic fluid level shot: sonic velocity in the annulus gas
// gives the liquid level, the McCoy correlation gives the liquid fraction
// of the gaseous column, and the BHP follows from the gas and fluid
// column gradients.
type Echometer struct {

	// acoustic shot
	Pbu    float64 // casing pressure buildup time [s]
	Travel float64 // round-trip travel time of the pulse [s]
	Dpcas  float64 // casing pressure buildup [psi]

	// well and fluids
	API  float64 // oil gravity [°API]
	GamG float64 // gas gravity (air = 1)
	GamW float64 // water gravity
	T    float64 // average annulus temperature [°F]
	Psa  float64 // surface annulus pressure [psia]
	Wor  float64 // water-oil ratio
	Tvd  float64 // true vertical depth to the pump intake [ft]

	Silent bool // suppress the report
}

// EchoResults holds the intermediate and final echometer quantities
type EchoResults struct {
	Z      float64 // gas deviation factor at annulus conditions
	Vg     float64 // sonic velocity in the annulus gas [ft/s]
	Level  float64 // depth to the liquid level [ft]
	QoverA float64 // annular gas rate per unit area [Mscf/d/ft²]
	Fl     float64 // liquid fraction of the gaseous column
	Fo     float64 // oil fraction
	Fw     float64 // water fraction
	Fg     float64 // gas fraction
	Rhof   float64 // gaseous column fluid density [lb/ft³]
	Bhp    float64 // bottomhole pressure [psia]
}

// Init initialises this structure
func (o *Echometer) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pbu":
			o.Pbu = p.V
		case "travel":
			o.Travel = p.V
		case "dpcas":
			o.Dpcas = p.V
		case "api":
			o.API = p.V
		case "gamgas":
			o.GamG = p.V
		case "gamwat":
			o.GamW = p.V
		case "temp":
			o.T = p.V
		case "psa":
			o.Psa = p.V
		case "wor":
			o.Wor = p.V
		case "tvd":
			o.Tvd = p.V
		default:
			return chk.Err("echometer: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Pbu <= 0 || o.Travel <= 0 {
		return chk.Err("echometer: shot times must be positive. pbu=%g, travel=%g", o.Pbu, o.Travel)
	}
	if o.GamG <= 0 || o.API <= 0 {
		return chk.Err("echometer: fluid gravities are invalid. gamgas=%g, api=%g", o.GamG, o.API)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Echometer) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "pbu", V: 60},
		&dbf.P{N: "travel", V: 2.5},
		&dbf.P{N: "dpcas", V: 15},
		&dbf.P{N: "api", V: 35},
		&dbf.P{N: "gamgas", V: 0.65},
		&dbf.P{N: "gamwat", V: 1.05},
		&dbf.P{N: "temp", V: 150},
		&dbf.P{N: "psa", V: 50},
		&dbf.P{N: "wor", V: 2},
		&dbf.P{N: "tvd", V: 5000},
	}
}

// Run computes the fluid level and bottomhole pressure
func (o *Echometer) Run() (res *EchoResults, err error) {

	gas := new(pvt.Gas)
	err = gas.Init(dbf.Params{&dbf.P{N: "gamgas", V: o.GamG}})
	if err != nil {
		return
	}

	res = new(EchoResults)
	res.Z = gas.Zfactor(o.Psa, o.T)
	Ta := o.T + 460.0

	// Newton-Laplace sonic velocity and liquid level
	res.Vg = 41.44 * math.Sqrt(1.25*res.Z*Ta/o.GamG)
	res.Level = o.Travel * res.Vg / 2.0
	if res.Level >= o.Tvd {
		return nil, chk.Err("echometer: liquid level %g ft is below the pump intake at %g ft", res.Level, o.Tvd)
	}

	// McCoy liquid fraction of the gaseous column
	res.QoverA = 0.68 * o.Dpcas * res.Level / o.Pbu
	res.Fl = 4.6572 * math.Pow(res.QoverA, -0.319)
	if res.Fl > 1.0 {
		return nil, chk.Err("echometer: liquid fraction %g exceeds unity; check buildup time and casing pressure", res.Fl)
	}
	res.Fo = res.Fl / (1.0 + o.Wor)
	res.Fw = res.Fl - res.Fo
	res.Fg = 1.0 - res.Fl

	// column density and bottomhole pressure
	gamO := 141.5 / (o.API + 131.5)
	res.Rhof = 62.4 * (gamO*res.Fo + o.GamW*res.Fw) / (1.0 - 0.0187*(o.Tvd-res.Level)*o.GamG/(res.Z*Ta)*res.Fg)
	res.Bhp = o.Psa*(1.0+res.Level/40000.0) + 0.433*res.Rhof/62.4*(o.Tvd-res.Level)

	if !o.Silent {
		o.report(res)
	}
	return
}

func (o *Echometer) report(res *EchoResults) {
	printSection("echometer fluid level survey")
	printQty("gas deviation factor z", "", "%.4f", res.Z)
	printQty("sonic velocity vg", "ft/s", "%.1f", res.Vg)
	printQty("liquid level", "ft", "%.1f", res.Level)
	printQty("annular gas rate q/A", "Mscf/d/ft2", "%.1f", res.QoverA)
	printQty("liquid fraction fl", "", "%.4f", res.Fl)
	printQty("oil fraction fo", "", "%.4f", res.Fo)
	printQty("water fraction fw", "", "%.4f", res.Fw)
	printQty("column density", "lb/ft3", "%.2f", res.Rhof)
	printQty("bottomhole pressure", "psia", "%.1f", res.Bhp)
}
