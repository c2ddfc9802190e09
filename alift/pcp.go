// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/bRunquist/utpgetools-package/flow"
)

// PCP mechanical constants
const (
	pcpBearingRating = 50500.0 // basic dynamic load rating [lb]
	pcpBearingLife   = 90e6    // rated bearing life [revolutions]
	pcpRefRate       = 250.0   // hydraulic reference rate [STB/d]
)

// PCP sizes a progressive cavity pump installation: required speed and
// torque, input and hydraulic power, rod loading, von Mises stress at the
// polished rod and thrust bearing life
type PCP struct {

	// pump duty
	Qliq float64 // liquid rate [STB/d]
	Eff  float64 // volumetric pump efficiency
	Cap  float64 // pump capacity [bbl/d per rpm]
	Pdis float64 // pump discharge pressure [psia]
	Pwf  float64 // pump intake pressure [psia]

	// rod string and drive
	Depth  float64 // pump depth [ft]
	Wr     float64 // rod weight in air [lb/ft]
	Drotor float64 // rotor eccentric diameter [in]
	Drod   float64 // rod diameter [in]

	// produced liquid
	API  float64 // oil gravity [°API]
	GamW float64 // water gravity
	Wor  float64 // water-oil ratio

	Silent bool // suppress the report
}

// PCPResults holds the sizing quantities
type PCPResults struct {
	Speed    float64 // pump speed [rpm]
	Torque   float64 // drive torque [ft·lb]
	BHPin    float64 // brake power input [hp]
	HHPout   float64 // hydraulic power output [hp]
	Epcp     float64 // overall pump efficiency [%]
	GamL     float64 // produced liquid gravity
	Fr       float64 // buoyed rod string load [lb]
	Fb       float64 // hydraulic thrust on the rotor [lb]
	VonMises float64 // combined rod stress [psi]
	BearLife float64 // thrust bearing L10 life [years]
}

// Init initialises this structure
func (o *PCP) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qliq":
			o.Qliq = p.V
		case "eff":
			o.Eff = p.V
		case "cap":
			o.Cap = p.V
		case "pdis":
			o.Pdis = p.V
		case "pwf":
			o.Pwf = p.V
		case "depth":
			o.Depth = p.V
		case "wr":
			o.Wr = p.V
		case "drotor":
			o.Drotor = p.V
		case "drod":
			o.Drod = p.V
		case "api":
			o.API = p.V
		case "gamwat":
			o.GamW = p.V
		case "wor":
			o.Wor = p.V
		default:
			return chk.Err("pcp: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Eff <= 0 || o.Eff > 1 {
		return chk.Err("pcp: volumetric efficiency eff=%g must be within (0, 1]", o.Eff)
	}
	if o.Cap <= 0 {
		return chk.Err("pcp: pump capacity cap=%g is invalid", o.Cap)
	}
	if o.Drod <= 0 || o.Drotor <= 0 {
		return chk.Err("pcp: rod/rotor diameters are invalid. drod=%g, drotor=%g", o.Drod, o.Drotor)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o PCP) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "qliq", V: 300},
		&dbf.P{N: "eff", V: 0.85},
		&dbf.P{N: "cap", V: 0.5},
		&dbf.P{N: "pdis", V: 1700},
		&dbf.P{N: "pwf", V: 1500},
		&dbf.P{N: "depth", V: 5000},
		&dbf.P{N: "wr", V: 2.5},
		&dbf.P{N: "drotor", V: 3},
		&dbf.P{N: "drod", V: 1.25},
		&dbf.P{N: "api", V: 30},
		&dbf.P{N: "gamwat", V: 1.05},
		&dbf.P{N: "wor", V: 2},
	}
}

// SetDischarge computes the discharge pressure by running the annular
// flow traverse at the given rate and stores it in Pdis
func (o *PCP) SetDischarge(trv *flow.Traverse, rate float64) (err error) {
	o.Pdis, err = trv.Bhp(rate)
	return
}

// Run computes the pump sizing
func (o *PCP) Run() (res *PCPResults, err error) {

	if o.Pdis <= o.Pwf {
		return nil, chk.Err("pcp: discharge pressure %g must exceed intake pressure %g", o.Pdis, o.Pwf)
	}

	res = new(PCPResults)
	dp := o.Pdis - o.Pwf

	// duty
	res.Speed = o.Qliq * 0.4 / o.Eff / o.Cap
	res.Torque = 0.0894 * (o.Qliq / o.Eff) * dp / (res.Speed * 0.8)
	res.BHPin = (o.Qliq / o.Eff) * dp / (0.8 * 58771.0)
	res.HHPout = 1.7e-5 * pcpRefRate * dp
	res.Epcp = res.HHPout / res.BHPin * 100.0

	// rod loading
	wcut := o.Wor / (1.0 + o.Wor)
	oilSg := 141.5 / (131.5 + o.API)
	res.GamL = oilSg*(1.0-wcut) + o.GamW*wcut
	res.Fr = o.Depth * o.Wr * (1.0 - 0.127*res.GamL)
	res.Fb = 9.0 / 16.0 * math.Pi * o.Drotor * o.Drotor * dp
	res.VonMises = 4.0 / math.Pi / math.Pow(o.Drod, 3.0) *
		math.Sqrt(math.Pow(res.Fr+res.Fb, 2.0)*o.Drod*o.Drod+48.0*144.0*res.Torque*res.Torque)

	// thrust bearing L10 life
	res.BearLife = math.Pow(pcpBearingRating/(res.Fr+res.Fb), 10.0/3.0) * (pcpBearingLife / res.Speed) / 1440.0 / 365.0

	if !o.Silent {
		o.report(res)
	}
	return
}

func (o *PCP) report(res *PCPResults) {
	printSection("progressive cavity pump sizing")
	printQty("discharge pressure", "psia", "%.1f", o.Pdis)
	printQty("pump speed", "rpm", "%.1f", res.Speed)
	printQty("drive torque", "ft-lb", "%.1f", res.Torque)
	printQty("brake power input", "hp", "%.2f", res.BHPin)
	printQty("hydraulic power output", "hp", "%.2f", res.HHPout)
	printQty("overall efficiency", "%", "%.1f", res.Epcp)
	printQty("buoyed rod load", "lb", "%.0f", res.Fr)
	printQty("rotor thrust", "lb", "%.0f", res.Fb)
	printQty("von Mises rod stress", "psi", "%.0f", res.VonMises)
	printQty("thrust bearing life", "yr", "%.1f", res.BearLife)
}
