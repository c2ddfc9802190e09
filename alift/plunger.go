// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// plunger travel speeds [ft/min]
const (
	plungerRiseSpeed = 750.0
	plungerFallSpeed = 250.0
)

// Plunger computes plunger lift cycle times, slug volumes, the daily
// production rate and the casing pressure required to lift the slug
type Plunger struct {

	// input
	Depth    float64 // plunger travel depth [ft]
	Blowdown float64 // blowdown (afterflow) time per cycle [min]
	Wor      float64 // water-oil ratio of the slug
	TubID    float64 // tubing inner diameter [in]
	Slug     float64 // slug height [ft]
	Loss     float64 // liquid fallback fraction per 1000 ft of travel
	Pt       float64 // tubing pressure at surface [psia]
	Wp       float64 // plunger weight [lb]
	API      float64 // oil gravity [°API]
	GamW     float64 // water gravity

	Silent bool // suppress the report
}

// PlungerResults holds the cycle and rate quantities
type PlungerResults struct {
	TRise        float64 // plunger rise time [min]
	TFall        float64 // plunger fall time [min]
	TCycle       float64 // full cycle time [min]
	CyclesPerDay float64
	TubCap       float64 // tubing capacity [ft³/ft]
	SlugStb      float64 // slug volume [STB]
	CycleVol     float64 // produced volume per cycle after fallback [STB]
	Rate         float64 // liquid production rate [BLPD]
	RateOil      float64 // oil production rate [BOPD]
	GamL         float64 // slug liquid gravity
	Ws           float64 // slug weight [lb]
	Pg           float64 // required casing (gas) pressure [psia]
}

// Init initialises this structure
func (o *Plunger) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "depth":
			o.Depth = p.V
		case "blowdown":
			o.Blowdown = p.V
		case "wor":
			o.Wor = p.V
		case "tubid":
			o.TubID = p.V
		case "slug":
			o.Slug = p.V
		case "loss":
			o.Loss = p.V
		case "pt":
			o.Pt = p.V
		case "wp":
			o.Wp = p.V
		case "api":
			o.API = p.V
		case "gamwat":
			o.GamW = p.V
		default:
			return chk.Err("plunger: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Depth <= 0 || o.TubID <= 0 {
		return chk.Err("plunger: geometry is invalid. depth=%g, tubid=%g", o.Depth, o.TubID)
	}
	if o.API <= 0 {
		return chk.Err("plunger: oil gravity api=%g is invalid", o.API)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Plunger) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "depth", V: 8000},
		&dbf.P{N: "blowdown", V: 30},
		&dbf.P{N: "wor", V: 1},
		&dbf.P{N: "tubid", V: 2.441},
		&dbf.P{N: "slug", V: 300},
		&dbf.P{N: "loss", V: 0.05},
		&dbf.P{N: "pt", V: 100},
		&dbf.P{N: "wp", V: 10},
		&dbf.P{N: "api", V: 40},
		&dbf.P{N: "gamwat", V: 1.05},
	}
}

// Run computes the plunger lift cycle
func (o *Plunger) Run() (res *PlungerResults) {

	res = new(PlungerResults)
	res.TRise = o.Depth / plungerRiseSpeed
	res.TFall = o.Depth / plungerFallSpeed
	res.TCycle = res.TRise + res.TFall + o.Blowdown
	res.CyclesPerDay = 1440.0 / res.TCycle

	res.TubCap = math.Pi * math.Pow(o.TubID/2.0/12.0, 2.0)
	res.SlugStb = res.TubCap * o.Slug / 5.615
	res.CycleVol = res.SlugStb * (1.0 - o.Loss/1000.0*o.Depth)
	res.Rate = res.CycleVol * res.CyclesPerDay
	res.RateOil = res.Rate / (1.0 + o.Wor)

	// required casing pressure to lift slug and plunger
	at := math.Pi * math.Pow(o.TubID/2.0, 2.0)
	wcut := o.Wor / (1.0 + o.Wor)
	oilSg := 141.5 / (131.5 + o.API)
	res.GamL = oilSg*(1.0-wcut) + o.GamW*wcut
	res.Ws = res.SlugStb * 350.0 * res.GamL
	res.Pg = 1.5*(res.Ws+o.Wp)/at + o.Pt

	if !o.Silent {
		o.report(res)
	}
	return
}

func (o *Plunger) report(res *PlungerResults) {
	printSection("plunger lift cycle")
	printQty("rise time", "min", "%.1f", res.TRise)
	printQty("fall time", "min", "%.1f", res.TFall)
	printQty("cycle time", "min", "%.1f", res.TCycle)
	printQty("cycles per day", "", "%.1f", res.CyclesPerDay)
	printQty("slug volume", "STB", "%.3f", res.SlugStb)
	printQty("volume per cycle", "STB", "%.3f", res.CycleVol)
	printQty("liquid rate", "BLPD", "%.1f", res.Rate)
	printQty("oil rate", "BOPD", "%.1f", res.RateOil)
	printQty("slug weight", "lb", "%.1f", res.Ws)
	printQty("required casing pressure", "psia", "%.1f", res.Pg)
}
