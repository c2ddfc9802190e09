// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// GasLift computes unloading valve depths for a continuous gas lift
// installation. The first valve is set where the kill-fluid gradient from
// the wellhead meets the injection pressure; each following valve drops by
// the distance the injection gradient gains over the tubing gradient.
// The string is capped at the packer depth.
type GasLift struct {

	// input
	Pinj    float64 // surface operating injection pressure [psia]
	Pwh     float64 // wellhead pressure [psia]
	Gk      float64 // kill fluid gradient [psi/ft]
	Gg      float64 // injection gas gradient [psi/ft]
	Pdt     float64 // flowing tubing pressure at valve depth [psia]
	Gdt     float64 // flowing tubing gradient [psi/ft]
	Packer  float64 // packer depth [ft]
	Kickoff float64 // kickoff pressure [psia]; zero uses Pinj

	Silent bool // suppress the report
}

// Init initialises this structure
func (o *GasLift) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pinj":
			o.Pinj = p.V
		case "pwh":
			o.Pwh = p.V
		case "gk":
			o.Gk = p.V
		case "gg":
			o.Gg = p.V
		case "pdt":
			o.Pdt = p.V
		case "gdt":
			o.Gdt = p.V
		case "packer":
			o.Packer = p.V
		case "kickoff":
			o.Kickoff = p.V
		default:
			return chk.Err("gaslift: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Gk <= o.Gg {
		return chk.Err("gaslift: kill gradient gk=%g must exceed gas gradient gg=%g", o.Gk, o.Gg)
	}
	if o.Packer <= 0 {
		return chk.Err("gaslift: packer depth must be positive. packer=%g is invalid", o.Packer)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o GasLift) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "pinj", V: 1000},
		&dbf.P{N: "pwh", V: 100},
		&dbf.P{N: "gk", V: 0.433},
		&dbf.P{N: "gg", V: 0.05},
		&dbf.P{N: "pdt", V: 600},
		&dbf.P{N: "gdt", V: 0.04},
		&dbf.P{N: "packer", V: 8000},
		&dbf.P{N: "kickoff", V: 0},
	}
}

// Depths computes the valve depths [ft], rounded to whole feet.
// The recursion must advance on every valve; a non-positive spacing
// increment is an error rather than an endless string.
func (o *GasLift) Depths() (depths []float64, err error) {

	p1 := o.Pinj
	if o.Kickoff > 0 {
		p1 = o.Kickoff
	}
	h1 := (p1 - o.Pwh) / (o.Gk - o.Gg)
	if h1 <= 0 {
		return nil, chk.Err("gaslift: first valve depth %g is not below surface; injection pressure is too low", h1)
	}
	if h1 >= o.Packer {
		depths = []float64{math.Round(o.Packer)}
		return
	}
	depths = append(depths, math.Round(h1))

	hn := h1
	for {
		dh := (o.Pinj - o.Pdt + (o.Gg-o.Gdt)*hn) / (o.Gk - o.Gg)
		if dh <= 0 {
			return nil, chk.Err("gaslift: valve spacing stalled at %g ft (increment %g ft); flowing tubing pressure is too high", hn, dh)
		}
		hn += dh
		if hn > o.Packer {
			depths = append(depths, math.Round(o.Packer))
			break
		}
		depths = append(depths, math.Round(hn))
	}

	if !o.Silent {
		printSection("gas lift valve spacing")
		for i, d := range depths {
			io.Pfcyan("valve %2d", i+1)
			io.Pf(" at ")
			io.PfRed("%.0f", d)
			io.Pf(" ft\n")
		}
	}
	return
}
