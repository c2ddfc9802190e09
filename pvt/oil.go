// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Oil implements black-oil properties: Standing bubble point and solution
// gas-oil ratio, formation volume factor, undersaturated compressibility,
// Beggs-Robinson viscosity and live oil density.
// Pressures are psia, temperatures °F, ratios scf/STB.
type Oil struct {

	// parameters
	API   float64 // stock-tank oil gravity [°API]
	GasSg float64 // produced gas gravity at standard conditions (air = 1)
	SepT  float64 // separator temperature [°F]
	SepP  float64 // separator gauge pressure [psig]
	Gor   float64 // producing gas-oil ratio [scf/STB]

	// derived
	sg  float64 // oil specific gravity
	sgc float64 // separator-corrected gas gravity
}

// Init initialises model
func (o *Oil) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "api":
			o.API = p.V
		case "gamgas":
			o.GasSg = p.V
		case "tsep":
			o.SepT = p.V
		case "psep":
			o.SepP = p.V
		case "gor":
			o.Gor = p.V
		default:
			return chk.Err("oil: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.API <= 0 {
		return chk.Err("oil: gravity api must be positive. api=%g is invalid", o.API)
	}
	if o.GasSg <= 0 {
		return chk.Err("oil: gas gravity gamgas must be positive. gamgas=%g is invalid", o.GasSg)
	}
	o.sg = 141.5 / (o.API + 131.5)
	o.sgc = o.GasSg * (1.0 + 5.912e-5*o.API*o.SepT*math.Log10((o.SepP+14.7)/114.7))
	return
}

// GetPrms gets (an example) of parameters
func (o Oil) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "api", V: 35},
		&dbf.P{N: "gamgas", V: 0.65},
		&dbf.P{N: "tsep", V: 100},
		&dbf.P{N: "psep", V: 100},
		&dbf.P{N: "gor", V: 600},
	}
}

// Sg returns the stock-tank oil specific gravity
func (o Oil) Sg() float64 {
	return o.sg
}

// GasSgCorr returns the separator-corrected gas gravity
func (o Oil) GasSgCorr() float64 {
	return o.sgc
}

// Pb computes the Standing bubble point pressure [psia]
func (o Oil) Pb(T float64) float64 {
	a := o.API / (T + 460.0)
	if o.API <= 30 {
		return math.Pow(27.64*o.Gor/(o.sgc*math.Pow(10.0, 11.172*a)), 1.0/1.0937)
	}
	return math.Pow(56.06*o.Gor/(o.sgc*math.Pow(10.0, 10.393*a)), 1.0/1.187)
}

// Rs computes the solution gas-oil ratio [scf/STB], clamped to [0, Gor]
func (o Oil) Rs(p, T float64) float64 {
	a := o.API / (T + 460.0)
	var rs float64
	if o.API <= 30 {
		rs = o.sgc * math.Pow(p, 1.0937) * math.Pow(10.0, 11.172*a) / 27.64
	} else {
		rs = o.sgc * math.Pow(p, 1.187) * math.Pow(10.0, 10.393*a) / 56.06
	}
	return math.Min(math.Max(rs, 0.0), o.Gor)
}

// Bo computes the oil formation volume factor [bbl/STB]
func (o Oil) Bo(p, T float64) float64 {
	pb := o.Pb(T)
	F := (T - 60.0) * o.API / o.sgc
	if p < pb {
		rs := o.Rs(p, T)
		return o.bosat(rs, F)
	}
	bob := o.bosat(o.Gor, F)
	return bob * math.Exp(o.Co(p, T)*(pb-p))
}

// Co computes the undersaturated oil compressibility [1/psi]
func (o Oil) Co(p, T float64) float64 {
	rs := o.Rs(p, T)
	return (-1.433 + 5.0*rs + 17.2*T - 1.18*o.sgc + 12.61*o.API) / (p * 1e5)
}

// ViscDead computes the dead oil viscosity [cp]
func (o Oil) ViscDead(T float64) float64 {
	z := 3.0324 - 0.02023*o.API
	x := math.Pow(10.0, z) * math.Pow(T, -1.163)
	return math.Pow(10.0, x) - 1.0
}

// Visc computes the live oil viscosity [cp] with the Beggs-Robinson
// correlation and the Vazquez-Beggs undersaturated correction
func (o Oil) Visc(p, T float64) float64 {
	pb := o.Pb(T)
	rs := o.Rs(p, T)
	muod := o.ViscDead(T)
	aa := 10.715 * math.Pow(rs+100.0, -0.515)
	bb := 5.44 * math.Pow(rs+150.0, -0.338)
	muob := aa * math.Pow(muod, bb)
	if p <= pb {
		return muob
	}
	m := 2.6 * math.Pow(p, 1.187) * math.Exp(-11.513-8.98e-5*p)
	return muob * math.Pow(p/pb, m)
}

// Rho computes the live oil density [lb/ft³] including dissolved gas
func (o Oil) Rho(p, T float64) float64 {
	var lin LinFit
	Tc, Pc := lin.Crit(o.GasSg)
	z := zBrillBeggs(p/Pc, (T+460.0)/Tc)
	densG := 2.7 * o.GasSg * p / ((T + 460.0) * z)
	densAir := 28.97 * p / (10.73159 * z * (T + 460.0))
	bo := o.Bo(p, T)
	rs := o.Rs(p, T)
	return 62.4*o.sg/bo + 0.0764*(densG/densAir)*rs/(bo*5.615)
}

// bosat evaluates the saturated FVF correlation with solution ratio rs
func (o Oil) bosat(rs, F float64) float64 {
	if o.API <= 30 {
		return 1.0 + 4.677e-4*rs + 1.751e-5*F - 1.8106e-8*rs*F
	}
	return 1.0 + 4.677e-4*rs + 1.1e-5*F - 1.337e-9*rs*F
}
