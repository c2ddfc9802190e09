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

// Gas implements natural gas properties: Brill-Beggs explicit z-factor,
// formation volume factor, Lee-Gonzalez viscosity and in-situ density.
// Pressures are psia, temperatures °F unless noted otherwise.
type Gas struct {

	// parameters
	Sg float64 // gas specific gravity (air = 1)

	// pseudo-critical correlation
	pc Pcrit
}

// Init initialises model. The parameter "sutton" (any positive value)
// switches the pseudo-critical correlation from the linear fit to Sutton's.
func (o *Gas) Init(prms dbf.Params) (err error) {
	pcname := "linfit"
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "gamgas":
			o.Sg = p.V
		case "sutton":
			if p.V > 0 {
				pcname = "sutton"
			}
		default:
			return chk.Err("gas: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Sg <= 0 {
		return chk.Err("gas: gravity gamgas must be positive. gamgas=%g is invalid", o.Sg)
	}
	o.pc, err = NewPcrit(pcname)
	return
}

// GetPrms gets (an example) of parameters
func (o Gas) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "gamgas", V: 0.65},
		&dbf.P{N: "sutton", V: 0},
	}
}

// Crit returns the pseudo-critical temperature [°R] and pressure [psia]
func (o Gas) Crit() (Tc, Pc float64) {
	return o.pc.Crit(o.Sg)
}

// Reduced returns the pseudo-reduced pressure and temperature
func (o Gas) Reduced(p, T float64) (Pr, Tr float64) {
	Tc, Pc := o.pc.Crit(o.Sg)
	Pr = p / Pc
	Tr = (T + 460.0) / Tc
	return
}

// Zfactor computes the gas deviation factor with the Brill-Beggs explicit fit
func (o Gas) Zfactor(p, T float64) float64 {
	Pr, Tr := o.Reduced(p, T)
	return zBrillBeggs(Pr, Tr)
}

// Bg computes the gas formation volume factor [ft³/scf]
func (o Gas) Bg(p, T float64) float64 {
	z := o.Zfactor(p, T)
	return 0.0283 * z * (T + 460.0) / p
}

// Rho computes the in-situ gas density [lb/ft³]
func (o Gas) Rho(p, T float64) float64 {
	z := o.Zfactor(p, T)
	return 2.7 * o.Sg * p / ((T + 460.0) * z)
}

// Visc computes the gas viscosity [cp] with the Lee-Gonzalez correlation
func (o Gas) Visc(p, T float64) float64 {
	M := 29.0 * o.Sg // apparent molecular weight
	Ta := T + 460.0
	x := 3.5 + 986.0/Ta + 0.01*M
	lam := 2.4 - 0.2*x
	k := (9.4 + 0.02*M) * math.Pow(Ta, 1.5) / (209.0 + 19.0*M + Ta)
	rho := o.Rho(p, T)
	return k * 1e-4 * math.Exp(x*math.Pow(0.01602*rho, lam))
}

// zBrillBeggs evaluates the explicit Brill-Beggs z-factor fit
// from reduced pressure and temperature
func zBrillBeggs(Pr, Tr float64) float64 {
	D := math.Pow(10.0, 0.3106-0.49*Tr+0.1824*Tr*Tr)
	C := 0.132 - 0.32*math.Log10(Tr)
	B := (0.62-0.23*Tr)*Pr + (0.066/(Tr-0.86)-0.037)*Pr*Pr + 0.32*math.Pow(Pr, 6.0)/math.Pow(10.0, 9.0*(Tr-1.0))
	A := 1.39*math.Sqrt(Tr-0.92) - 0.36*Tr - 0.101
	return A + (1.0-A)*math.Exp(-B) + C*math.Pow(Pr, D)
}
