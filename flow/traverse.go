// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements multiphase wellbore flow calculations
package flow

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/bRunquist/utpgetools-package/pvt"
)

// surface tensions [dyn/cm]
const (
	sigOil = 30.0
	sigWat = 74.0
)

// Traverse computes the pressure traverse of a producing well from the
// wellhead down, marching in fixed length increments with successive
// substitution on each increment. Flow regime switches between a
// bubble-flow slip model and Hagedorn-Brown holdup at the Duns-Ros
// boundary. Units: psia, °F, ft, inches for the diameter.
type Traverse struct {

	// geometry
	D    float64 // pipe inner diameter [in]
	Ztot float64 // total measured length [ft]
	Dz   float64 // length increment [ft]
	Ang  float64 // inclination from horizontal [deg]
	Eps  float64 // relative pipe roughness

	// stream
	Glr float64 // gas-liquid ratio [scf/STB]
	Wor float64 // water-oil ratio

	// boundary conditions
	Pwh float64 // wellhead pressure [psia]
	Twh float64 // wellhead (outlet) temperature [°F]
	Tbh float64 // bottomhole (inlet) temperature [°F]

	// fluid models
	Oil *pvt.Oil
	Gas *pvt.Gas
	Wtr *pvt.Water

	// iteration control
	Tol   float64 // convergence tolerance on Δp
	MaxIt int     // maximum iterations per increment

	// derived
	nsteps int
}

// Init initialises this structure
func (o *Traverse) Init(prms dbf.Params, oil *pvt.Oil, gas *pvt.Gas, wtr *pvt.Water) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "d":
			o.D = p.V
		case "len":
			o.Ztot = p.V
		case "dz":
			o.Dz = p.V
		case "ang":
			o.Ang = p.V
		case "rough":
			o.Eps = p.V
		case "glr":
			o.Glr = p.V
		case "wor":
			o.Wor = p.V
		case "pwh":
			o.Pwh = p.V
		case "twh":
			o.Twh = p.V
		case "tbh":
			o.Tbh = p.V
		default:
			return chk.Err("traverse: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.D <= 0 || o.Ztot <= 0 || o.Dz <= 0 {
		return chk.Err("traverse: geometry is invalid. d=%g, len=%g, dz=%g", o.D, o.Ztot, o.Dz)
	}
	if oil == nil || gas == nil || wtr == nil {
		return chk.Err("traverse: oil, gas and water models must be provided")
	}
	gor := o.Glr * (o.Wor + 1.0)
	if math.Abs(oil.Gor-gor) > 1e-10 {
		return chk.Err("traverse: oil model gor=%g is inconsistent with glr=%g, wor=%g (gor must be %g)", oil.Gor, o.Glr, o.Wor, gor)
	}
	o.Oil, o.Gas, o.Wtr = oil, gas, wtr
	o.Tol = 1e-3
	o.MaxIt = 200
	o.nsteps = int(o.Ztot / o.Dz)
	return
}

// GetPrms gets (an example) of parameters
func (o Traverse) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "d", V: 2.441},
		&dbf.P{N: "len", V: 8000},
		&dbf.P{N: "dz", V: 500},
		&dbf.P{N: "ang", V: 90},
		&dbf.P{N: "rough", V: 0.0006},
		&dbf.P{N: "glr", V: 400},
		&dbf.P{N: "wor", V: 1},
		&dbf.P{N: "pwh", V: 200},
		&dbf.P{N: "twh", V: 100},
		&dbf.P{N: "tbh", V: 180},
	}
}

// Profile marches the traverse for one liquid rate [STB/d] and returns
// measured depth, pressure and temperature arrays, wellhead first
func (o *Traverse) Profile(rate float64) (Z, P, T []float64, err error) {
	if rate <= 0 {
		err = chk.Err("traverse: rate must be positive. rate=%g is invalid", rate)
		return
	}
	n := o.nsteps
	Z = make([]float64, n+1)
	P = make([]float64, n+1)
	T = make([]float64, n+1)
	dft := o.D / 12.0
	ang := o.Ang * math.Pi / 180.0
	tgrad := (o.Tbh - o.Twh) / o.Ztot
	P[0] = o.Pwh
	T[0] = o.Twh
	olddp := 30.0
	for i := 1; i <= n; i++ {
		dp := olddp
		e := 1.0
		for itc := 0; e >= o.Tol && itc < o.MaxIt; itc++ {
			tm := T[i-1] + tgrad*o.Dz/2.0
			pm := P[i-1] + olddp/2.0
			dp = o.stepDp(pm, tm, rate, dft, ang)
			e = math.Abs(dp-olddp) / (math.Abs(olddp) + 1e-6)
			olddp = dp
		}
		Z[i] = Z[i-1] + o.Dz
		P[i] = P[i-1] + dp
		T[i] = T[i-1] + o.Dz*tgrad
	}
	return
}

// Bhp returns the flowing bottomhole pressure for one liquid rate [STB/d]
func (o *Traverse) Bhp(rate float64) (float64, error) {
	_, P, _, err := o.Profile(rate)
	if err != nil {
		return 0, err
	}
	return P[len(P)-1], nil
}

// Curve computes the outflow (VLP) curve: one BHP per rate
func (o *Traverse) Curve(rates []float64) (bhps []float64, err error) {
	bhps = make([]float64, len(rates))
	for i, q := range rates {
		bhps[i], err = o.Bhp(q)
		if err != nil {
			return nil, err
		}
	}
	return
}

// stepDp computes the pressure increment over one length step with
// properties evaluated at midpoint conditions (pm, tm)
func (o *Traverse) stepDp(pm, tm, rate, dft, ang float64) float64 {

	// fluid properties at midpoint
	gor := o.Glr * (o.Wor + 1.0)
	rs := o.Oil.Rs(pm, tm)
	bo := o.Oil.Bo(pm, tm)
	muo := o.Oil.Visc(pm, tm)
	denso := o.Oil.Rho(pm, tm)
	densg := o.Gas.Rho(pm, tm)
	bg := o.Gas.Bg(pm, tm)
	mug := o.Gas.Visc(pm, tm)
	densw := o.Wtr.Rho()
	muw := o.Wtr.Visc(tm)

	// liquid mixture
	densl := (o.Wor*densw + bo*denso) / (o.Wor + bo)
	wf := o.Wor * densw / (o.Wor*densw + bo*denso)
	mul := wf*muw + (1.0-wf)*muo
	sigma := wf*sigWat + (1.0-wf)*sigOil

	// superficial velocities
	area := math.Pi * dft * dft / 4.0
	ql := (o.Wor + bo) * rate * 5.615
	qg := bg * (gor - rs) * rate
	qt := qg + ql
	fg := qg / qt
	fl := 1.0 - fg
	usg := qg / (area * 86400.0)
	usl := ql / (area * 86400.0)
	um := usg + usl

	// Duns-Ros bubble/slug boundary
	lb := 1.071 - 0.2218*um*um/dft
	if lb < 0.13 {
		lb = 0.13
	}

	var dpdz float64
	if fg < lb {

		// bubble flow: constant slip velocity
		us := 0.8
		yl := 1.0 - 0.5*(1.0+um/us-math.Sqrt(math.Pow(1.0+um/us, 2.0)-4.0*usg/us))
		yl = math.Min(math.Max(yl, fl), 1.0)
		mdotl := area * usl * densl * 86400.0
		nre := 0.022 * mdotl / (dft * mul)
		ff := frictionFactor(o.Eps, nre)
		densavg := (1.0-yl)*densg + yl*densl
		dpdz = (1.0 / 144.0) * (math.Sin(ang)*densavg + ff*mdotl*mdotl/(7.413e10*math.Pow(dft, 5.0)*densl*yl*yl))

	} else {

		// Hagedorn-Brown dimensionless groups
		nvl := 1.938 * usl * math.Pow(densl/sigma, 0.25)
		nvg := 1.938 * usg * math.Pow(densl/sigma, 0.25)
		nd := 120.872 * dft * math.Pow(densl/sigma, 0.5)
		nl := 0.15726 * mul * math.Pow(1.0/(densl*math.Pow(sigma, 3.0)), 0.25)
		cnl := 7.9595*math.Pow(nl, 6.0) - 13.144*math.Pow(nl, 5.0) + 8.3825*math.Pow(nl, 4.0) -
			2.4629*math.Pow(nl, 3.0) + 0.2213*nl*nl + 0.0473*nl + 0.0018
		group1 := nvl * math.Pow(pm, 0.1) * cnl / (math.Pow(nvg, 0.575) * math.Pow(14.7, 0.1) * nd)
		ylpsy := -3.44985871528755e15*math.Pow(group1, 6.0) + 56858620047687.2*math.Pow(group1, 5.0) -
			368100995579.95*math.Pow(group1, 4.0) + 1189881753.18*math.Pow(group1, 3.0) -
			2037716.09*group1*group1 + 1868.71*group1 + 0.1
		group2 := nvg * math.Pow(nl, 0.38) / math.Pow(nd, 2.14)
		psy := 116159.0*math.Pow(group2, 4.0) - 22251.0*math.Pow(group2, 3.0) +
			1232.1*group2*group2 - 4.8183*group2 + 0.9116
		if psy < 1.0 {
			psy = 1.0
		}
		yl := ylpsy * psy
		yl = math.Min(math.Max(yl, fl), 1.0)
		densavg := (1.0-yl)*densg + yl*densl
		mdot := area * (usl*densl + usg*densg) * 86400.0
		nre := 0.022 * mdot / (dft * math.Pow(mul, yl) * math.Pow(mug, 1.0-yl))
		ff := frictionFactor(o.Eps, nre)
		dpdz = (1.0 / 144.0) * (math.Sin(ang)*densavg + ff*mdot*mdot/(7.413e10*math.Pow(dft, 5.0)*densavg))
	}
	return dpdz * o.Dz
}

// frictionFactor evaluates the Jain explicit friction factor, falling back
// to 0.02 when the logarithm argument leaves its domain
func frictionFactor(eps, nre float64) float64 {
	arg := eps/3.7065 - (5.0452/nre)*math.Log10(math.Pow(eps, 1.1098)/2.8257+math.Pow(7.149/nre, 0.8981))
	ff := math.Pow(1.0/(-4.0*math.Log10(arg)), 2.0)
	if math.IsNaN(ff) || math.IsInf(ff, 0) {
		return 0.02
	}
	return ff
}
