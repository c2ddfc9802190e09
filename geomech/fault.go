// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geomech implements geomechanical stability calculations
package geomech

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// colinearity tolerance between dip direction and principal strikes [deg]
const strikeTol = 1.0

// FaultStress evaluates the stability of a fault plane in an Andersonian
// stress field. Effective principal stresses build three Mohr circles;
// the fault maps onto the circle whose plane contains the fault normal,
// selected by comparing the dip direction with the horizontal principal
// stress strikes. Stresses are psi, angles degrees.
type FaultStress struct {

	// stress state
	Sv    float64 // vertical total stress
	SHmax float64 // maximum horizontal total stress
	Shmin float64 // minimum horizontal total stress
	Pp    float64 // pore pressure

	// fault geometry
	Strike float64 // fault strike (right-hand rule)
	Dip    float64 // fault dip

	// orientation of the stress field; one of the two strikes is enough
	SHmaxStrike float64
	ShminStrike float64

	// slip criterion
	Mu float64 // friction coefficient; default 0.6

	// flags for which strike was given
	hasSHdir, hasShdir bool
}

// Circle is one Mohr circle in effective stress space
type Circle struct {
	C float64 // centre [psi]
	R float64 // radius [psi]
}

// FaultResult holds the Mohr construction and the fault point
type FaultResult struct {
	Circles [3]Circle // SHmax-Shmin, Sv-SHmax, Sv-Shmin
	Picked  int       // index (1..3) of the circle holding the fault
	Sn      float64   // effective normal stress on the fault [psi]
	Tau     float64   // shear stress on the fault [psi]
	Ratio   float64   // tau/sn
	Slips   bool      // ratio reaches the friction line
}

// Init initialises this structure
func (o *FaultStress) Init(prms dbf.Params) (err error) {
	o.Mu = 0.6
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "sv":
			o.Sv = p.V
		case "shmax":
			o.SHmax = p.V
		case "shmin":
			o.Shmin = p.V
		case "pp":
			o.Pp = p.V
		case "strike":
			o.Strike = p.V
		case "dip":
			o.Dip = p.V
		case "mu":
			o.Mu = p.V
		case "shmaxdir":
			o.SHmaxStrike = p.V
			o.hasSHdir = true
		case "shmindir":
			o.ShminStrike = p.V
			o.hasShdir = true
		default:
			return chk.Err("fault: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.SHmax < o.Shmin {
		return chk.Err("fault: shmax=%g must not be below shmin=%g", o.SHmax, o.Shmin)
	}
	if o.Dip < 0 || o.Dip > 90 {
		return chk.Err("fault: dip=%g must be within [0, 90]", o.Dip)
	}
	if !o.hasSHdir && !o.hasShdir {
		return chk.Err("fault: either shmaxdir or shmindir must be given")
	}
	if o.hasSHdir && !o.hasShdir {
		o.ShminStrike = norm360(o.SHmaxStrike + 90.0)
	}
	if o.hasShdir && !o.hasSHdir {
		o.SHmaxStrike = norm360(o.ShminStrike - 90.0)
	}
	o.Strike = norm360(o.Strike)
	o.SHmaxStrike = norm360(o.SHmaxStrike)
	o.ShminStrike = norm360(o.ShminStrike)
	return
}

// GetPrms gets (an example) of parameters
func (o FaultStress) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "sv", V: 9000},
		&dbf.P{N: "shmax", V: 8000},
		&dbf.P{N: "shmin", V: 6000},
		&dbf.P{N: "pp", V: 4000},
		&dbf.P{N: "strike", V: 0},
		&dbf.P{N: "dip", V: 60},
		&dbf.P{N: "mu", V: 0.6},
		&dbf.P{N: "shmaxdir", V: 90},
	}
}

// Analyze computes the Mohr construction and the slip verdict
func (o *FaultStress) Analyze() (res *FaultResult, err error) {

	sigv := o.Sv - o.Pp
	sigH := o.SHmax - o.Pp
	sigh := o.Shmin - o.Pp

	res = new(FaultResult)
	res.Circles[0] = Circle{C: (sigH + sigh) / 2.0, R: (sigH - sigh) / 2.0}
	res.Circles[1] = Circle{C: (sigv + sigH) / 2.0, R: math.Abs(sigv-sigH) / 2.0}
	res.Circles[2] = Circle{C: (sigv + sigh) / 2.0, R: (sigv - sigh) / 2.0}

	dipdir := norm360(o.Strike + 90.0)
	d1 := colinearDist(dipdir - o.SHmaxStrike)
	d2 := colinearDist(dipdir - o.ShminStrike)

	var c Circle
	var ang float64
	if o.Dip == 90 {
		// vertical fault: the plane holds both horizontal stresses and
		// the doubled strike offset walks the SHmax-Shmin circle
		dA := angleDist(o.Strike - o.SHmaxStrike)
		dB := angleDist(o.Strike - o.ShminStrike)
		c = res.Circles[0]
		res.Picked = 1
		ang = math.Min(dA, dB) * 2.0 * math.Pi / 180.0
	} else {
		if d1 > strikeTol && d2 > strikeTol {
			return nil, chk.Err("fault: dip direction %g° is not aligned with either principal strike (%g°, %g°)", dipdir, o.SHmaxStrike, o.ShminStrike)
		}
		if d2 < d1 {
			// dipping toward Shmin: the plane holds Sv and Shmin
			c = res.Circles[2]
			res.Picked = 3
			ang = o.Dip * 2.0 * math.Pi / 180.0
		} else {
			c = res.Circles[1]
			res.Picked = 2
			ang = (90.0 - o.Dip) * 2.0 * math.Pi / 180.0
		}
	}

	res.Sn = c.C + c.R*math.Cos(ang)
	res.Tau = c.R * math.Sin(ang)
	res.Ratio = res.Tau / res.Sn
	res.Slips = res.Ratio >= o.Mu
	return
}

// Report prints the fault point with the cyan/red convention
func (o *FaultStress) Report(res *FaultResult) {
	io.Pforan("\nfault stability\n")
	io.Pfcyan("%-24s", "effective normal stress")
	io.Pf(" = ")
	io.PfRed("%.1f", res.Sn)
	io.Pf(" psi\n")
	io.Pfcyan("%-24s", "shear stress")
	io.Pf(" = ")
	io.PfRed("%.1f", res.Tau)
	io.Pf(" psi\n")
	io.Pfcyan("%-24s", "tau/sn")
	io.Pf(" = ")
	io.PfRed("%.3f", res.Ratio)
	io.Pf("\n")
	if res.Slips {
		io.PfRed("fault is critically stressed (mu = %.2f)\n", o.Mu)
	} else {
		io.Pfgreen("fault is stable (mu = %.2f)\n", o.Mu)
	}
}

// norm360 normalizes an angle to [0, 360)
func norm360(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0 {
		a += 360.0
	}
	return a
}

// angleDist returns the separation of an angle difference, in [0, 180]
func angleDist(d float64) float64 {
	d = math.Abs(d)
	return math.Min(d, 360.0-d)
}

// colinearDist returns the distance to colinearity, in [0, 90]; opposite
// directions count as aligned
func colinearDist(d float64) float64 {
	a := angleDist(d)
	return math.Min(a, 180.0-a)
}
