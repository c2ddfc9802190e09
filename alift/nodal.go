// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"github.com/cpmech/gosl/chk"

	"github.com/bRunquist/utpgetools-package/flow"
)

// OperatingPoint finds the natural flow point of reservoir pressure i as
// the intersection of the inflow curve with the outflow traverse. The
// given flowing pressures are scanned in order; the crossing is located
// by linear interpolation between the bracketing samples.
func OperatingPoint(ipr *IPR, i int, trv *flow.Traverse, pwfs []float64) (qop, pop float64, err error) {

	if len(pwfs) < 2 {
		err = chk.Err("nodal: at least two flowing pressures are required")
		return
	}

	fprev := 0.0
	qprev := 0.0
	for k, pwf := range pwfs {
		var q, bhp float64
		q, err = ipr.Flowrate(i, pwf)
		if err != nil {
			return
		}
		if q <= 0 {
			// shut-in end of the inflow curve
			continue
		}
		bhp, err = trv.Bhp(q)
		if err != nil {
			return
		}
		f := bhp - pwf
		if k > 0 && qprev > 0 && f*fprev <= 0 {
			// crossing between previous and current sample
			w := fprev / (fprev - f)
			pop = pwfs[k-1] + w*(pwf-pwfs[k-1])
			qop = qprev + w*(q-qprev)
			return
		}
		fprev = f
		qprev = q
	}
	err = chk.Err("nodal: inflow and outflow curves do not intersect over the scanned pressures")
	return
}
