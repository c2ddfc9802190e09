// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvt implements fluid property (PVT) correlations for oil, gas and water
package pvt

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Pcrit defines pseudo-critical property correlations for natural gas
type Pcrit interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Crit(sg float64) (Tc, Pc float64)
}

// NewPcrit allocates a pseudo-critical correlation
func NewPcrit(name string) (model Pcrit, err error) {
	allocator, ok := pcritAllocators[name]
	if !ok {
		return nil, chk.Err("pseudo-critical correlation %q is not available in 'pvt' database", name)
	}
	return allocator(), nil
}

// pcritAllocators holds all available correlations
var pcritAllocators = map[string]func() Pcrit{}

// LinFit implements the linear fit of the Standing pseudo-critical chart
//
//	Tc = 168.5185 + 314.8148 sg   [°R]
//	Pc = 700.4762 -  47.6190 sg   [psia]
type LinFit struct{}

// Sutton implements Sutton's quadratic pseudo-critical correlation
//
//	Tc = 169.2 + 349.5 sg - 74.0 sg²   [°R]
//	Pc = 756.8 - 131.0 sg -  3.6 sg²   [psia]
type Sutton struct{}

// add correlations to factory
func init() {
	pcritAllocators["linfit"] = func() Pcrit { return new(LinFit) }
	pcritAllocators["sutton"] = func() Pcrit { return new(Sutton) }
}

// Init initialises correlation
func (o *LinFit) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("linfit: correlation has no parameters")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinFit) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// Crit returns pseudo-critical temperature [°R] and pressure [psia]
func (o LinFit) Crit(sg float64) (Tc, Pc float64) {
	Tc = sg*314.8148 + 168.5185
	Pc = sg*(-47.619) + 700.4762
	return
}

// Init initialises correlation
func (o *Sutton) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("sutton: correlation has no parameters")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Sutton) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// Crit returns pseudo-critical temperature [°R] and pressure [psia]
func (o Sutton) Crit(sg float64) (Tc, Pc float64) {
	Tc = 169.2 + 349.5*sg - 74.0*sg*sg
	Pc = 756.8 - 131.0*sg - 3.6*sg*sg
	return
}
