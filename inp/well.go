// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/bRunquist/utpgetools-package/alift"
	"github.com/bRunquist/utpgetools-package/flow"
	"github.com/bRunquist/utpgetools-package/pvt"
)

// FluidData holds the produced fluid description of a well definition
type FluidData struct {
	API   float64 `json:"api"`    // oil gravity [°API]
	GasSg float64 `json:"gamgas"` // gas gravity (air = 1)
	WtrSg float64 `json:"gamwat"` // water gravity
	Glr   float64 `json:"glr"`    // gas-liquid ratio [scf/STB]
	Wor   float64 `json:"wor"`    // water-oil ratio
	SepT  float64 `json:"tsep"`   // separator temperature [°F]
	SepP  float64 `json:"psep"`   // separator pressure [psig]
}

// WellData holds one well definition read from a JSON file
type WellData struct {

	// identification
	Name string `json:"name"`

	// wellbore
	D     float64 `json:"d"`     // tubing inner diameter [in]
	Depth float64 `json:"depth"` // measured depth [ft]
	Dz    float64 `json:"dz"`    // traverse increment [ft]
	Ang   float64 `json:"ang"`   // inclination from horizontal [deg]
	Rough float64 `json:"rough"` // relative roughness

	// boundary conditions
	Pwh float64 `json:"pwh"` // wellhead pressure [psia]
	Twh float64 `json:"twh"` // wellhead temperature [°F]
	Tbh float64 `json:"tbh"` // bottomhole temperature [°F]

	// inflow
	Pres  float64 `json:"pres"`  // reservoir pressure [psia]
	Pb    float64 `json:"pb"`    // bubble point [psia]
	Qtest float64 `json:"qtest"` // well test rate [STB/d]
	Ptest float64 `json:"ptest"` // well test flowing pressure [psia]

	Fluid FluidData `json:"fluid"`
}

// ReadWell reads a well definition from a JSON file
func ReadWell(dir, fn string) (o *WellData, err error) {
	b, err := os.ReadFile(io.Sf("%s/%s", dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read well file: %v", err)
	}
	o = new(WellData)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal well file %q: %v", fn, err)
	}
	if o.Name == "" {
		return nil, chk.Err("well file %q misses the well name", fn)
	}
	if o.D <= 0 || o.Depth <= 0 || o.Dz <= 0 {
		return nil, chk.Err("well %q has invalid wellbore geometry. d=%g, depth=%g, dz=%g", o.Name, o.D, o.Depth, o.Dz)
	}
	return
}

// Fluids builds the PVT models of the well
func (o *WellData) Fluids() (oil *pvt.Oil, gas *pvt.Gas, wtr *pvt.Water, err error) {
	oil = new(pvt.Oil)
	err = oil.Init(dbf.Params{
		&dbf.P{N: "api", V: o.Fluid.API},
		&dbf.P{N: "gamgas", V: o.Fluid.GasSg},
		&dbf.P{N: "tsep", V: o.Fluid.SepT},
		&dbf.P{N: "psep", V: o.Fluid.SepP},
		&dbf.P{N: "gor", V: o.Fluid.Glr * (o.Fluid.Wor + 1.0)},
	})
	if err != nil {
		return
	}
	gas = new(pvt.Gas)
	err = gas.Init(dbf.Params{&dbf.P{N: "gamgas", V: o.Fluid.GasSg}})
	if err != nil {
		return
	}
	wtr = new(pvt.Water)
	err = wtr.Init(dbf.Params{&dbf.P{N: "gamwat", V: o.Fluid.WtrSg}})
	return
}

// Traverse builds the outflow traverse of the well
func (o *WellData) Traverse() (trv *flow.Traverse, err error) {
	oil, gas, wtr, err := o.Fluids()
	if err != nil {
		return
	}
	trv = new(flow.Traverse)
	err = trv.Init(dbf.Params{
		&dbf.P{N: "d", V: o.D},
		&dbf.P{N: "len", V: o.Depth},
		&dbf.P{N: "dz", V: o.Dz},
		&dbf.P{N: "ang", V: o.Ang},
		&dbf.P{N: "rough", V: o.Rough},
		&dbf.P{N: "glr", V: o.Fluid.Glr},
		&dbf.P{N: "wor", V: o.Fluid.Wor},
		&dbf.P{N: "pwh", V: o.Pwh},
		&dbf.P{N: "twh", V: o.Twh},
		&dbf.P{N: "tbh", V: o.Tbh},
	}, oil, gas, wtr)
	return
}

// IPR builds the inflow relationship of the well
func (o *WellData) IPR() (ipr *alift.IPR, err error) {
	ipr = &alift.IPR{
		Pres:  []float64{o.Pres},
		Pb:    o.Pb,
		Qtest: []float64{o.Qtest},
		Ptest: []float64{o.Ptest},
	}
	err = ipr.Init()
	return
}
