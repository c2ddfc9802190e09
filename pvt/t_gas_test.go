// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func Test_gas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas01. Brill-Beggs z. linear pseudo-criticals")

	gas := new(Gas)
	err := gas.Init(dbf.Params{&dbf.P{N: "gamgas", V: 0.65}})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	T, p := 180.0, 2000.0
	Tc, Pc := gas.Crit()
	Pr, Tr := gas.Reduced(p, T)
	io.Pforan("Tc, Pc = %v, %v\n", Tc, Pc)
	io.Pforan("Pr, Tr = %v, %v\n", Pr, Tr)
	io.Pforan("z      = %v\n", gas.Zfactor(p, T))

	chk.Float64(tst, "Tc  ", 1e-10, Tc, 373.14812)
	chk.Float64(tst, "Pc  ", 1e-10, Pc, 669.52385)
	chk.Float64(tst, "Tr  ", 1e-12, Tr, 1.7151366058068311)
	chk.Float64(tst, "Pr  ", 1e-12, Pr, 2.9871975434482283)
	chk.Float64(tst, "z   ", 1e-12, gas.Zfactor(p, T), 0.8649140084628785)
	chk.Float64(tst, "bg  ", 1e-12, gas.Bg(p, T), 0.007832661260639827)
	chk.Float64(tst, "mug ", 1e-12, gas.Visc(p, T), 0.016608987788523943)
	chk.Float64(tst, "rhog", 1e-10, gas.Rho(p, T), 6.340948286578001)

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotGas(gas, 100, 5000, T, 101, "/tmp/utpge", "gas01")
	}
}

func Test_gas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas02. richer gas")

	gas := new(Gas)
	err := gas.Init(dbf.Params{&dbf.P{N: "gamgas", V: 0.70}})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	T, p := 150.0, 3000.0
	chk.Float64(tst, "z   ", 1e-12, gas.Zfactor(p, T), 0.8098980389272675)
	chk.Float64(tst, "bg  ", 1e-12, gas.Bg(p, T), 0.004660423282000473)
	chk.Float64(tst, "mug ", 1e-12, gas.Visc(p, T), 0.021330154999563512)
	chk.Float64(tst, "rhog", 1e-10, gas.Rho(p, T), 11.476854518038726)
}

func Test_gas03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas03. Sutton pseudo-criticals")

	gas := new(Gas)
	err := gas.Init(dbf.Params{
		&dbf.P{N: "gamgas", V: 0.65},
		&dbf.P{N: "sutton", V: 1},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	Pr, Tr := gas.Reduced(3000, 180)
	io.Pforan("Pr, Tr = %v, %v\n", Pr, Tr)
	chk.Float64(tst, "Pr", 1e-12, Pr, 4.476749998880813)
	chk.Float64(tst, "Tr", 1e-12, Tr, 1.7528963873901016)

	_, err = NewPcrit("kay")
	if err == nil {
		tst.Errorf("error expected for unknown correlation\n")
	}
}

func Test_water01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("water01. density and viscosity")

	wtr := new(Water)
	err := wtr.Init(wtr.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Float64(tst, "rhow     ", 1e-12, wtr.Rho(), 65.52)
	chk.Float64(tst, "muw(150F)", 1e-12, wtr.Visc(150), 0.46322147107907424)
	chk.Float64(tst, "muw(180F)", 1e-12, wtr.Visc(180), 0.3616667757727232)
}
