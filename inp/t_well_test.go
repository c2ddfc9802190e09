// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_well01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("well01. read well definition")

	wd, err := ReadWell("data", "well-a1.json")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("well = %v\n", wd.Name)
	if wd.Name != "A-1" {
		tst.Errorf("wrong well name: %q\n", wd.Name)
		return
	}
	chk.Float64(tst, "d    ", 1e-17, wd.D, 2.441)
	chk.Float64(tst, "depth", 1e-17, wd.Depth, 8000)
	chk.Float64(tst, "glr  ", 1e-17, wd.Fluid.Glr, 400)
	chk.Float64(tst, "wor  ", 1e-17, wd.Fluid.Wor, 1)

	oil, gas, wtr, err := wd.Fluids()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "oil gor", 1e-17, oil.Gor, 800)
	chk.Float64(tst, "gas sg ", 1e-17, gas.Sg, 0.65)
	chk.Float64(tst, "wtr sg ", 1e-17, wtr.Sg, 1.05)
}

func Test_well02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("well02. traverse from well file")

	wd, err := ReadWell("data", "well-a1.json")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	trv, err := wd.Traverse()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	bhp, err := trv.Bhp(400)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("bhp = %v\n", bhp)
	chk.Float64(tst, "bhp", 1e-9, bhp, 1754.1181499844574)
}

func Test_well03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("well03. inflow from well file")

	wd, err := ReadWell("data", "well-a1.json")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	ipr, err := wd.IPR()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	q, err := ipr.Flowrate(0, 2300)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "q(ptest)", 1e-12, q, 300)

	_, err = ReadWell("data", "missing.json")
	if err == nil {
		tst.Errorf("error expected for missing file\n")
	}
}
