// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_plunger01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plunger01. cycle and rate")

	plg := new(Plunger)
	plg.Silent = !chk.Verbose
	err := plg.Init(plg.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	res := plg.Run()
	io.Pforan("cycle time = %v min\n", res.TCycle)
	io.Pforan("rate       = %v BLPD\n", res.Rate)

	chk.Float64(tst, "trise ", 1e-12, res.TRise, 10.666666666666666)
	chk.Float64(tst, "tfall ", 1e-12, res.TFall, 32.0)
	chk.Float64(tst, "tcycle", 1e-12, res.TCycle, 72.66666666666666)
	chk.Float64(tst, "cycles", 1e-12, res.CyclesPerDay, 19.816513761467892)
	chk.Float64(tst, "tubcap", 1e-15, res.TubCap, 0.032498472458601324)
	chk.Float64(tst, "slug  ", 1e-12, res.SlugStb, 1.7363386887943717)
	chk.Float64(tst, "vcycle", 1e-12, res.CycleVol, 1.041803213276623)
	chk.Float64(tst, "rate  ", 1e-10, res.Rate, 20.64490771263767)
	chk.Float64(tst, "rateo ", 1e-10, res.RateOil, 10.322453856318836)
	chk.Float64(tst, "gaml  ", 1e-12, res.GamL, 0.9375364431486881)
	chk.Float64(tst, "ws    ", 1e-9, res.Ws, 569.7582794378062)
	chk.Float64(tst, "pg    ", 1e-9, res.Pg, 285.82869554367136)
}

func Test_plunger02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plunger02. validation")

	plg := new(Plunger)
	prms := plg.GetPrms(true)
	prms.Find("tubid").V = 0
	err := plg.Init(prms)
	if err == nil {
		tst.Errorf("error expected for zero tubing diameter\n")
	}
}
