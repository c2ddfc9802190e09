// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/bRunquist/utpgetools-package/pvt"
)

// testWell builds the fluid models and traverse used across the tests
func testWell(tst *testing.T) *Traverse {
	oil := new(pvt.Oil)
	err := oil.Init(dbf.Params{
		&dbf.P{N: "api", V: 35},
		&dbf.P{N: "gamgas", V: 0.65},
		&dbf.P{N: "tsep", V: 100},
		&dbf.P{N: "psep", V: 100},
		&dbf.P{N: "gor", V: 800}, // glr=400, wor=1
	})
	if err != nil {
		tst.Fatalf("cannot initialise oil model: %v", err)
	}
	gas := new(pvt.Gas)
	err = gas.Init(dbf.Params{&dbf.P{N: "gamgas", V: 0.65}})
	if err != nil {
		tst.Fatalf("cannot initialise gas model: %v", err)
	}
	wtr := new(pvt.Water)
	err = wtr.Init(dbf.Params{&dbf.P{N: "gamwat", V: 1.05}})
	if err != nil {
		tst.Fatalf("cannot initialise water model: %v", err)
	}
	trv := new(Traverse)
	err = trv.Init(trv.GetPrms(true), oil, gas, wtr)
	if err != nil {
		tst.Fatalf("cannot initialise traverse: %v", err)
	}
	return trv
}

func Test_traverse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("traverse01. pressure profile at 400 STB/d")

	trv := testWell(tst)
	Z, P, T, err := trv.Profile(400)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	io.Pforan("p = %v\n", P)
	io.Pforan("T = %v\n", T)

	chk.Float64(tst, "z[end]", 1e-12, Z[len(Z)-1], 8000)
	chk.Array(tst, "p", 1e-6, P, []float64{
		200.0, 253.1347844761379, 309.59095326210075, 369.3532992543304,
		432.9957516110632, 503.84352594546345, 582.1455407338145,
		668.0388718573253, 761.5452090360918, 862.5724871292056,
		970.9223434512846, 1086.3027773080335, 1208.3447906279139,
		1336.621409975644, 1470.6642044837324, 1609.9923515235635,
		1754.1181499844574,
	})
	chk.Array(tst, "T", 1e-12, T, []float64{
		100, 105, 110, 115, 120, 125, 130, 135, 140,
		145, 150, 155, 160, 165, 170, 175, 180,
	})

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotProfile(Z, P, "/tmp/utpge", "traverse01")
	}
}

func Test_traverse02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("traverse02. outflow curve")

	trv := testWell(tst)
	rates := []float64{100, 200, 400, 800, 1600}
	bhps, err := trv.Curve(rates)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	io.Pforan("bhps = %v\n", bhps)
	chk.Array(tst, "bhps", 1e-6, bhps, []float64{
		1739.9048807544107, 1646.6948633114946, 1754.1181499844574,
		2011.199599771002, 2589.4740006457105,
	})

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotCurve(rates, bhps, "/tmp/utpge", "traverse02")
	}
}

func Test_traverse03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("traverse03. invalid input")

	trv := testWell(tst)
	_, _, _, err := trv.Profile(0)
	if err == nil {
		tst.Errorf("error expected for zero rate\n")
		return
	}
	io.Pf("ok: %v\n", err)

	// inconsistent gor
	oil := trv.Oil
	gas, wtr := trv.Gas, trv.Wtr
	bad := new(Traverse)
	prms := bad.GetPrms(true)
	prms.Find("wor").V = 2 // gor would need to be 1200
	err = bad.Init(prms, oil, gas, wtr)
	if err == nil {
		tst.Errorf("error expected for inconsistent gor\n")
	}
}
