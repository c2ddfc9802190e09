// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomech

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func Test_fault01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fault01. dip toward Shmin strike")

	flt := new(FaultStress)
	err := flt.Init(flt.GetPrms(true))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	res, err := flt.Analyze()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		flt.Report(res)
	}

	chk.Int(tst, "picked", res.Picked, 2)
	chk.Float64(tst, "sn   ", 1e-10, res.Sn, 4750.0)
	chk.Float64(tst, "tau  ", 1e-10, res.Tau, 433.0127018922193)
	chk.Float64(tst, "ratio", 1e-12, res.Ratio, 0.09116056881941459)
	if res.Slips {
		tst.Errorf("fault must be stable at mu=0.6\n")
		return
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotMohr(flt, res, 64, "/tmp/utpge", "fault01")
	}
}

func Test_fault02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fault02. vertical fault")

	flt := new(FaultStress)
	prms := flt.GetPrms(true)
	prms.Find("strike").V = 30
	prms.Find("dip").V = 90
	err := flt.Init(prms)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	res, err := flt.Analyze()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("sn=%v tau=%v\n", res.Sn, res.Tau)

	chk.Int(tst, "picked", res.Picked, 1)
	chk.Float64(tst, "sn   ", 1e-10, res.Sn, 2500.0)
	chk.Float64(tst, "tau  ", 1e-10, res.Tau, 866.0254037844387)
	chk.Float64(tst, "ratio", 1e-12, res.Ratio, 0.34641016151377546)
}

func Test_fault03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fault03. dip along SHmax strike")

	flt := new(FaultStress)
	prms := flt.GetPrms(true)
	prms.Find("strike").V = 90
	prms.Find("dip").V = 45
	err := flt.Init(prms)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	res, err := flt.Analyze()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Int(tst, "picked", res.Picked, 3)
	chk.Float64(tst, "sn   ", 1e-10, res.Sn, 3500.0)
	chk.Float64(tst, "tau  ", 1e-10, res.Tau, 1500.0)
	chk.Float64(tst, "ratio", 1e-12, res.Ratio, 0.42857142857142855)
}

func Test_fault04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fault04. validation")

	// oblique dip direction
	flt := new(FaultStress)
	prms := flt.GetPrms(true)
	prms.Find("strike").V = 45
	err := flt.Init(prms)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	_, err = flt.Analyze()
	if err == nil {
		tst.Errorf("error expected for oblique dip direction\n")
		return
	}
	io.Pf("ok: %v\n", err)

	// missing stress field orientation
	flt = new(FaultStress)
	err = flt.Init(dbf.Params{
		&dbf.P{N: "sv", V: 9000},
		&dbf.P{N: "shmax", V: 8000},
		&dbf.P{N: "shmin", V: 6000},
		&dbf.P{N: "pp", V: 4000},
		&dbf.P{N: "strike", V: 0},
		&dbf.P{N: "dip", V: 60},
	})
	if err == nil {
		tst.Errorf("error expected for missing principal strike\n")
	}
}
