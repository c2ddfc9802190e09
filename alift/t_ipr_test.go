// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alift

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func Test_ipr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipr01. composite Vogel above bubble point")

	ipr := &IPR{
		Pres:  []float64{3000},
		Pb:    1800,
		Qtest: []float64{100},
		Ptest: []float64{2000},
	}
	err := ipr.Init()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ipr.Report()

	chk.Float64(tst, "J   ", 1e-12, ipr.Jidx(0), 0.1)
	chk.Float64(tst, "qb  ", 1e-10, ipr.Qb(0), 120)
	chk.Float64(tst, "qmax", 1e-10, ipr.Qmax(0), 202.70270270270268)

	pwfs := []float64{0, 500, 1000, 1800, 2000, 2500, 3000}
	q, err := ipr.Curve(0, pwfs)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("q = %v\n", q)
	chk.Array(tst, "q", 1e-9, q, []float64{
		202.70270270270268, 191.4414414414414, 171.17117117117115,
		120, 100, 50, 0,
	})

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotIPR(ipr, 101, "/tmp/utpge", "ipr01")
	}
}

func Test_ipr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipr02. two-phase reservoir below bubble point")

	ipr := &IPR{
		Pres:  []float64{1500},
		Pb:    1800,
		Qtest: []float64{100},
		Ptest: []float64{1000},
	}
	err := ipr.Init()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	chk.Float64(tst, "qmax", 1e-10, ipr.Qmax(0), 195.6521739130435)

	q750, err := ipr.Flowrate(0, 750)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	q1200, err := ipr.Flowrate(0, 1200)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "q(750) ", 1e-10, q750, 136.95652173913044)
	chk.Float64(tst, "q(1200)", 1e-10, q1200, 64.17391304347824)
}

func Test_ipr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ipr03. validation")

	ipr := &IPR{
		Pres:  []float64{3000, 2800},
		Pb:    1800,
		Qtest: []float64{100},
		Ptest: []float64{2000},
	}
	err := ipr.Init()
	if err == nil {
		tst.Errorf("error expected for test count mismatch\n")
		return
	}
	io.Pf("ok: %v\n", err)

	ipr = &IPR{Pres: []float64{3000}, Pb: 1800, Qtest: []float64{100}, Ptest: []float64{2000}}
	err = ipr.Init()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	_, err = ipr.Flowrate(0, 3500)
	if err == nil {
		tst.Errorf("error expected for pwf above reservoir pressure\n")
	}
}
