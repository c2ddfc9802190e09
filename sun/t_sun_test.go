// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sun

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func Test_sun01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sun01. mid latitudes")

	// Houston, summer solstice
	chk.Float64(tst, "decl(172)", 1e-12, Declination(172), 23.449782846813658)
	sr, ss, hrs := Times(29.7604, 172)
	io.Pforan("sunrise=%v sunset=%v hours=%v\n", sr, ss, hrs)
	chk.Float64(tst, "hours ", 1e-12, hrs, 13.914754743643035)
	chk.Float64(tst, "sunrise", 1e-12, sr, 5.042622628178482)
	chk.Float64(tst, "sunset ", 1e-12, ss, 18.95737737182152)

	// winter
	sr, ss, hrs = Times(29.7604, 355)
	chk.Float64(tst, "hours ", 1e-12, hrs, 10.085245256356966)
	chk.Float64(tst, "sunrise", 1e-12, sr, 6.957377371821517)
	chk.Float64(tst, "sunset ", 1e-12, ss, 17.042622628178485)

	// Anchorage
	sr, ss, hrs = Times(61.2181, 172)
	chk.Float64(tst, "hours ", 1e-12, hrs, 18.95329265523566)
	chk.Float64(tst, "sunrise", 1e-12, sr, 2.5233536723821697)
	chk.Float64(tst, "sunset ", 1e-12, ss, 21.47664632761783)

	// equator near the equinox
	chk.Float64(tst, "decl(80)", 1e-12, Declination(80), -0.4036532018543165)
	sr, ss, hrs = Times(0, 80)
	chk.Float64(tst, "hours ", 1e-12, hrs, 12)
	chk.Float64(tst, "sunrise", 1e-12, sr, 6)
	chk.Float64(tst, "sunset ", 1e-12, ss, 18)
}

func Test_sun02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sun02. polar day and night")

	sr, ss, hrs := Times(71, 172)
	chk.Float64(tst, "polar day hours  ", 1e-15, hrs, 24)
	chk.Float64(tst, "polar day sunrise", 1e-15, sr, 0)
	chk.Float64(tst, "polar day sunset ", 1e-15, ss, 24)

	sr, ss, hrs = Times(71, 355)
	chk.Float64(tst, "polar night hours  ", 1e-15, hrs, 0)
	chk.Float64(tst, "polar night sunrise", 1e-15, sr, 12)
	chk.Float64(tst, "polar night sunset ", 1e-15, ss, 12)
}

func Test_sun03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sun03. year table")

	days, hours, err := YearTable(29.7604)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "len(days) ", len(days), 365)
	chk.Int(tst, "len(hours)", len(hours), 365)
	chk.Float64(tst, "hours[171]", 1e-12, hours[171], 13.914754743643035)

	_, _, err = YearTable(120)
	if err == nil {
		tst.Errorf("error expected for latitude beyond the pole\n")
		return
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotYear([]float64{0, 29.7604, 61.2181, 71}, "/tmp/utpge", "sun03")
	}
}
