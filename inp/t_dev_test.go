// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_dev01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dev01. deviation survey")

	dev, err := ReadDev("data", "dev-a1.dev")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("keys = %v\n", dev.Keys)
	chk.Int(tst, "nrows", dev.Nrows, 9)
	chk.Strings(tst, "keys", dev.Keys, []string{"md", "tvd", "inc", "station"})

	md, err := dev.Col("md")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "md", 1e-17, md, []float64{0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000})

	tvd, err := dev.Col("tvd")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "tvd[8]", 1e-17, tvd[8], 7718.7)

	// the station column carries text, so it is not numeric
	_, err = dev.Col("station")
	if err == nil {
		tst.Errorf("error expected for text column\n")
		return
	}
	io.Pf("ok: %v\n", err)
	chk.Int(tst, "len(station)", len(dev.Str["station"]), 9)
	if dev.Str["station"][0] != "KB" {
		tst.Errorf("station[0] should be KB\n")
	}
}

func Test_dev02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dev02. bad files")

	_, err := ReadDev("data", "missing.dev")
	if err == nil {
		tst.Errorf("error expected for missing file\n")
		return
	}
	io.Pf("ok: %v\n", err)
}
