// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package alift implements artificial lift design calculations: IPR,
// echometer BHP estimation, gas lift valve spacing, plunger lift and
// progressive cavity pump (PCP) sizing
package alift

import (
	"github.com/cpmech/gosl/io"
)

// printQty prints one named quantity with the cyan-name / red-value
// convention used by all design reports
func printQty(name, unit string, format string, val float64) {
	io.Pfcyan("%-28s", name)
	io.Pf(" = ")
	io.PfRed(format, val)
	if unit != "" {
		io.Pf(" %s", unit)
	}
	io.Pf("\n")
}

// printSection prints a report section banner
func printSection(title string) {
	io.Pforan("\n%s\n", title)
}
