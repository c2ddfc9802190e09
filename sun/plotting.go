// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sun

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotYear plots the daylight duration over a year for several latitudes
func PlotYear(lats []float64, dirout, fnkey string) (err error) {
	colors := []string{"b", "g", "r", "m", "c"}
	for i, lat := range lats {
		days, hours, e := YearTable(lat)
		if e != nil {
			return e
		}
		plt.Plot(days, hours, &plt.A{C: colors[i%len(colors)], Ls: "-", L: io.Sf("lat = %.1f°", lat)})
	}
	plt.Gll("day of year", "daylight [h]", nil)
	plt.Save(dirout, fnkey)
	return
}
