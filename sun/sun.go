// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sun implements analytic daylight calculations for field
// operations planning
package sun

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Declination computes the solar declination [deg] for day of year n
func Declination(n int) float64 {
	return 23.45 * math.Sin(math.Pi/180.0*360.0*float64(284+n)/365.0)
}

// Daylight computes the daylight duration [h] at latitude lat [deg] on
// day of year n. Polar day returns 24 and polar night 0.
func Daylight(lat float64, n int) float64 {
	_, _, hrs := Times(lat, n)
	return hrs
}

// Times computes sunrise and sunset in decimal solar hours around solar
// noon, and the daylight duration [h]
func Times(lat float64, n int) (sunrise, sunset, hours float64) {
	decl := Declination(n) * math.Pi / 180.0
	phi := lat * math.Pi / 180.0
	c := -math.Tan(phi) * math.Tan(decl)
	if c < -1 {
		return 0, 24, 24 // polar day
	}
	if c > 1 {
		return 12, 12, 0 // polar night
	}
	w := math.Acos(c)
	hours = 2.0 * w * 12.0 / math.Pi
	sunrise = math.Max(12.0-hours/2.0, 0)
	sunset = math.Min(12.0+hours/2.0, 24)
	return
}

// YearTable tabulates the daylight duration for every day of a 365-day
// year at latitude lat
func YearTable(lat float64) (days, hours []float64, err error) {
	if lat < -90 || lat > 90 {
		return nil, nil, chk.Err("sun: latitude %g must be within [-90, 90]", lat)
	}
	days = make([]float64, 365)
	hours = make([]float64, 365)
	for n := 1; n <= 365; n++ {
		days[n-1] = float64(n)
		hours[n-1] = Daylight(lat, n)
	}
	return
}
