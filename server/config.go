// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config holds the websocket server settings
type Config struct {
	Addr     string // listen address
	WellDir  string // directory with well definition files
	WellFile string // well definition served by default
	Npts     int    // points per computed curve
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() Config {
	return Config{
		Addr:     ":8086",
		WellDir:  "data",
		WellFile: "well-a1.json",
		Npts:     25,
	}
}

// LoadConfig reads settings from an ini file. Missing keys fall back to
// the defaults; a missing file yields the defaults with a warning.
func LoadConfig(fn string) Config {
	def := DefaultConfig()
	file, err := ini.Load(fn)
	if err != nil {
		log.Warnf("cannot read config file %q, using defaults: %v", fn, err)
		return def
	}
	return Config{
		Addr:     file.Section("server").Key("Addr").MustString(def.Addr),
		WellDir:  file.Section("server").Key("WellDir").MustString(def.WellDir),
		WellFile: file.Section("server").Key("WellFile").MustString(def.WellFile),
		Npts:     file.Section("server").Key("Npts").MustInt(def.Npts),
	}
}
