// Copyright 2025 The Utpgetools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements readers for well input files: deviation surveys
// and JSON well definitions
package inp

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Dev holds a deviation survey read from a tab-separated file. Columns
// whose values all parse as numbers land in Num; the rest stay in Str.
type Dev struct {
	Keys  []string             // column names, file order
	Num   map[string][]float64 // numeric columns
	Str   map[string][]string  // non-numeric columns
	Nrows int
}

// ReadDev reads a tab-separated deviation survey with a header row
func ReadDev(dir, fn string) (o *Dev, err error) {

	b, err := os.ReadFile(io.Sf("%s/%s", dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read deviation file: %v", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	var rows [][]string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if len(rows) < 2 {
		return nil, chk.Err("deviation file %q needs a header row and at least one data row", fn)
	}

	o = new(Dev)
	for _, key := range rows[0] {
		o.Keys = append(o.Keys, strings.TrimSpace(key))
	}
	ncol := len(o.Keys)
	o.Nrows = len(rows) - 1
	o.Num = make(map[string][]float64)
	o.Str = make(map[string][]string)

	cols := make([][]string, ncol)
	for _, row := range rows[1:] {
		if len(row) != ncol {
			return nil, chk.Err("deviation file %q: row has %d fields but header has %d", fn, len(row), ncol)
		}
		for j, v := range row {
			cols[j] = append(cols[j], strings.TrimSpace(v))
		}
	}

	for j, key := range o.Keys {
		vals := make([]float64, o.Nrows)
		numeric := true
		for i, s := range cols[j] {
			v, e := strconv.ParseFloat(s, 64)
			if e != nil {
				numeric = false
				break
			}
			vals[i] = v
		}
		if numeric {
			o.Num[key] = vals
		} else {
			o.Str[key] = cols[j]
		}
	}
	return
}

// Col returns one numeric column
func (o *Dev) Col(key string) ([]float64, error) {
	vals, ok := o.Num[key]
	if !ok {
		return nil, chk.Err("deviation survey has no numeric column %q", key)
	}
	return vals, nil
}
