// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"bufio"
	"bytes"
	goio "io"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadColumnsFile reads a whitespace-separated numeric table from file
func ReadColumnsFile(fn string, ncols int) (cols [][]float64, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open table file:\n%v", err)
	}
	defer f.Close()
	cols, err = ReadColumns(f, ncols)
	if err != nil {
		return nil, chk.Err("%s: %v", fn, err)
	}
	return
}

// ReadColumns reads a whitespace-separated numeric table and returns its columns
//  ncols -- expected number of columns; use 0 to take the width of the first row
//  Blank lines and lines starting with '#' are skipped.
func ReadColumns(r goio.Reader, ncols int) (cols [][]float64, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		strs := strings.Fields(text)
		if cols == nil {
			if ncols <= 0 {
				ncols = len(strs)
			}
			cols = make([][]float64, ncols)
		}
		if len(strs) != ncols {
			return nil, chk.Err("line %d: incorrect number of values. %d != %d", lineno, len(strs), ncols)
		}
		for j, s := range strs {
			v, e := strconv.ParseFloat(fortranExp(s), 64)
			if e != nil {
				return nil, chk.Err("line %d: cannot parse value %q", lineno, s)
			}
			cols[j] = append(cols[j], v)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, chk.Err("cannot scan table:\n%v", err)
	}
	if cols == nil {
		return nil, chk.Err("table has no data rows")
	}
	return
}

// WriteColumns writes columns of equal length as a whitespace-separated table
func WriteColumns(w goio.Writer, cols ...[]float64) (err error) {
	if len(cols) == 0 {
		return
	}
	n := len(cols[0])
	for j, c := range cols {
		if len(c) != n {
			return chk.Err("column %d has %d rows but column 0 has %d", j, len(c), n)
		}
	}
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		for _, c := range cols {
			io.Ff(&buf, "%23.15e", c[i])
		}
		io.Ff(&buf, "\n")
	}
	_, err = w.Write(buf.Bytes())
	return
}
