// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/daviddritschel/hydra/fig"
	"github.com/daviddritschel/hydra/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	tool := io.ArgToString(0, "")
	fnamepath := io.ArgToString(1, "")
	if tool == "" {
		io.Pf("Usage: hydra <tool> [input.json]\n")
		io.Pf("  tools: spectra, fields, energy, ecomp, vec, synth\n")
		return
	}

	// run tool
	switch tool {
	case "spectra":
		var in inp.Spectra
		start(fnamepath, &in)
		_, err := fig.Spectra(&in)
		check(tool, err)
	case "fields":
		var in inp.Fields
		start(fnamepath, &in)
		_, err := fig.Fields(&in)
		check(tool, err)
	case "energy":
		var in inp.Energy
		start(fnamepath, &in)
		_, err := fig.Energy(&in)
		check(tool, err)
	case "ecomp":
		var in inp.Ecomp
		start(fnamepath, &in)
		_, err := fig.Ecomp(&in)
		check(tool, err)
	case "vec":
		var in inp.Profiles
		start(fnamepath, &in)
		_, err := fig.Profiles(&in)
		check(tool, err)
	case "synth":
		var in inp.Synth
		start(fnamepath, &in)
		check(tool, fig.Synth(&in))
	default:
		chk.Panic("tool %q is unknown; use spectra, fields, energy, ecomp, vec or synth", tool)
	}
}

// start reads the input file and prints the table of parameters
func start(fnamepath string, in inp.Input) {
	err := inp.Read(fnamepath, in)
	if err != nil {
		chk.Panic("%v", err)
	}
	if in.IsVerbose() {
		io.Pf("\n%v\n", in)
	}
}

func check(tool string, err error) {
	if err != nil {
		chk.Panic("%s failed:\n%v", tool, err)
	}
}
