// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	goio "io"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/daviddritschel/hydra/ana"
	"github.com/daviddritschel/hydra/inp"
)

// readInput writes text to a temporary JSON file and reads it into in
func readInput(tst *testing.T, in inp.Input, text string) {
	fn := filepath.Join(tst.TempDir(), "input.json")
	err := os.WriteFile(fn, []byte(text), 0644)
	if err != nil {
		tst.Fatalf("cannot write input file:\n%v", err)
	}
	err = inp.Read(fn, in)
	if err != nil {
		tst.Fatalf("cannot read input file:\n%v", err)
	}
}

// synthTree writes a synthetic results tree with ng = 32 and returns its root
func synthTree(tst *testing.T) string {
	root := filepath.Join(tst.TempDir(), "synth")
	var in inp.Synth
	readInput(tst, &in, io.Sf(`{"dirout": %q, "verbose": false, "ng": 32, "kmax": 20, "npts": 41}`, root))
	err := Synth(&in)
	if err != nil {
		tst.Fatalf("cannot write synthetic tree:\n%v", err)
	}
	return root
}

func checkFile(tst *testing.T, fn, correct string) {
	chk.String(tst, fn, correct)
	if _, err := os.Stat(fn); err != nil {
		tst.Errorf("file %q was not written:\n%v", fn, err)
	}
}

func Test_fig01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fig01. synthetic tree and spectra")

	root := synthTree(tst)
	for _, fn := range []string{
		"sw/ng32/spectra.asc",
		"sw/bal_ng32/alt-bspectra.asc",
		"gn/ng32/ispectra.asc",
		"gn/bal_ng32/bgt.r4",
		"sw/ng32/ene.asc",
		"evolution/energy.asc",
		"ng256kd4eps0.100gamma2.0bzrat0.0/evolution/ecomp.asc",
		"d3.asc",
		"u1.asc",
	} {
		if _, err := os.Stat(filepath.Join(root, fn)); err != nil {
			tst.Errorf("synthetic file is missing:\n%v", err)
			return
		}
	}

	dirout := tst.TempDir()
	for _, c := range []struct {
		option  int
		outfile string
	}{
		{1, "spectra_n32_t25.eps"},
		{2, "spectra_bal_n32_t25.eps"},
		{3, "spectra_imb_n32_t25.eps"},
	} {
		var in inp.Spectra
		readInput(tst, &in, io.Sf(`{"option": %d, "ng": 32, "dirin": %q, "dirout": %q, "verbose": false}`, c.option, root, dirout))
		fn, err := Spectra(&in)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		checkFile(tst, fn, filepath.Join(dirout, c.outfile))
	}

	// time beyond the last frame
	var in inp.Spectra
	readInput(tst, &in, io.Sf(`{"t": 100, "ng": 32, "dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	_, err := Spectra(&in)
	if err == nil {
		tst.Errorf("time beyond the last frame should fail")
		return
	}
	io.Pforan("%v\n", err)

	// missing directory
	in = inp.Spectra{}
	readInput(tst, &in, io.Sf(`{"ng": 64, "dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	_, err = Spectra(&in)
	if err == nil {
		tst.Errorf("missing directory should fail")
	}
}

func Test_fig02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fig02. fields")

	root := synthTree(tst)
	dirout := tst.TempDir()

	var in inp.Fields
	readInput(tst, &in, io.Sf(`{"ng": 32, "fields": ["zz", "gt"], "dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	fns, err := Fields(&in)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "number of figures", len(fns), 2)
	checkFile(tst, fns[0], filepath.Join(dirout, "zeta_n32_t25.eps"))
	checkFile(tst, fns[1], filepath.Join(dirout, "gamma-tilde_n32_t25.eps"))

	in = inp.Fields{}
	readInput(tst, &in, io.Sf(`{"option": 3, "ng": 32, "fields": ["hh"], "contours": true, "limits": {"hh": [[-1, 1]]}, "dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	fns, err = Fields(&in)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	checkFile(tst, fns[0], filepath.Join(dirout, "h_imb_n32_t25.eps"))

	// imbalanced = full - balanced; zz of the first simulation at t = 25
	in.Fields = []string{"zz"}
	Z, err := LoadFields(&in, "zz", 10)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	full := ana.VortexField{Amp: 1.5, Kx: 2, Ky: 1, Omega: 0.1}
	bal := ana.VortexField{Amp: 1.2, Kx: 2, Ky: 1, Phase: 0.2, Omega: 0.1}
	x, y := ana.Coord(2, 32), ana.Coord(1, 32)
	chk.Float64(tst, "Z(1,2)", 1e-6, Z[0].At(1, 2), full.Calc(x, y, 25)-bal.Calc(x, y, 25))
	chk.Float64(tst, "Z(32,2)", 1e-15, Z[0].At(32, 2), Z[0].At(0, 2))

	// time beyond the last frame
	in = inp.Fields{}
	readInput(tst, &in, io.Sf(`{"t": 100, "ng": 32, "fields": ["dd"], "dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	_, err = Fields(&in)
	if err == nil {
		tst.Errorf("time beyond the last frame should fail")
		return
	}
	io.Pforan("%v\n", err)
}

func Test_fig03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fig03. field limits")

	zmin := []float64{-1, -2, -3, -0.5}
	zmax := []float64{1.5, 1, 2, 4}
	lo, hi := FieldLimits(inp.Full, zmin, zmax)
	chk.Array(tst, "lo", 1e-15, lo, []float64{-2, -2, -4, -4})
	chk.Array(tst, "hi", 1e-15, hi, []float64{2, 2, 4, 4})

	lo, hi = FieldLimits(inp.Imbalanced, zmin, zmax)
	chk.Array(tst, "lo", 1e-15, lo, []float64{-1.5, -2, -3, -4})
	chk.Array(tst, "hi", 1e-15, hi, []float64{1.5, 2, 3, 4})
}

func Test_fig04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fig04. energy, energy components and profiles")

	root := synthTree(tst)
	dirout := tst.TempDir()

	var ene inp.Energy
	readInput(tst, &ene, io.Sf(`{"dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	fn, err := Energy(&ene)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	checkFile(tst, fn, filepath.Join(dirout, "energy.png"))

	var eco inp.Ecomp
	readInput(tst, &eco, io.Sf(`{"dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	fn, err = Ecomp(&eco)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	checkFile(tst, fn, filepath.Join(dirout, "ecomp.eps"))

	var pro inp.Profiles
	readInput(tst, &pro, io.Sf(`{"dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	fn, err = Profiles(&pro)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	checkFile(tst, fn, filepath.Join(dirout, "evec.eps"))

	// more modes than files
	pro = inp.Profiles{}
	readInput(tst, &pro, io.Sf(`{"nmodes": 4, "dirin": %q, "dirout": %q, "verbose": false}`, root, dirout))
	_, err = Profiles(&pro)
	if err == nil {
		tst.Errorf("missing profile files should fail")
	}
}

func Test_fig05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fig05. energy components bounds")

	b := NewEcompBounds()
	b.Update([]float64{0, 1, 2}, []float64{3, 2, 1}, []float64{0, 0.5, 0.75}, []float64{5, 4.5, 4})
	b.Update([]float64{0, 1.5}, []float64{2.5, 0.5}, []float64{0, 1}, []float64{6, 3})
	chk.Array(tst, "E", 1e-15, []float64{b.Emin, b.Emax}, []float64{3, 6})
	chk.Array(tst, "Eb", 1e-15, []float64{b.Ebmin, b.Ebmax}, []float64{0, 1})
	chk.Array(tst, "Eu", 1e-15, []float64{b.Ekmin, b.Ekmax}, []float64{0.5, 3})
	chk.Float64(tst, "tmax", 1e-15, b.Tmax, 2)
}

func Test_fig06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fig06. quiet synthetic tree")

	r, w, err := os.Pipe()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	stdout := os.Stdout
	os.Stdout = w
	root := filepath.Join(tst.TempDir(), "synth")
	var in inp.Synth
	readInput(tst, &in, io.Sf(`{"dirout": %q, "verbose": false, "ng": 8, "kmax": 4, "nframes": 3, "npts": 5}`, root))
	err = Synth(&in)
	os.Stdout = stdout
	w.Close()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	b, err := goio.ReadAll(r)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, string(b), "")
}
