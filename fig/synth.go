// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	"bytes"
	"encoding/binary"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/daviddritschel/hydra/ana"
	"github.com/daviddritschel/hydra/dat"
	"github.com/daviddritschel/hydra/inp"
)

// number of vertical modes written by Synth
const synthModes = 3

// Synth writes a synthetic results tree under in.Dirout that every tool can read
//  Files are written with gosl/io, which panics if a file cannot be created
func Synth(in *inp.Synth) (err error) {
	w := synthWriter{root: in.Dirout, verbose: in.Verbose}
	times := make([]float64, in.Nframes)
	for i := range times {
		times[i] = float64(i) * in.Dt
	}

	// simulations compared by spectra and fields
	for m, dir := range inp.CompareDirs(in.Ng) {
		err = synthSpectra(&w, in, m, dir)
		if err != nil {
			return
		}
		err = synthFields(&w, in, m, dir, times)
		if err != nil {
			return
		}
		t, _, _, E := ana.EnergySeries(in.Nframes, in.Dt)
		err = w.columns(filepath.Join(dir, "ene.asc"), t, E)
		if err != nil {
			return
		}
	}

	// energy evolution
	t, K, P, E := ana.EnergySeries(in.Npts, 0.1)
	err = w.columns("evolution/energy.asc", t, K, P, E)
	if err != nil {
		return
	}

	// energy components
	var eco inp.Ecomp
	err = inp.Read("", &eco)
	if err != nil {
		return
	}
	for m, dir := range eco.Dirs {
		t, ekin, epot, emag, etot := ana.Ecomp(in.Npts, 0.5, 5.0*float64(m+1), 0.1*float64(m+1))
		err = w.columns(filepath.Join(dir, eco.File), t, ekin, epot, emag, etot)
		if err != nil {
			return
		}
	}

	// vertical-mode profiles
	var pro inp.Profiles
	for m := 1; m <= synthModes; m++ {
		dfn, ufn := pro.Files(m)
		v, a := ana.Profile(in.Npts, m, 0.1)
		err = w.columns(dfn, v, a)
		if err != nil {
			return
		}
		v, a = ana.Profile(in.Npts, m, 0.05)
		err = w.columns(ufn, v, a)
		if err != nil {
			return
		}
	}
	return
}

// synthSpectra writes {,b,i}spectra.asc and alt-{,b,i}spectra.asc of simulation m
func synthSpectra(w *synthWriter, in *inp.Synth, m int, dir string) (err error) {
	amp := 1.0 + 0.1*float64(m)
	for _, opt := range []inp.Option{inp.Full, inp.Balanced, inp.Imbalanced} {
		a := amp
		switch opt {
		case inp.Balanced:
			a *= 0.9
		case inp.Imbalanced:
			a *= 1e-4
		}
		h := ana.PowerSpectrum{A: 1e-3 * a, Slope: -3, K0: 4}
		ζ := ana.PowerSpectrum{A: a, Slope: -3, K0: 8}
		δ := ana.PowerSpectrum{A: 1e-3 * a, Slope: -2, K0: 8}
		γ := ana.PowerSpectrum{A: 10 * a, Slope: -1, K0: 16}
		p := opt.Prefix()
		var buf bytes.Buffer
		err = dat.WriteSeries(&buf, ana.SpectraSeries(in.Kmax, in.Nframes, in.Dt, ζ, δ, γ))
		if err != nil {
			return
		}
		w.write(filepath.Join(dir, p+"spectra.asc"), &buf)
		buf.Reset()
		err = dat.WriteSeries(&buf, ana.SpectraSeries(in.Kmax, in.Nframes, in.Dt, h, ζ, δ))
		if err != nil {
			return
		}
		w.write(filepath.Join(dir, "alt-"+p+"spectra.asc"), &buf)
	}
	return
}

// synthFields writes the full and balanced r4 files of all fields of simulation m
func synthFields(w *synthWriter, in *inp.Synth, m int, dir string, times []float64) (err error) {
	for f, acro := range inp.FieldAcronyms {
		full := ana.VortexField{Amp: 1.0 + 0.5*float64(f), Kx: 1 + f%3, Ky: 1, Phase: 0.3 * float64(m), Omega: 0.1}
		bal := full
		bal.Amp *= 0.8
		bal.Phase += 0.2
		for _, c := range []struct {
			fn  string
			fld ana.VortexField
		}{
			{acro + ".r4", full},
			{"b" + acro + ".r4", bal},
		} {
			frames := make([][]float32, len(times))
			for i, t := range times {
				frames[i] = c.fld.Raw(in.Ng, t)
			}
			var buf bytes.Buffer
			err = dat.WriteR4(&buf, binary.LittleEndian, times, frames...)
			if err != nil {
				return
			}
			w.write(filepath.Join(dir, c.fn), &buf)
		}
	}
	return
}

// synthWriter writes files relative to a root directory
type synthWriter struct {
	root    string
	verbose bool
}

func (o *synthWriter) write(fn string, buf *bytes.Buffer) {
	path := filepath.Join(o.root, fn)
	if o.verbose {
		io.WriteFileVD(filepath.Dir(path), filepath.Base(path), buf)
		return
	}
	io.WriteFileD(filepath.Dir(path), filepath.Base(path), buf)
}

func (o *synthWriter) columns(fn string, cols ...[]float64) (err error) {
	var buf bytes.Buffer
	err = dat.WriteColumns(&buf, cols...)
	if err != nil {
		return
	}
	o.write(fn, &buf)
	return
}
