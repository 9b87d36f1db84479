// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical spectra, fields and time series with known values
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/daviddritschel/hydra/dat"
)

// PowerSpectrum computes a peaked power spectrum
//
//            A・(k/K0)
//   S(k) = ──────────────────
//           1 + (k/K0)^(1-Slope)
//
//  which grows like k for k ≪ K0 and decays like k^Slope for k ≫ K0
type PowerSpectrum struct {
	A     float64 // amplitude
	Slope float64 // inertial-range slope; e.g. -3
	K0    float64 // peak wavenumber
}

// Init sets default values
func (o *PowerSpectrum) Init() {
	o.A = 1.0
	o.Slope = -3.0
	o.K0 = 4.0
}

// Calc computes S(k)
func (o PowerSpectrum) Calc(k float64) float64 {
	r := k / o.K0
	return o.A * r / (1.0 + math.Pow(r, 1.0-o.Slope))
}

// Log10 computes log10 S(k)
func (o PowerSpectrum) Log10(k float64) float64 {
	return math.Log10(o.Calc(k))
}

// SpectraSeries builds a frame series in the layout of hydra's spectra files
//  field 0 holds log10 k for k = 1…count; field j ≥ 1 holds log10 S_j(k) of specs[j-1]
//  amplitudes decay in time as 1/(1+t); i.e. log10 S_j(k,t) = log10 S_j(k) - log10(1+t)
func SpectraSeries(count, nframes int, dt float64, specs ...PowerSpectrum) (o *dat.FrameSeries) {
	if count < 1 || nframes < 0 {
		chk.Panic("count=%d and nframes=%d are invalid", count, nframes)
	}
	nfields := 1 + len(specs)
	o = &dat.FrameSeries{
		Count:   count,
		Nfields: nfields,
		Times:   make([]float64, nframes),
		Data:    make([]float64, 0, nframes*count*nfields),
	}
	for i := 0; i < nframes; i++ {
		t := float64(i) * dt
		o.Times[i] = t
		shift := math.Log10(1.0 + t)
		for n := 1; n <= count; n++ {
			k := float64(n)
			o.Data = append(o.Data, math.Log10(k))
			for _, s := range specs {
				o.Data = append(o.Data, s.Log10(k)-shift)
			}
		}
	}
	return
}
