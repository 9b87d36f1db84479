// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// EnergySeries computes an exchange between kinetic (K) and potential (P) energy
//
//   K(t) = 1 + ½ sin(t)    P(t) = 1 - ½ sin(t)    K + P = 2
//
//  returns the columns of energy.asc: t, K, P, K+P
func EnergySeries(n int, dt float64) (t, K, P, E []float64) {
	t = make([]float64, n)
	K = make([]float64, n)
	P = make([]float64, n)
	E = make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = float64(i) * dt
		K[i] = 1.0 + 0.5*math.Sin(t[i])
		P[i] = 1.0 - 0.5*math.Sin(t[i])
		E[i] = K[i] + P[i]
	}
	return
}

// Ecomp computes energy components of a decaying flow with a growing magnetic field
//
//   Eu(t) = exp(-t/τ)              kinetic
//   Ep(t) = ½ exp(-t/τ)            potential
//   Eb(t) = Bsat・(1 - exp(-t/τ))   magnetic
//   E     = Eu + Ep + Eb
//
//  returns the columns of ecomp.asc: t, Eu, Ep, Eb, E
func Ecomp(n int, dt, τ, Bsat float64) (t, ekin, epot, emag, etot []float64) {
	t = make([]float64, n)
	ekin = make([]float64, n)
	epot = make([]float64, n)
	emag = make([]float64, n)
	etot = make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = float64(i) * dt
		d := math.Exp(-t[i] / τ)
		ekin[i] = d
		epot[i] = 0.5 * d
		emag[i] = Bsat * (1.0 - d)
		etot[i] = ekin[i] + epot[i] + emag[i]
	}
	return
}

// Profile computes a latitudinal profile on a ∈ [-π/2, π/2]
//
//   v(a) = Amp・cos(a)・sin(mode・a)
//
//  returns the columns of d{mode}.asc and u{mode}.asc: v, a
func Profile(n, mode int, amp float64) (v, a []float64) {
	a = utl.LinSpace(-math.Pi/2.0, math.Pi/2.0, n)
	v = make([]float64, n)
	for i, y := range a {
		v[i] = amp * math.Cos(y) * math.Sin(float64(mode)*y)
	}
	return
}
