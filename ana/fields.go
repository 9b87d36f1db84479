// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// VortexField computes a travelling plane wave on the doubly periodic domain [-π,π)²
//
//   f(x,y,t) = Amp・cos(Kx・x + Ky・y + Phase - Omega・t)
//
type VortexField struct {
	Amp   float64 // amplitude
	Kx    int     // wavenumber along x
	Ky    int     // wavenumber along y
	Phase float64 // phase shift
	Omega float64 // frequency
}

// Calc computes f(x,y,t)
func (o VortexField) Calc(x, y, t float64) float64 {
	return o.Amp * math.Cos(float64(o.Kx)*x+float64(o.Ky)*y+o.Phase-o.Omega*t)
}

// Coord returns the i-th grid coordinate of an ng-point periodic grid on [-π,π)
func Coord(i, ng int) float64 {
	return -math.Pi + 2.0*math.Pi*float64(i)/float64(ng)
}

// Raw returns the ng×ng grid values of one r4 record at time t, in file order
//  x varies slowest: raw[j*ng+i] = f(x_j, y_i)
func (o VortexField) Raw(ng int, t float64) (raw []float32) {
	raw = make([]float32, ng*ng)
	for j := 0; j < ng; j++ {
		x := Coord(j, ng)
		for i := 0; i < ng; i++ {
			raw[j*ng+i] = float32(o.Calc(x, Coord(i, ng), t))
		}
	}
	return
}

// Matrix returns the periodic (ng+1)×(ng+1) matrix Z(i,j) = f(x_j, y_i)
func (o VortexField) Matrix(ng int, t float64) (Z *mat.Dense) {
	Z = mat.NewDense(ng+1, ng+1, nil)
	for i := 0; i <= ng; i++ {
		for j := 0; j <= ng; j++ {
			Z.Set(i, j, o.Calc(Coord(j, ng), Coord(i, ng), t))
		}
	}
	return
}
