// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ShrinkFactor is applied to both ends of a range before choosing the contour interval
const ShrinkFactor = 0.9999999

// ContourInterval selects a "nice" contour spacing for the range [fmin, fmax]
//  The shrunk range r = 0.9999999・(fmax - fmin) is normalised to rmult ∈ [10, 100) by
//  powers of ten (rmult = r・10^mpow) and the interval is chosen from kmult = int(rmult/10):
//
//     kmult < 1  →  ci = 1・scale
//     kmult < 2  →  ci = 2・scale
//     kmult < 4  →  ci = 4・scale
//     kmult < 8  →  ci = 10・scale
//     otherwise  →  ci = 20・scale        where scale = 10^(-mpow)
//
//  Output:
//   ci    -- contour interval
//   scale -- power-of-ten scale factor 10^(-mpow)
func ContourInterval(fmin, fmax float64) (ci, scale float64, err error) {
	fmax *= ShrinkFactor
	fmin *= ShrinkFactor
	rmult := fmax - fmin
	if math.IsNaN(rmult) || math.IsInf(rmult, 0) || rmult <= 0 {
		return 0, 0, chk.Err("cannot select contour interval: range [%g, %g] must be finite with fmax > fmin", fmin, fmax)
	}
	mpow := 0
	for rmult < 10.0 {
		mpow++
		rmult *= 10.0
	}
	for rmult >= 100.0 {
		mpow--
		rmult /= 10.0
	}
	scale = math.Pow(10.0, float64(-mpow))
	kmult := int(rmult / 10.0)
	switch {
	case kmult < 1:
		ci = scale
	case kmult < 2:
		ci = 2.0 * scale
	case kmult < 4:
		ci = 4.0 * scale
	case kmult < 8:
		ci = 10.0 * scale
	default:
		ci = 20.0 * scale
	}
	return
}

// ContourLevels returns the multiples of the contour interval inside [zmin, zmax]
//  levels = dz・j for j = -int(-zmin/dz) … int(zmax/dz)
func ContourLevels(zmin, zmax float64) (levels []float64, err error) {
	dz, _, err := ContourInterval(zmin, zmax)
	if err != nil {
		return
	}
	jmin := -int(-zmin / dz)
	jmax := int(zmax / dz)
	levels = utl.LinSpace(dz*float64(jmin), dz*float64(jmax), jmax-jmin+1)
	return
}
