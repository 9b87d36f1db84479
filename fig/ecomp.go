// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/daviddritschel/hydra/dat"
	"github.com/daviddritschel/hydra/inp"
	"github.com/daviddritschel/hydra/out"
	"gonum.org/v1/gonum/floats"
)

// ecompDashes holds the dash pattern of each compared directory
var ecompDashes = [][]float64{out.Solid, out.Dashed, out.DashDotted}

// EcompBounds holds the extremes of energy components over all simulations
type EcompBounds struct {
	Emin, Emax   float64 // total energy
	Ebmin, Ebmax float64 // magnetic energy; Ebmin stays 0
	Ekmin, Ekmax float64 // kinetic energy
	Tmax         float64 // largest final (scaled) time
}

// NewEcompBounds returns bounds ready to be updated by Update
func NewEcompBounds() *EcompBounds {
	return &EcompBounds{Emin: 1e20, Ekmin: 1e20}
}

// Update includes one simulation; t must be sorted
func (o *EcompBounds) Update(t, ekin, emag, etot []float64) {
	o.Emin = math.Min(o.Emin, floats.Min(etot))
	o.Emax = math.Max(o.Emax, floats.Max(etot))
	o.Ebmax = math.Max(o.Ebmax, floats.Max(emag))
	o.Ekmin = math.Min(o.Ekmin, floats.Min(ekin))
	o.Ekmax = math.Max(o.Ekmax, floats.Max(ekin))
	o.Tmax = math.Max(o.Tmax, t[len(t)-1])
}

// Ecomp plots total, magnetic and kinetic energy versus scaled time for several simulations
//  Output: path of the figure
func Ecomp(in *inp.Ecomp) (fn string, err error) {

	// panels
	fig := out.NewFigure(in.Width, in.Height, in.Tex)
	keys := []string{"E", "Eb", "Eu"}
	for _, key := range keys {
		fig.Splot(key, "")
	}
	fig.Splots[1].Legend = "best"

	// curves: t, Eu, Ep, Eb, E
	bounds := NewEcompBounds()
	for m, dir := range in.Dirs {
		var cols [][]float64
		cols, err = dat.ReadColumnsFile(filepath.Join(in.Dirin, dir, in.File), 5)
		if err != nil {
			return
		}
		t, ekin, emag, etot := cols[0], cols[1], cols[3], cols[4]
		floats.Scale(in.Rossby[m], t)
		bounds.Update(t, ekin, emag, etot)
		sty := out.Style{C: out.Black, Lw: 2, Ls: ecompDashes[m%len(ecompDashes)]}
		fig.Select(0)
		fig.Plot(t, etot, sty)
		fig.Select(1)
		sty.L = in.Labels[m]
		fig.Plot(t, emag, sty)
		sty.L = ""
		fig.Select(2)
		fig.Plot(t, ekin, sty)
	}

	// ranges
	if !(bounds.Tmax > 0) {
		return "", chk.Err("energy components files have no data after t = 0")
	}
	xrange := []float64{0, bounds.Tmax}
	emin, emax := out.Pad(bounds.Emin, bounds.Emax, in.Sfac)
	ekmin, ekmax := out.Pad(bounds.Ekmin, bounds.Ekmax, in.Sfac)
	ebmax := bounds.Ebmax + in.Sfac*(bounds.Ebmax-bounds.Ebmin)
	yranges := [][]float64{{emin, emax}, {bounds.Ebmin, ebmax}, {ekmin, ekmax}}
	for i, key := range keys {
		fig.Select(i)
		fig.SplotConfig(out.GetLabel("epst", in.Tex), out.GetLabel(key, in.Tex), xrange, yranges[i])
	}

	// save
	fn, err = fig.Draw(in.Dirout, in.Outfile, 1, 3)
	if err != nil {
		return
	}
	viewMessage(in.Verbose, fn)
	return
}
