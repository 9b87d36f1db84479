// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/daviddritschel/hydra/dat"
	"github.com/daviddritschel/hydra/inp"
	"github.com/daviddritschel/hydra/out"
	"gonum.org/v1/gonum/mat"
)

// FieldTimeShift is added to t before dividing by dt when selecting field frames
const FieldTimeShift = 0.0001

// Fields plots snapshots of each field of four simulations at the same time
//  Output: paths of the figures; one per field
func Fields(in *inp.Fields) (fns []string, err error) {

	// frame from time step in energy file
	enefn := filepath.Join(in.Dirin, in.Dirs[0], in.EneFile)
	cols, err := dat.ReadColumnsFile(enefn, 2)
	if err != nil {
		return
	}
	if len(cols[0]) < 2 {
		return nil, chk.Err("%s: at least 2 rows are needed to compute dt", enefn)
	}
	dt := cols[0][1] - cols[0][0]
	if dt <= 0 {
		return nil, chk.Err("%s: time step must be positive. dt=%g is invalid", enefn, dt)
	}
	frame, err := dat.TimeToFrame(in.T, dt, FieldTimeShift/dt, math.MaxInt32)
	if err != nil {
		return
	}
	if in.Verbose {
		io.Pf("dt = %g  frame = %d\n", dt, frame)
	}

	// each field
	for _, acro := range in.Fields {
		if in.Verbose {
			io.Pfyel("\n =================================\n")
			io.Pfyel("  *** Processing data for %s\n", inp.FieldNames[acro])
			io.Pfyel(" =================================\n")
		}
		var fn string
		fn, err = plotField(in, acro, frame)
		if err != nil {
			return nil, chk.Err("field %q: %v", inp.FieldNames[acro], err)
		}
		fns = append(fns, fn)
	}
	return
}

// LoadFields loads the snapshots of field acronym acro of all directories
//  full: {acro}.r4; balanced: b{acro}.r4; imbalanced: full - balanced
func LoadFields(in *inp.Fields, acro string, frame int) (Z []*mat.Dense, err error) {
	Z = make([]*mat.Dense, len(in.Dirs))
	for i, dir := range in.Dirs {
		full := filepath.Join(in.Dirin, dir, acro+".r4")
		bal := filepath.Join(in.Dirin, dir, "b"+acro+".r4")
		switch in.Option {
		case inp.Full:
			Z[i], err = dat.LoadSnapshot(full, in.Ng, frame)
		case inp.Balanced:
			Z[i], err = dat.LoadSnapshot(bal, in.Ng, frame)
		default:
			Z[i], err = dat.LoadDifference(full, bal, in.Ng, frame)
		}
		if err != nil {
			return
		}
	}
	return
}

// FieldLimits returns the colour scale limits of each panel
//  options 1 and 2: SW and SW-bal share symmetric limits, as do GN and GN-bal
//  option 3: symmetric limits per panel
func FieldLimits(option inp.Option, zmin, zmax []float64) (lo, hi []float64) {
	n := len(zmin)
	lo, hi = make([]float64, n), make([]float64, n)
	if option == inp.Imbalanced {
		for i := 0; i < n; i++ {
			lo[i], hi[i] = out.SymLimits(zmin[i], zmax[i])
		}
		return
	}
	for i := 0; i < n; i += 2 {
		j := i + 1
		if j == n {
			j = i
		}
		lo[i], hi[i] = out.SymLimits(math.Min(zmin[i], zmin[j]), math.Max(zmax[i], zmax[j]))
		lo[j], hi[j] = lo[i], hi[i]
	}
	return
}

// plotField draws the four panels of one field
func plotField(in *inp.Fields, acro string, frame int) (fn string, err error) {

	// data
	Z, err := LoadFields(in, acro, frame)
	if err != nil {
		return
	}
	n := len(Z)
	zmin, zmax := make([]float64, n), make([]float64, n)
	for i, z := range Z {
		zmin[i], zmax[i] = mat.Min(z), mat.Max(z)
	}
	if in.Verbose {
		io.Pf("\n Minimum and maximum field values for each simulation:\n\n")
		io.Pf(" Simulation    Min field value      Max field value\n")
		io.Pf(" ----------    ---------------      ---------------\n")
		for i := range Z {
			io.Pf("   %-10s %14.10f       %14.10f\n", in.Labels[i], zmin[i], zmax[i])
		}
	}

	// limits
	lo, hi := FieldLimits(in.Option, zmin, zmax)
	for i := range Z {
		if a, b, ok := in.Limit(acro, i); ok {
			lo[i], hi[i] = a, b
		}
	}

	// figure
	fig := out.NewFigure(in.Width, in.Height, in.Tex)
	fig.Title = out.GetLabel(withSub(inp.FieldTitles[acro], in.Option.Sub()), in.Tex)
	for i := range Z {
		levels, e := out.ContourLevels(lo[i], hi[i])
		if e != nil {
			return "", chk.Err("%s: %v", in.Labels[i], e)
		}
		s := fig.Splot(in.Labels[i], in.Labels[i])
		s.Xticks, s.Yticks = out.PiTicks(in.Tex), out.PiTicks(in.Tex)
		if i < 2 {
			s.Xticks = hideLabels(s.Xticks)
		}
		if i%2 == 1 {
			s.Yticks = hideLabels(s.Yticks)
		}
		err = fig.Heat(Z[i], lo[i], hi[i], levels, in.Contours)
		if err != nil {
			return "", chk.Err("%s: %v", in.Labels[i], err)
		}
	}
	fn, err = fig.Draw(in.Dirout, in.Outfile(acro), 2, 2)
	if err != nil {
		return
	}
	viewMessage(in.Verbose, fn)
	return
}
