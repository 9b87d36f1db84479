// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/daviddritschel/hydra/dat"
	"github.com/daviddritschel/hydra/inp"
	"github.com/daviddritschel/hydra/out"
)

// Profiles plots the δ (black) and u (blue) profiles of each vertical mode versus latitude
//  Output: path of the figure
func Profiles(in *inp.Profiles) (fn string, err error) {
	fig := out.NewFigure(in.Width, in.Height, in.Tex)
	for m := 1; m <= in.Nmodes; m++ {
		fig.Splot(io.Sf("mode%d", m), "")
		fig.SplotConfig(out.GetLabel(io.Sf("vec%d", m), in.Tex), out.GetLabel("a", in.Tex), nil, []float64{-math.Pi / 2.0, math.Pi / 2.0})
		dfn, ufn := in.Files(m)
		for _, c := range []struct {
			fn  string
			sty out.Style
		}{
			{dfn, out.Style{C: out.Black, Lw: 3}},
			{ufn, out.Style{C: out.Blue, Lw: 3}},
		} {
			var cols [][]float64
			cols, err = dat.ReadColumnsFile(filepath.Join(in.Dirin, c.fn), 2)
			if err != nil {
				return
			}
			err = fig.Plot(cols[0], cols[1], c.sty)
			if err != nil {
				return
			}
		}
	}
	fn, err = fig.Draw(in.Dirout, in.Outfile, 1, in.Nmodes)
	if err != nil {
		return
	}
	viewMessage(in.Verbose, fn)
	return
}
