// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fig

import (
	"path/filepath"

	"github.com/daviddritschel/hydra/dat"
	"github.com/daviddritschel/hydra/inp"
	"github.com/daviddritschel/hydra/out"
)

// Energy plots kinetic, potential and total energy versus time
//  Output: path of the figure
func Energy(in *inp.Energy) (fn string, err error) {

	// data: t, K, P, K+P
	cols, err := dat.ReadColumnsFile(filepath.Join(in.Dirin, in.File), 4)
	if err != nil {
		return
	}
	t := cols[0]

	// figure
	fig := out.NewFigure(in.Width, in.Height, in.Tex)
	fig.Splot("energy", "")
	fig.SplotConfig(out.GetLabel("t", in.Tex), out.GetLabel("energy", in.Tex), nil, nil)
	fig.Csplot.Legend = "best"
	for i, sty := range []out.Style{
		{C: out.Blue, Lw: 2, L: out.GetLabel("K", in.Tex)},
		{C: out.Red, Lw: 2, L: out.GetLabel("P", in.Tex)},
		{C: out.Black, Lw: 2, L: out.GetLabel("K+P", in.Tex)},
	} {
		err = fig.Plot(t, cols[i+1], sty)
		if err != nil {
			return
		}
	}

	// save
	fn, err = fig.Draw(in.Dirout, in.Outfile, 1, 1)
	if err != nil {
		return
	}
	viewMessage(in.Verbose, fn)
	return
}
