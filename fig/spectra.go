// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fig implements hydra's plotting tools
package fig

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/daviddritschel/hydra/dat"
	"github.com/daviddritschel/hydra/inp"
	"github.com/daviddritschel/hydra/out"
	"gonum.org/v1/plot"
)

// number of fields in spectra files: k, and three spectra
const nSpectraFields = 4

// curve styles of the four compared simulations: SW, SW-bal, GN, GN-bal
var (
	compareDashes = [][]float64{out.Solid, out.Dashed, out.Solid, out.Dashed}
	compareGreys  = []float64{0.4, 0.4, 0.0, 0.0}
)

// Spectra plots log10 spectra of h, ζ, δ and γ of several simulations at the same time
//  Output: path of the figure
func Spectra(in *inp.Spectra) (fn string, err error) {

	// panels
	fig := out.NewFigure(in.Width, in.Height, in.Tex)
	sub := in.Option.Sub()
	for i, key := range []string{"h", "zeta", "delta", "gamma"} {
		fig.Splot(key, "")
		yrange := 9.0
		if i == 0 {
			yrange = 12.0
		}
		var xlbl string
		if i >= 2 {
			xlbl = out.GetLabel("logk", in.Tex)
		}
		fig.SplotConfig(xlbl, out.GetLabel("S:"+withSub(key, sub), in.Tex), []float64{0, 2.25}, []float64{in.Ymax[i] - yrange, in.Ymax[i]})
	}
	fig.Splots[0].Legend = "lower left"

	// curves
	for m, dir := range in.Dirs {
		path := filepath.Join(in.Dirin, dir)
		alt, err := dat.ReadSeriesFile(filepath.Join(path, in.Altdatafile), nSpectraFields)
		if err != nil {
			return "", err
		}
		spc, err := dat.ReadSeriesFile(filepath.Join(path, in.Datafile), nSpectraFields)
		if err != nil {
			return "", err
		}
		if alt.Count != spc.Count {
			return "", chk.Err("%s: number of wavenumbers in %s (%d) and %s (%d) differ", dir, in.Altdatafile, alt.Count, in.Datafile, spc.Count)
		}
		ic, err := spc.FrameIndex(in.T)
		if err != nil {
			return "", chk.Err("%s: %v", filepath.Join(path, in.Datafile), err)
		}
		if ic >= alt.Nframes() {
			return "", chk.Err("%s: frame index out of range: frame %d but there are %d frames", filepath.Join(path, in.Altdatafile), ic, alt.Nframes())
		}
		if in.Verbose {
			io.Pf("%-8s frame %4d  t = %g\n", in.Labels[m], ic, spc.Times[ic])
		}
		sty := out.Style{C: out.Grey(compareGreys[m%4]), Lw: 3, Ls: compareDashes[m%4]}
		k := spc.Spectrum(ic, 0)
		fig.Select(0)
		sty.L = in.Labels[m]
		fig.Plot(k, alt.Spectrum(ic, 1), sty)
		sty.L = ""
		for j := 1; j < nSpectraFields; j++ {
			fig.Select(j)
			fig.Plot(k, spc.Spectrum(ic, j), sty)
		}
	}

	// GN cut-off and resolution
	for k := range fig.Splots {
		fig.Select(k)
		fig.Vline(in.Xgn, out.Style{Lw: 1, Ls: out.Dashed})
	}
	fig.Select(0)
	fig.Text(0.08, 0.35, io.Sf("n = %d", in.Ng), out.Style{Fsz: 16})

	// save
	fn, err = fig.Draw(in.Dirout, in.Outfile, 2, 2)
	if err != nil {
		return
	}
	viewMessage(in.Verbose, fn)
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// withSub appends the subscript of balanced or imbalanced fields to a label key
func withSub(key, sub string) string {
	if sub == "" {
		return key
	}
	return key + "_" + sub
}

func viewMessage(verbose bool, fn string) {
	if verbose {
		io.Pfgreen("\n To view the image, type\n\n gv %s\n\n", fn)
	}
}

// hideLabels returns a copy of ticks without labels
func hideLabels(ticks []plot.Tick) []plot.Tick {
	res := make([]plot.Tick, len(ticks))
	for i, t := range ticks {
		res[i] = plot.Tick{Value: t.Value}
	}
	return res
}
