// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements figures with subplots, heat maps and contour levels
package out

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Style Style     // style
}

// TextEntity stores a text placed in axes coordinates; (0,0) is the lower-left corner
type TextEntity struct {
	X, Y  float64 // position relative to the axes
	Txt   string  // text
	Style Style   // style
}

// HeatEntity stores a gridded field drawn as an image with a colour bar
type HeatEntity struct {
	Z        *mat.Dense // (n+1)×(n+1) periodic field; rows along y
	Zmin     float64    // lower end of the colour scale
	Zmax     float64    // upper end of the colour scale
	Ticks    []float64  // colour bar ticks
	Contours bool       // draw contour lines at Ticks
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string        // unique identifier
	Title  string        // title of subplot
	Xrange []float64     // x range
	Yrange []float64     // y range
	Xlbl   string        // x-axis label
	Ylbl   string        // y-axis label
	Xticks []plot.Tick   // fixed x ticks; nil means automatic
	Yticks []plot.Tick   // fixed y ticks; nil means automatic
	Legend string        // legend position: "", "lower left", "best"
	Data   []*PltEntity  // data and styles to be plotted
	Vlines []*PltEntity  // vertical lines spanning the y range; X holds one value
	Texts  []*TextEntity // texts
	Heat   *HeatEntity   // image with colour bar
}

// Figure holds subplots to be drawn into one file
type Figure struct {
	Title  string      // figure title (suptitle)
	Width  float64     // width [in]
	Height float64     // height [in]
	Tex    bool        // use LaTeX text handler
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
}

// NewFigure returns a new figure with size given in inches
func NewFigure(width, height float64, tex bool) *Figure {
	return &Figure{Width: width, Height: height, Tex: tex}
}

// Splot activates a new subplot window
func (o *Figure) Splot(id, splotTitle string) *SplotDat {
	s := &SplotDat{Id: id, Title: splotTitle}
	o.Splots = append(o.Splots, s)
	o.Csplot = s
	return s
}

// Select makes the k-th subplot current
func (o *Figure) Select(k int) *SplotDat {
	o.Csplot = o.Splots[k]
	return o.Csplot
}

// SplotConfig sets labels and ranges of the current subplot
//  xrange, yrange -- {min, max}; nil means automatic
func (o *Figure) SplotConfig(xlbl, ylbl string, xrange, yrange []float64) {
	s := o.current()
	s.Xlbl, s.Ylbl = xlbl, ylbl
	s.Xrange, s.Yrange = xrange, yrange
}

// Plot adds a curve to the current subplot
func (o *Figure) Plot(x, y []float64, sty Style) (err error) {
	if len(x) != len(y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	s := o.current()
	s.Data = append(s.Data, &PltEntity{X: x, Y: y, Style: sty})
	return
}

// Vline adds a vertical line at x spanning the y range of the current subplot
func (o *Figure) Vline(x float64, sty Style) {
	s := o.current()
	s.Vlines = append(s.Vlines, &PltEntity{X: []float64{x}, Style: sty})
}

// Text adds a text to the current subplot at axes coordinates (x, y) ∈ [0,1]²
func (o *Figure) Text(x, y float64, txt string, sty Style) {
	s := o.current()
	s.Texts = append(s.Texts, &TextEntity{X: x, Y: y, Txt: txt, Style: sty})
}

// Heat sets the image of the current subplot
//  Z     -- periodic field on [-π,π]²; see Grid
//  ticks -- colour bar ticks; e.g. from ContourLevels
func (o *Figure) Heat(Z *mat.Dense, zmin, zmax float64, ticks []float64, contours bool) (err error) {
	if !(zmax > zmin) {
		return chk.Err("colour scale range [%g, %g] is invalid", zmin, zmax)
	}
	s := o.current()
	s.Heat = &HeatEntity{Z: Z, Zmin: zmin, Zmax: zmax, Ticks: ticks, Contours: contours}
	return
}

// Draw saves figure
//  dirout -- directory to save figure; created if needed
//  fname  -- file name with extension; e.g. spectra.eps or energy.png
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
//  Output: path of the written file
func (o *Figure) Draw(dirout, fname string, nr, nc int) (fn string, err error) {

	// check
	nplots := len(o.Splots)
	if nplots == 0 {
		return "", chk.Err("figure has no subplots")
	}
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	if nr*nc < nplots {
		return "", chk.Err("grid %d×%d is too small for %d subplots", nr, nc, nplots)
	}
	ext := strings.TrimPrefix(strings.ToLower(io.FnExt(fname)), ".")

	// canvas
	w := vg.Length(o.Width) * vg.Inch
	h := vg.Length(o.Height) * vg.Inch
	cw, err := draw.NewFormattedCanvas(w, h, ext)
	if err != nil {
		return "", chk.Err("cannot create canvas for %q:\n%v", fname, err)
	}
	dc := draw.New(cw)
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())
	if o.Title != "" {
		sty := o.textStyle(18)
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
		dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y}, o.Title)
		dc = draw.Crop(dc, 0, 0, 0, -sty.Rectangle(o.Title).Size().Y-vg.Points(4))
	}

	// build plots
	plots := make([][]*plot.Plot, nr)
	bars := make([][]*plot.Plot, nr)
	for i := 0; i < nr; i++ {
		plots[i] = make([]*plot.Plot, nc)
		bars[i] = make([]*plot.Plot, nc)
	}
	for k, spl := range o.Splots {
		i, j := k/nc, k%nc
		plots[i][j], bars[i][j], err = o.build(spl)
		if err != nil {
			return "", chk.Err("subplot %q: %v", spl.Id, err)
		}
	}

	// draw
	tiles := draw.Tiles{
		Rows:      nr,
		Cols:      nc,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	cs := plot.Align(plots, tiles, dc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			p := plots[i][j]
			if p == nil {
				continue
			}
			c := cs[i][j]
			if bars[i][j] != nil {
				bw := (c.Max.X - c.Min.X) * 0.18
				bars[i][j].Draw(draw.Crop(c, c.Max.X-c.Min.X-bw, 0, 0, 0))
				c = draw.Crop(c, 0, -bw, 0, 0)
			}
			p.Draw(c)
		}
	}

	// save
	if dirout != "" {
		err = os.MkdirAll(dirout, 0777)
		if err != nil {
			return "", chk.Err("cannot create output directory:\n%v", err)
		}
	}
	fn = filepath.Join(dirout, fname)
	f, err := os.Create(fn)
	if err != nil {
		return "", chk.Err("cannot create figure file:\n%v", err)
	}
	defer f.Close()
	_, err = cw.WriteTo(f)
	if err != nil {
		return "", chk.Err("cannot write figure %q:\n%v", fn, err)
	}
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func (o *Figure) current() *SplotDat {
	if o.Csplot == nil {
		o.Splot(io.Sf("%d", len(o.Splots)), "")
	}
	return o.Csplot
}

func (o *Figure) handler() text.Handler {
	if o.Tex {
		return text.Latex{Fonts: font.DefaultCache}
	}
	return plot.DefaultTextHandler
}

func (o *Figure) textStyle(size float64) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(size)),
		XAlign:  draw.XLeft,
		YAlign:  draw.YBottom,
		Handler: o.handler(),
	}
}

// build converts one subplot into a plot and an optional colour bar
func (o *Figure) build(spl *SplotDat) (p, bar *plot.Plot, err error) {

	// axes and labels
	p = plot.New()
	hdlr := o.handler()
	p.Title.Text = spl.Title
	p.Title.TextStyle.Handler = hdlr
	p.X.Label.Text = spl.Xlbl
	p.Y.Label.Text = spl.Ylbl
	p.X.Label.TextStyle.Handler = hdlr
	p.Y.Label.TextStyle.Handler = hdlr
	p.X.Tick.Label.Handler = hdlr
	p.Y.Tick.Label.Handler = hdlr
	p.Legend.TextStyle.Handler = hdlr
	if spl.Xticks != nil {
		p.X.Tick.Marker = plot.ConstantTicks(spl.Xticks)
	}
	if spl.Yticks != nil {
		p.Y.Tick.Marker = plot.ConstantTicks(spl.Yticks)
	}

	// image
	if spl.Heat != nil {
		bar, err = o.heat(p, spl.Heat)
		if err != nil {
			return
		}
	}

	// curves
	for _, d := range spl.Data {
		xys := make(plotter.XYs, len(d.X))
		for i := range d.X {
			xys[i].X, xys[i].Y = d.X[i], d.Y[i]
		}
		var l *plotter.Line
		l, err = plotter.NewLine(xys)
		if err != nil {
			return
		}
		l.LineStyle = d.Style.LineStyle()
		p.Add(l)
		if d.Style.L != "" {
			p.Legend.Add(d.Style.L, l)
		}
	}

	// ranges
	if len(spl.Xrange) == 2 {
		p.X.Min, p.X.Max = spl.Xrange[0], spl.Xrange[1]
	}
	if len(spl.Yrange) == 2 {
		p.Y.Min, p.Y.Max = spl.Yrange[0], spl.Yrange[1]
	}

	// vertical lines
	for _, v := range spl.Vlines {
		var l *plotter.Line
		l, err = plotter.NewLine(plotter.XYs{{X: v.X[0], Y: p.Y.Min}, {X: v.X[0], Y: p.Y.Max}})
		if err != nil {
			return
		}
		l.LineStyle = v.Style.LineStyle()
		p.Add(l)
	}

	// texts
	if len(spl.Texts) > 0 {
		xys := make(plotter.XYs, len(spl.Texts))
		strs := make([]string, len(spl.Texts))
		for i, t := range spl.Texts {
			xys[i].X = p.X.Min + t.X*(p.X.Max-p.X.Min)
			xys[i].Y = p.Y.Min + t.Y*(p.Y.Max-p.Y.Min)
			strs[i] = t.Txt
		}
		var lbl *plotter.Labels
		lbl, err = plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
		if err != nil {
			return
		}
		for i, t := range spl.Texts {
			fsz := t.Style.Fsz
			if fsz <= 0 {
				fsz = 12
			}
			lbl.TextStyle[i] = o.textStyle(fsz)
		}
		p.Add(lbl)
	}

	// legend
	switch spl.Legend {
	case "lower left":
		p.Legend.Top, p.Legend.Left = false, true
	case "upper left":
		p.Legend.Top, p.Legend.Left = true, true
	case "upper right", "best":
		p.Legend.Top, p.Legend.Left = true, false
	}
	return
}

// heat adds a heat map and optional contours to p and returns the colour bar plot
func (o *Figure) heat(p *plot.Plot, h *HeatEntity) (bar *plot.Plot, err error) {
	g := Grid{M: h.Z}
	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(h.Zmin)
	cmap.SetMax(h.Zmax)
	pal := cmap.Palette(255)
	hm := plotter.NewHeatMap(g, pal)
	hm.Min, hm.Max = h.Zmin, h.Zmax
	cols := pal.Colors()
	hm.Underflow, hm.Overflow = cols[0], cols[len(cols)-1]
	p.Add(hm)
	if h.Contours && len(h.Ticks) > 0 {
		ct := plotter.NewContour(g, h.Ticks, nil)
		ct.LineStyles = []draw.LineStyle{{Color: color.Black, Width: vg.Points(0.5)}}
		p.Add(ct)
	}
	p.X.Min, p.X.Max = -math.Pi, math.Pi
	p.Y.Min, p.Y.Max = -math.Pi, math.Pi

	// colour bar made of polygons; eps canvases cannot draw images
	cb := plotter.NewHeatMap(NewBarGrid(h.Zmin, h.Zmax, len(cols)), pal)
	cb.Min, cb.Max = h.Zmin, h.Zmax
	bar = plot.New()
	bar.Add(cb)
	bar.HideX()
	bar.Y.Tick.Label.Handler = o.handler()
	if len(h.Ticks) > 0 {
		ticks := make([]plot.Tick, len(h.Ticks))
		for i, v := range h.Ticks {
			ticks[i] = plot.Tick{Value: v, Label: io.Sf("%g", v)}
		}
		bar.Y.Tick.Marker = plot.ConstantTicks(ticks)
	}
	return
}

// Grid adapts a matrix to plotter.GridXYZ on the periodic domain [-π,π]²
//  columns run along x and rows along y
type Grid struct {
	M *mat.Dense
}

// Dims returns the dimensions of the grid
func (o Grid) Dims() (c, r int) {
	r, c = o.M.Dims()
	return c, r
}

// Z returns the value at column c and row r
func (o Grid) Z(c, r int) float64 { return o.M.At(r, c) }

// X returns the x-coordinate of column c
func (o Grid) X(c int) float64 {
	_, nc := o.M.Dims()
	return -math.Pi + 2.0*math.Pi*float64(c)/float64(nc-1)
}

// Y returns the y-coordinate of row r
func (o Grid) Y(r int) float64 {
	nr, _ := o.M.Dims()
	return -math.Pi + 2.0*math.Pi*float64(r)/float64(nr-1)
}

// Min returns the minimum value
func (o Grid) Min() float64 { return mat.Min(o.M) }

// Max returns the maximum value
func (o Grid) Max() float64 { return mat.Max(o.M) }

// BarGrid holds the cells of a vertical colour bar: one column with n cells spanning [Zmin, Zmax]
type BarGrid struct {
	Zmin, Zmax float64 // range
	N          int     // number of cells
}

// NewBarGrid returns a colour bar grid
func NewBarGrid(zmin, zmax float64, n int) BarGrid {
	return BarGrid{Zmin: zmin, Zmax: zmax, N: n}
}

// Dims returns the dimensions of the grid
func (o BarGrid) Dims() (c, r int) { return 1, o.N }

// Z returns the value at the centre of cell r
func (o BarGrid) Z(c, r int) float64 { return o.Y(r) }

// X returns the x-coordinate of the column
func (o BarGrid) X(c int) float64 { return 0 }

// Y returns the centre of cell r
func (o BarGrid) Y(r int) float64 {
	return o.Zmin + (float64(r)+0.5)*(o.Zmax-o.Zmin)/float64(o.N)
}

// PiTicks returns ticks at multiples of π/2 on [-π,π]
func PiTicks(tex bool) []plot.Tick {
	lbls := []string{"-π", "-π/2", "0", "π/2", "π"}
	if tex {
		lbls = []string{"$-\\pi$", "$-\\pi/2$", "$0$", "$\\pi/2$", "$\\pi$"}
	}
	ticks := make([]plot.Tick, 5)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: -math.Pi + float64(i)*math.Pi/2.0, Label: lbls[i]}
	}
	return ticks
}

// SymLimits returns symmetric limits ±max(|zmin|, zmax)
func SymLimits(zmin, zmax float64) (lo, hi float64) {
	zmag := math.Max(math.Abs(zmin), zmax)
	return -zmag, zmag
}

// Pad widens [min, max] on both sides by frac of its span
func Pad(min, max, frac float64) (lo, hi float64) {
	d := frac * (max - min)
	return min - d, max + d
}
