// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style holds formatting data for lines and texts
type Style struct {
	C   color.Color // colour; nil means black
	Lw  float64     // line width [points]
	Ls  []float64   // dash pattern [points]: on, off, on, ...; nil means solid
	L   string      // label in legend
	Fsz float64     // font size [points]
}

// LineStyle converts this style to a gonum/plot line style
func (o Style) LineStyle() (ls draw.LineStyle) {
	ls.Color = o.C
	if ls.Color == nil {
		ls.Color = color.Black
	}
	ls.Width = vg.Points(o.Lw)
	if o.Lw <= 0 {
		ls.Width = vg.Points(1)
	}
	for _, d := range o.Ls {
		ls.Dashes = append(ls.Dashes, vg.Points(d))
	}
	return
}

// colours
var (
	Black = color.Black
	Blue  = color.RGBA{B: 255, A: 255}
	Red   = color.RGBA{R: 255, A: 255}
)

// Grey returns a shade of grey; v = 0 is black and v = 1 is white
func Grey(v float64) color.Color {
	return color.Gray{Y: uint8(255.0*v + 0.5)}
}

// dash patterns
var (
	Solid      []float64 = nil
	Dashed               = []float64{8, 3}
	DashDotted           = []float64{1, 3, 3, 1}
)

// GetLabel returns the axis label corresponding to key
//  tex -- LaTeX label; otherwise plain Unicode
//  A field key may carry a subscript after '_'; e.g. "zeta_b". Keys starting
//  with "S:" denote log10 spectra of a field; e.g. "S:h_i".
func GetLabel(key string, tex bool) string {
	if strings.HasPrefix(key, "S:") {
		sym := fieldSymbol(key[2:], tex)
		if tex {
			return "$\\log_{10}S_{" + sym + "}$"
		}
		return "log₁₀ S(" + sym + ")"
	}
	l, u := "", ""
	switch key {
	case "logk":
		l, u = "\\log_{10}k", "log₁₀ k"
	case "t":
		l, u = "t", "t"
	case "epst":
		l, u = "\\varepsilon t", "εt"
	case "energy":
		return "Energy"
	case "K":
		l, u = "\\mathcal{K}", "K"
	case "P":
		l, u = "\\mathcal{P}", "P"
	case "K+P":
		l, u = "\\mathcal{K}+\\mathcal{P}", "K+P"
	case "E":
		l, u = "\\mathcal{E}", "E"
	case "Eb":
		l, u = "\\mathcal{E}_b", "E_b"
	case "Eu":
		l, u = "\\mathcal{E}_u", "E_u"
	case "a":
		l, u = "a", "a"
	default:
		if strings.HasPrefix(key, "vec") {
			n := key[3:]
			l = "\\hat{\\delta}_" + n + ",~\\hat{u}_" + n + "/(2\\Omega)"
			u = "δ̂" + n + ", û" + n + "/(2Ω)"
			break
		}
		sym := fieldSymbol(key, tex)
		if tex {
			return "$" + sym + "$"
		}
		return sym
	}
	if tex {
		return "$" + l + "$"
	}
	return u
}

// fieldSymbol returns the symbol of a field key such as "zeta" or "h_b"
func fieldSymbol(key string, tex bool) string {
	base, sub := key, ""
	if idx := strings.Index(key, "_"); idx >= 0 {
		base, sub = key[:idx], key[idx+1:]
	}
	var l, u string
	switch base {
	case "h":
		l, u = "h", "h"
	case "htilde":
		l, u = "\\tilde{h}", "h̃"
	case "zeta":
		l, u = "\\zeta", "ζ"
	case "delta":
		l, u = "\\delta", "δ"
	case "gamma":
		l, u = "\\gamma", "γ"
	case "gamma-tilde":
		l, u = "\\tilde{\\gamma}", "γ̃"
	default:
		l, u = base, base
	}
	if sub != "" {
		l += "_" + sub
		u += "_" + sub
	}
	if tex {
		return l
	}
	return u
}
