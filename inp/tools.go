// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// spectra ////////////////////////////////////////////////////////////////////////////////////////////

// Spectra holds the input data for comparing spectra of four simulations
type Spectra struct {
	Common
	Option Option    `json:"option"` // 1=full, 2=balanced, 3=imbalanced
	T      float64   `json:"t"`      // time to show
	Hbar   float64   `json:"hbar"`   // mean depth H used in GN simulations
	Ng     int       `json:"ng"`     // resolution
	Ymax   []float64 `json:"ymax"`   // maximum log10 spectrum shown for h, ζ, δ and γ; nil means option default
	Dirs   []string  `json:"dirs"`   // directories to compare; nil means CompareDirs(ng)
	Labels []string  `json:"labels"` // curve labels

	// derived
	Datafile    string  // file with k, S_ζ, S_δ, S_γ
	Altdatafile string  // file with S_h in column 1
	Outfile     string  // output figure
	Xgn         float64 // log10(√3/H)
}

// SetDefault sets default values
func (o *Spectra) SetDefault() {
	o.Common.SetDefault()
	o.Option = Full
	o.T = 25
	o.Hbar = 0.2
	o.Ng = 256
}

// PostProcess validates data and computes derived values
func (o *Spectra) PostProcess() (err error) {
	if err = o.Option.Check(); err != nil {
		return
	}
	height := 15.1
	if o.Option == Imbalanced {
		height = 14.9
	}
	o.postProcess(16, height)
	if o.Ng < 1 {
		return chk.Err("resolution must be positive. ng=%d is invalid", o.Ng)
	}
	if o.Hbar <= 0 {
		return chk.Err("mean depth H must be positive. H=%g is invalid", o.Hbar)
	}
	if o.Ymax == nil {
		o.Ymax = []float64{-3, 0, -4, 1}
		if o.Option == Imbalanced {
			o.Ymax = []float64{-8, -6, -5, -2}
		}
	}
	if len(o.Ymax) != 4 {
		return chk.Err("ymax must have 4 values (h, zeta, delta, gamma). %d is invalid", len(o.Ymax))
	}
	if o.Dirs == nil {
		o.Dirs = CompareDirs(o.Ng)
	}
	if o.Labels == nil {
		o.Labels = CompareLabels()
	}
	if len(o.Labels) != len(o.Dirs) {
		return chk.Err("number of labels (%d) and directories (%d) differ", len(o.Labels), len(o.Dirs))
	}
	p := o.Option.Prefix()
	o.Datafile = p + "spectra.asc"
	o.Altdatafile = "alt-" + p + "spectra.asc"
	o.Outfile = io.Sf("spectra%s_n%d_t%d.eps", o.Option.Suffix(), o.Ng, TimeTag(o.T))
	o.Xgn = math.Log10(math.Sqrt(3.0) / o.Hbar)
	return
}

// String returns a table with all parameters
func (o *Spectra) String() string {
	return io.ArgsTable("SPECTRA",
		"option: 1=full 2=balanced 3=imbalanced", "option", int(o.Option),
		"time to show", "t", o.T,
		"mean depth H in GN simulations", "hbar", o.Hbar,
		"resolution", "ng", o.Ng,
		"max log10 S_h, S_ζ, S_δ, S_γ", "ymax", io.Sf("%v", o.Ymax),
		"directories", "dirs", io.Sf("%v", o.Dirs),
		"root directory", "dirin", o.Dirin,
		"output directory", "dirout", o.Dirout,
		"output file", "outfile", o.Outfile,
	)
}

// fields /////////////////////////////////////////////////////////////////////////////////////////////

// FieldAcronyms lists the acronyms of r4 field files in processing order
var FieldAcronyms = []string{"hh", "zz", "dd", "gg", "gt"}

// FieldNames maps acronyms to field names used in output file names and labels
var FieldNames = map[string]string{
	"hh": "h",
	"zz": "zeta",
	"dd": "delta",
	"gg": "gamma",
	"gt": "gamma-tilde",
}

// FieldTitles maps acronyms to label keys of figure titles
var FieldTitles = map[string]string{
	"hh": "htilde",
	"zz": "zeta",
	"dd": "delta",
	"gg": "gamma",
	"gt": "gamma-tilde",
}

// Fields holds the input data for comparing field snapshots of four simulations
type Fields struct {
	Common
	Option   Option                 `json:"option"`   // 1=full, 2=balanced, 3=imbalanced
	T        float64                `json:"t"`        // time to show
	Ng       int                    `json:"ng"`       // resolution
	Fields   []string               `json:"fields"`   // acronyms of fields to process; nil means all
	Dirs     []string               `json:"dirs"`     // directories to compare; nil means CompareDirs(ng)
	Labels   []string               `json:"labels"`   // panel titles
	EneFile  string                 `json:"enefile"`  // file with (t, E) used to compute dt; in first directory
	Limits   map[string][][]float64 `json:"limits"`   // overrides: acronym => [panel]{zmin, zmax}; empty entries keep defaults
	Contours bool                   `json:"contours"` // draw contour lines
}

// SetDefault sets default values
func (o *Fields) SetDefault() {
	o.Common.SetDefault()
	o.Option = Full
	o.T = 25
	o.Ng = 256
	o.EneFile = "ene.asc"
}

// PostProcess validates data and computes derived values
func (o *Fields) PostProcess() (err error) {
	if err = o.Option.Check(); err != nil {
		return
	}
	o.postProcess(10, 10)
	if o.Ng < 1 {
		return chk.Err("resolution must be positive. ng=%d is invalid", o.Ng)
	}
	if o.T < 0 {
		return chk.Err("time to show must be non-negative. t=%g is invalid", o.T)
	}
	if o.Fields == nil {
		o.Fields = FieldAcronyms
	}
	for _, f := range o.Fields {
		if _, ok := FieldNames[f]; !ok {
			return chk.Err("field %q is unknown; use one of %v", f, FieldAcronyms)
		}
	}
	if o.Dirs == nil {
		o.Dirs = CompareDirs(o.Ng)
	}
	if o.Labels == nil {
		o.Labels = CompareLabels()
	}
	if len(o.Dirs) != 4 || len(o.Labels) != 4 {
		return chk.Err("four directories and four labels are required. %d and %d are invalid", len(o.Dirs), len(o.Labels))
	}
	for f, lims := range o.Limits {
		for i, l := range lims {
			if len(l) != 0 && len(l) != 2 {
				return chk.Err("limits of %q, panel %d, must be {zmin, zmax}. %v is invalid", f, i, l)
			}
		}
	}
	return
}

// Limit returns the override limits of panel i of field acronym f
func (o *Fields) Limit(f string, i int) (zmin, zmax float64, ok bool) {
	lims := o.Limits[f]
	if i >= len(lims) || len(lims[i]) != 2 {
		return
	}
	return lims[i][0], lims[i][1], true
}

// Outfile returns the figure file name of field acronym f
func (o *Fields) Outfile(f string) string {
	return io.Sf("%s%s_n%d_t%d.eps", FieldNames[f], o.Option.Suffix(), o.Ng, TimeTag(o.T))
}

// String returns a table with all parameters
func (o *Fields) String() string {
	return io.ArgsTable("FIELDS",
		"option: 1=full 2=balanced 3=imbalanced", "option", int(o.Option),
		"time to show", "t", o.T,
		"resolution", "ng", o.Ng,
		"fields", "fields", io.Sf("%v", o.Fields),
		"directories", "dirs", io.Sf("%v", o.Dirs),
		"draw contour lines", "contours", o.Contours,
		"root directory", "dirin", o.Dirin,
		"output directory", "dirout", o.Dirout,
	)
}

// energy /////////////////////////////////////////////////////////////////////////////////////////////

// Energy holds the input data for plotting the energy evolution
type Energy struct {
	Common
	File    string `json:"file"`    // table with t, K, P, K+P
	Outfile string `json:"outfile"` // output figure
}

// SetDefault sets default values
func (o *Energy) SetDefault() {
	o.Common.SetDefault()
	o.File = "evolution/energy.asc"
	o.Outfile = "energy.png"
}

// PostProcess validates data and computes derived values
func (o *Energy) PostProcess() (err error) {
	o.postProcess(12, 5)
	if o.File == "" || o.Outfile == "" {
		return chk.Err("input and output file names must be given")
	}
	return
}

// String returns a table with all parameters
func (o *Energy) String() string {
	return io.ArgsTable("ENERGY",
		"energy file", "file", o.File,
		"root directory", "dirin", o.Dirin,
		"output directory", "dirout", o.Dirout,
		"output file", "outfile", o.Outfile,
	)
}

// ecomp //////////////////////////////////////////////////////////////////////////////////////////////

// Ecomp holds the input data for comparing energy components of several simulations
type Ecomp struct {
	Common
	Dirs    []string  `json:"dirs"`    // simulation directories
	Rossby  []float64 `json:"rossby"`  // Rossby number of each simulation; times are scaled by it
	Labels  []string  `json:"labels"`  // curve labels
	File    string    `json:"file"`    // table with t, Eu, Ep, Eb, E; in each directory
	Sfac    float64   `json:"sfac"`    // padding of vertical ranges as a fraction of the span
	Outfile string    `json:"outfile"` // output figure
}

// SetDefault sets default values
func (o *Ecomp) SetDefault() {
	o.Common.SetDefault()
	o.File = "evolution/ecomp.asc"
	o.Sfac = 0.02
	o.Outfile = "ecomp.eps"
}

// PostProcess validates data and computes derived values
func (o *Ecomp) PostProcess() (err error) {
	o.postProcess(18.2, 6)
	if o.Dirs == nil {
		o.Dirs = []string{
			"ng1024kd4eps0.100gamma2.0bzrat0.0/",
			"ng512kd4eps0.100gamma2.0bzrat0.0/",
			"ng256kd4eps0.100gamma2.0bzrat0.0/",
		}
		o.Labels = []string{"Rm=3200", "Rm=800", "Rm=200"}
		if o.Tex {
			o.Labels = []string{"${\\mathrm Rm}=3200$", "${\\mathrm Rm}=800$", "${\\mathrm Rm}=200$"}
		}
	}
	if o.Rossby == nil {
		o.Rossby = make([]float64, len(o.Dirs))
		for i := range o.Rossby {
			o.Rossby[i] = 0.1
		}
	}
	if o.Labels == nil {
		o.Labels = make([]string, len(o.Dirs))
	}
	if len(o.Rossby) != len(o.Dirs) || len(o.Labels) != len(o.Dirs) {
		return chk.Err("numbers of directories (%d), Rossby numbers (%d) and labels (%d) differ", len(o.Dirs), len(o.Rossby), len(o.Labels))
	}
	if len(o.Dirs) == 0 {
		return chk.Err("at least one directory is required")
	}
	if o.Sfac < 0 {
		return chk.Err("padding fraction must be non-negative. sfac=%g is invalid", o.Sfac)
	}
	return
}

// String returns a table with all parameters
func (o *Ecomp) String() string {
	return io.ArgsTable("ENERGY COMPONENTS",
		"directories", "dirs", io.Sf("%v", o.Dirs),
		"Rossby numbers", "rossby", io.Sf("%v", o.Rossby),
		"labels", "labels", io.Sf("%v", o.Labels),
		"energy components file", "file", o.File,
		"padding fraction", "sfac", o.Sfac,
		"output file", "outfile", o.Outfile,
	)
}

// profiles ///////////////////////////////////////////////////////////////////////////////////////////

// Profiles holds the input data for plotting vertical-mode profiles
type Profiles struct {
	Common
	Nmodes  int    `json:"nmodes"`  // number of modes; files d{m}.asc and u{m}.asc for m = 1…nmodes
	Outfile string `json:"outfile"` // output figure
}

// SetDefault sets default values
func (o *Profiles) SetDefault() {
	o.Common.SetDefault()
	o.Nmodes = 3
	o.Outfile = "evec.eps"
}

// PostProcess validates data and computes derived values
func (o *Profiles) PostProcess() (err error) {
	o.postProcess(24, 7.6)
	if o.Nmodes < 1 {
		return chk.Err("number of modes must be positive. nmodes=%d is invalid", o.Nmodes)
	}
	return
}

// Files returns the names of the δ and u profile files of mode m
func (o *Profiles) Files(m int) (d, u string) {
	return io.Sf("d%d.asc", m), io.Sf("u%d.asc", m)
}

// String returns a table with all parameters
func (o *Profiles) String() string {
	return io.ArgsTable("PROFILES",
		"number of modes", "nmodes", o.Nmodes,
		"root directory", "dirin", o.Dirin,
		"output directory", "dirout", o.Dirout,
		"output file", "outfile", o.Outfile,
	)
}

// synth //////////////////////////////////////////////////////////////////////////////////////////////

// Synth holds the input data for generating a synthetic results tree
type Synth struct {
	Common
	Ng      int     `json:"ng"`      // resolution of r4 fields and name of directories
	Kmax    int     `json:"kmax"`    // number of wavenumbers in spectra
	Nframes int     `json:"nframes"` // number of frames
	Dt      float64 `json:"dt"`      // time between frames
	Hbar    float64 `json:"hbar"`    // mean depth H
	Npts    int     `json:"npts"`    // number of points in time series and profiles
}

// SetDefault sets default values
func (o *Synth) SetDefault() {
	o.Common.SetDefault()
	o.Dirout = "/tmp/hydra/synth"
	o.Ng = 32
	o.Kmax = 64
	o.Nframes = 11
	o.Dt = 2.5
	o.Hbar = 0.2
	o.Npts = 101
}

// PostProcess validates data and computes derived values
func (o *Synth) PostProcess() (err error) {
	o.postProcess(0, 0)
	if o.Ng < 2 || o.Kmax < 1 || o.Npts < 2 {
		return chk.Err("ng ≥ 2, kmax ≥ 1 and npts ≥ 2 are required. ng=%d kmax=%d npts=%d are invalid", o.Ng, o.Kmax, o.Npts)
	}
	if o.Nframes < 2 || o.Dt <= 0 {
		return chk.Err("at least 2 frames and a positive dt are required. nframes=%d dt=%g are invalid", o.Nframes, o.Dt)
	}
	return
}

// String returns a table with all parameters
func (o *Synth) String() string {
	return io.ArgsTable("SYNTHETIC DATA",
		"resolution", "ng", o.Ng,
		"number of wavenumbers", "kmax", o.Kmax,
		"number of frames", "nframes", o.Nframes,
		"time between frames", "dt", o.Dt,
		"mean depth H", "hbar", o.Hbar,
		"points in series", "npts", o.Npts,
		"output directory", "dirout", o.Dirout,
	)
}
