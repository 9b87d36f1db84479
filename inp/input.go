// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of hydra's plotting tools
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Input defines the input data of a tool
type Input interface {
	SetDefault()        // sets default values
	PostProcess() error // validates data and computes derived values
	String() string     // returns a table with all parameters
	IsVerbose() bool    // tells whether messages should be shown
}

// Read sets the defaults of in and then decodes the JSON file fn over them
//  fn -- input file; use "" to keep default values
func Read(fn string, in Input) (err error) {
	in.SetDefault()
	if fn != "" {
		b, err := os.ReadFile(fn)
		if err != nil {
			return chk.Err("cannot read input file %q:\n%v", fn, err)
		}
		err = json.Unmarshal(b, in)
		if err != nil {
			return chk.Err("cannot unmarshal input file %q:\n%v", fn, err)
		}
	}
	return in.PostProcess()
}

// Common holds data shared by all tools
type Common struct {
	Dirin   string  `json:"dirin"`   // root directory of simulation results
	Dirout  string  `json:"dirout"`  // directory for figures
	Verbose bool    `json:"verbose"` // show messages
	Tex     bool    `json:"tex"`     // use LaTeX labels
	Width   float64 `json:"width"`   // figure width [in]; 0 means tool default
	Height  float64 `json:"height"`  // figure height [in]; 0 means tool default
}

// SetDefault sets default values
func (o *Common) SetDefault() {
	o.Dirin = "."
	o.Dirout = "."
	o.Verbose = true
}

// IsVerbose tells whether messages should be shown
func (o *Common) IsVerbose() bool { return o.Verbose }

// postProcess fills figure sizes and the input directory
func (o *Common) postProcess(width, height float64) {
	if o.Width <= 0 {
		o.Width = width
	}
	if o.Height <= 0 {
		o.Height = height
	}
	if o.Dirin == "" {
		o.Dirin = "."
	}
}

// Option selects full, balanced or imbalanced fields
type Option int

// options
const (
	Full       Option = 1 // full fields
	Balanced   Option = 2 // balanced fields
	Imbalanced Option = 3 // imbalanced fields = full - balanced
)

// Check returns an error if option is not 1, 2 or 3
func (o Option) Check() error {
	if o < Full || o > Imbalanced {
		return chk.Err("option must be 1 (full), 2 (balanced) or 3 (imbalanced). option=%d is invalid", o)
	}
	return nil
}

// Suffix returns the output file name suffix: "", "_bal" or "_imb"
func (o Option) Suffix() string {
	switch o {
	case Balanced:
		return "_bal"
	case Imbalanced:
		return "_imb"
	}
	return ""
}

// Prefix returns the data file name prefix: "", "b" or "i"
func (o Option) Prefix() string {
	switch o {
	case Balanced:
		return "b"
	case Imbalanced:
		return "i"
	}
	return ""
}

// Sub returns the subscript of labels: "", "b" or "i"
func (o Option) Sub() string {
	return o.Prefix()
}

// String returns the option name
func (o Option) String() string {
	switch o {
	case Full:
		return "full"
	case Balanced:
		return "balanced"
	case Imbalanced:
		return "imbalanced"
	}
	return io.Sf("invalid(%d)", int(o))
}

// TimeTag returns the time used in output file names: int(t+0.01)
func TimeTag(t float64) int {
	return int(t + 0.01)
}

// CompareDirs returns the four directories compared by spectra and fields
//  sw/ng{ng}/, sw/bal_ng{ng}/, gn/ng{ng}/ and gn/bal_ng{ng}/
func CompareDirs(ng int) []string {
	end := io.Sf("%d/", ng)
	return []string{"sw/ng" + end, "sw/bal_ng" + end, "gn/ng" + end, "gn/bal_ng" + end}
}

// CompareLabels returns the labels of the four compared simulations
func CompareLabels() []string {
	return []string{"SW", "SW-bal", "GN", "GN-bal"}
}
