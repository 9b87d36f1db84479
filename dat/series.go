// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dat implements readers and writers for the ASCII and binary output of hydra simulations
package dat

import (
	"bytes"
	goio "io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// NumLead is the number of leading scalars in each frame record (time and count)
const NumLead = 2

// FrameTol is added to t/dt before truncation when mapping times to frames
const FrameTol = 0.01

// FrameSeries holds a time-ordered sequence of spectra (or gridded profiles)
//  Data is flat in (frame, count, field) row-major order
type FrameSeries struct {
	Count   int       // number of wavenumbers (or grid points) per frame
	Nfields int       // number of fields per wavenumber; e.g. k, S_h, S_ζ, S_δ
	Times   []float64 // [nframes] time of each frame
	Data    []float64 // [nframes*Count*Nfields] values
}

// ReadSeriesFile reads a frame series from file
func ReadSeriesFile(fn string, nfields int) (o *FrameSeries, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open frame series file:\n%v", err)
	}
	defer f.Close()
	o, err = ReadSeries(f, nfields)
	if err != nil {
		return nil, chk.Err("%s: %v", fn, err)
	}
	return
}

// ReadSeries reads a frame series from an ASCII stream
//  The last token of the first line holds the count. The first line is
//  consumed again as data when all of its tokens are numeric (it is then the
//  first frame's "time count" pair); otherwise it is a pure header and skipped.
//  Records are nfields*count+2 values long; an incomplete trailing record is dropped.
func ReadSeries(r goio.Reader, nfields int) (o *FrameSeries, err error) {

	// check
	if nfields < 1 {
		return nil, chk.Err("number of fields per record must be positive. nfields=%d is invalid", nfields)
	}

	// read everything
	b, err := goio.ReadAll(r)
	if err != nil {
		return nil, chk.Err("cannot read frame series:\n%v", err)
	}

	// empty stream has no frames
	if len(bytes.TrimSpace(b)) == 0 {
		return &FrameSeries{Nfields: nfields}, nil
	}

	// header
	first, rest := b, []byte{}
	if idx := bytes.IndexByte(b, '\n'); idx >= 0 {
		first, rest = b[:idx], b[idx+1:]
	}
	hdr := strings.Fields(string(first))
	if len(hdr) == 0 {
		return nil, chk.Err("malformed header: first line is empty")
	}
	count, err := strconv.Atoi(hdr[len(hdr)-1])
	if err != nil {
		return nil, chk.Err("malformed header: cannot parse count from %q", hdr[len(hdr)-1])
	}
	if count < 1 {
		return nil, chk.Err("malformed header: count must be positive. count=%d is invalid", count)
	}

	// rewind if the header line is data
	body := rest
	if allNumeric(hdr) {
		body = b
	}
	vals, err := parseFloats(body)
	if err != nil {
		return nil, err
	}

	// frames
	rsize := nfields*count + NumLead
	nframes := len(vals) / rsize
	o = &FrameSeries{
		Count:   count,
		Nfields: nfields,
		Times:   make([]float64, nframes),
		Data:    make([]float64, nframes*count*nfields),
	}
	n := count * nfields
	for i := 0; i < nframes; i++ {
		rec := vals[i*rsize : (i+1)*rsize]
		o.Times[i] = rec[0]
		copy(o.Data[i*n:(i+1)*n], rec[NumLead:])
	}
	return
}

// RecordSize returns the number of scalars in each frame record
func (o *FrameSeries) RecordSize() int {
	return o.Nfields*o.Count + NumLead
}

// Nframes returns the number of complete frames
func (o *FrameSeries) Nframes() int {
	return len(o.Times)
}

// Dt returns the time step between frames; constant step is assumed
func (o *FrameSeries) Dt() (dt float64, err error) {
	if len(o.Times) < 2 {
		return 0, chk.Err("at least 2 frames are needed to compute dt. nframes=%d", len(o.Times))
	}
	dt = o.Times[1] - o.Times[0]
	if dt <= 0 {
		return 0, chk.Err("time step must be positive. dt=%g is invalid", dt)
	}
	return
}

// FrameIndex returns the frame corresponding to time t
func (o *FrameSeries) FrameIndex(t float64) (idx int, err error) {
	dt, err := o.Dt()
	if err != nil {
		return
	}
	return TimeToFrame(t, dt, FrameTol, o.Nframes())
}

// TimeToFrame maps time t to a frame index: int(t/dt + tol)
func TimeToFrame(t, dt, tol float64, nframes int) (idx int, err error) {
	if dt <= 0 {
		return 0, chk.Err("time step must be positive. dt=%g is invalid", dt)
	}
	x := t/dt + tol
	if !(t >= 0) || !(x < float64(nframes)) {
		return 0, chk.Err("frame index out of range: t=%g corresponds to frame %g but there are %d frames", t, math.Floor(x), nframes)
	}
	idx = int(x)
	if idx < 0 || idx >= nframes {
		return 0, chk.Err("frame index out of range: t=%g corresponds to frame %d but there are %d frames", t, idx, nframes)
	}
	return
}

// At returns the value of field at wavenumber index k of frame
func (o *FrameSeries) At(frame, k, field int) float64 {
	return o.Data[(frame*o.Count+k)*o.Nfields+field]
}

// Frame returns a (Count × Nfields) view of one frame; it shares storage with Data
func (o *FrameSeries) Frame(frame int) *mat.Dense {
	n := o.Count * o.Nfields
	return mat.NewDense(o.Count, o.Nfields, o.Data[frame*n:(frame+1)*n])
}

// Spectrum returns a copy of one field of one frame
func (o *FrameSeries) Spectrum(frame, field int) (res []float64) {
	res = make([]float64, o.Count)
	for k := 0; k < o.Count; k++ {
		res[k] = o.At(frame, k, field)
	}
	return
}

// Channel returns one field for all frames: [nframes][Count]
func (o *FrameSeries) Channel(field int) (res [][]float64) {
	res = utl.Alloc(o.Nframes(), o.Count)
	for i := range res {
		for k := 0; k < o.Count; k++ {
			res[i][k] = o.At(i, k, field)
		}
	}
	return
}

// String returns a short summary
func (o *FrameSeries) String() string {
	if o.Nframes() == 0 {
		return io.Sf("frame series: count=%d nfields=%d nframes=0", o.Count, o.Nfields)
	}
	return io.Sf("frame series: count=%d nfields=%d nframes=%d t=[%g, %g]", o.Count, o.Nfields, o.Nframes(), o.Times[0], o.Times[o.Nframes()-1])
}

// WriteSeries writes a frame series in the layout read by ReadSeries
func WriteSeries(w goio.Writer, o *FrameSeries) (err error) {
	var buf bytes.Buffer
	for i, t := range o.Times {
		io.Ff(&buf, "%23.15e %d\n", t, o.Count)
		for k := 0; k < o.Count; k++ {
			for j := 0; j < o.Nfields; j++ {
				io.Ff(&buf, "%23.15e", o.At(i, k, j))
			}
			io.Ff(&buf, "\n")
		}
	}
	_, err = w.Write(buf.Bytes())
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func allNumeric(tokens []string) bool {
	for _, tok := range tokens {
		if _, err := strconv.ParseFloat(fortranExp(tok), 64); err != nil {
			return false
		}
	}
	return true
}

func parseFloats(b []byte) (vals []float64, err error) {
	tokens := strings.Fields(string(b))
	vals = make([]float64, len(tokens))
	for i, tok := range tokens {
		vals[i], err = strconv.ParseFloat(fortranExp(tok), 64)
		if err != nil {
			return nil, chk.Err("cannot parse value #%d: %q", i, tok)
		}
	}
	return
}

// fortranExp replaces Fortran's D exponent marker (1.0D-03)
func fortranExp(tok string) string {
	if strings.ContainsAny(tok, "dD") {
		return strings.NewReplacer("d", "e", "D", "E").Replace(tok)
	}
	return tok
}
