// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"bytes"
	"encoding/binary"
	goio "io"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// R4 reads and writes raw single-precision records: (time, ng*ng values) per frame
type R4 struct {
	Order binary.ByteOrder // byte order; nil means little-endian
}

func (o R4) order() binary.ByteOrder {
	if o.Order == nil {
		return binary.LittleEndian
	}
	return o.Order
}

// Read reads the whole stream as a flat float32 sequence
func (o R4) Read(r goio.Reader) (raw []float32, err error) {
	b, err := goio.ReadAll(r)
	if err != nil {
		return nil, chk.Err("cannot read r4 data:\n%v", err)
	}
	if len(b)%4 != 0 {
		return nil, chk.Err("shape mismatch: r4 data has %d bytes which is not a multiple of 4", len(b))
	}
	ord := o.order()
	raw = make([]float32, len(b)/4)
	for i := range raw {
		raw[i] = math.Float32frombits(ord.Uint32(b[4*i:]))
	}
	return
}

// ReadFile reads an r4 file
func (o R4) ReadFile(fn string) (raw []float32, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open r4 file:\n%v", err)
	}
	defer f.Close()
	raw, err = o.Read(f)
	if err != nil {
		return nil, chk.Err("%s: %v", fn, err)
	}
	return
}

// Write writes frames; each frame is written as its time followed by the grid values
//  frames -- [nframes][ng*ng] values in file order
func (o R4) Write(w goio.Writer, times []float64, frames ...[]float32) (err error) {
	if len(times) != len(frames) {
		return chk.Err("number of times (%d) and frames (%d) differ", len(times), len(frames))
	}
	var buf bytes.Buffer
	for i, frame := range frames {
		err = binary.Write(&buf, o.order(), float32(times[i]))
		if err != nil {
			return
		}
		err = binary.Write(&buf, o.order(), frame)
		if err != nil {
			return
		}
	}
	_, err = w.Write(buf.Bytes())
	return
}

// ReadR4 reads a little-endian r4 stream
func ReadR4(r goio.Reader) ([]float32, error) {
	return R4{}.Read(r)
}

// WriteR4 writes (time, grid values) records with the given byte order
func WriteR4(w goio.Writer, order binary.ByteOrder, times []float64, frames ...[]float32) error {
	return R4{Order: order}.Write(w, times, frames...)
}

// R4Frames returns the number of complete frames in nvals values of a grid with ng×ng points
func R4Frames(nvals, ng int) int {
	if ng < 1 {
		return 0
	}
	return nvals / (ng*ng + 1)
}

// SnapshotTime returns the time stamp preceding the grid values of frame
func SnapshotTime(raw []float32, ng, frame int) (t float64, err error) {
	lo, _, err := snapshotRange(len(raw), ng, frame)
	if err != nil {
		return
	}
	return float64(raw[lo-1]), nil
}

// Snapshot extracts one frame from raw r4 values as a periodic (ng+1)×(ng+1) matrix
//  The values of one frame are stored with x varying slowest; Z(i,j) = raw[lo + j*ng + i]
//  so that rows run along y. Row ng repeats row 0 and column ng repeats column 0.
func Snapshot(raw []float32, ng, frame int) (Z *mat.Dense, err error) {
	lo, _, err := snapshotRange(len(raw), ng, frame)
	if err != nil {
		return
	}
	Z = mat.NewDense(ng+1, ng+1, nil)
	for i := 0; i < ng; i++ {
		for j := 0; j < ng; j++ {
			Z.Set(i, j, float64(raw[lo+j*ng+i]))
		}
	}
	Periodic(Z)
	return
}

// Periodic closes a (n+1)×(n+1) matrix: last row := first row; last column := first column
func Periodic(Z *mat.Dense) {
	r, c := Z.Dims()
	for j := 0; j < c-1; j++ {
		Z.Set(r-1, j, Z.At(0, j))
	}
	for i := 0; i < r; i++ {
		Z.Set(i, c-1, Z.At(i, 0))
	}
}

// LoadSnapshot reads frame from a little-endian r4 file
func LoadSnapshot(fn string, ng, frame int) (Z *mat.Dense, err error) {
	raw, err := R4{}.ReadFile(fn)
	if err != nil {
		return
	}
	Z, err = Snapshot(raw, ng, frame)
	if err != nil {
		return nil, chk.Err("%s: %v", fn, err)
	}
	return
}

// LoadDifference loads frame from two r4 files and returns their difference (a - b)
//  e.g. imbalanced = full - balanced
func LoadDifference(fnA, fnB string, ng, frame int) (Z *mat.Dense, err error) {
	A, err := LoadSnapshot(fnA, ng, frame)
	if err != nil {
		return
	}
	B, err := LoadSnapshot(fnB, ng, frame)
	if err != nil {
		return
	}
	Z = new(mat.Dense)
	Z.Sub(A, B)
	return
}

func snapshotRange(nvals, ng, frame int) (lo, hi int, err error) {
	if ng < 1 {
		return 0, 0, chk.Err("grid size must be positive. ng=%d is invalid", ng)
	}
	if frame < 0 {
		return 0, 0, chk.Err("frame index out of range: frame=%d is negative", frame)
	}
	N := ng * ng
	lo = frame*(N+1) + 1
	hi = (frame + 1) * (N + 1)
	if hi > nvals {
		return 0, 0, chk.Err("shape mismatch: frame %d of a %d×%d grid needs %d values but there are %d (%d complete frames)", frame, ng, ng, hi, nvals, R4Frames(nvals, ng))
	}
	return
}
