// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// synthSeries returns a frame series whose values encode their own indices
func synthSeries(count, nfields, nframes int, dt float64) *FrameSeries {
	o := &FrameSeries{Count: count, Nfields: nfields}
	for i := 0; i < nframes; i++ {
		o.Times = append(o.Times, float64(i)*dt)
		for k := 0; k < count; k++ {
			for j := 0; j < nfields; j++ {
				o.Data = append(o.Data, float64(1000*i+10*k+j)+0.25)
			}
		}
	}
	return o
}

func Test_series01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series01. header line '# kmax = 10'")

	var b strings.Builder
	b.WriteString("# kmax = 10\n")
	for i := 0; i < 3; i++ {
		b.WriteString(io.Sf("%g 10\n", 0.5*float64(i)))
		for k := 0; k < 10; k++ {
			b.WriteString(io.Sf("%d %g %g %g\n", k+1, 1.0*float64(i), 2.0*float64(k), -3.0))
		}
	}

	s, err := ReadSeries(strings.NewReader(b.String()), 4)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", s)
	chk.Int(tst, "nframes", s.Nframes(), 3)
	chk.Int(tst, "count", s.Count, 10)
	chk.Int(tst, "nfields", s.Nfields, 4)
	chk.Int(tst, "len(Data)", len(s.Data), 3*10*4)
	chk.Array(tst, "times", 1e-15, s.Times, []float64{0, 0.5, 1.0})

	r, c := s.Frame(2).Dims()
	chk.Ints(tst, "frame dims", []int{r, c}, []int{10, 4})
	chk.Float64(tst, "k(2,9)", 1e-15, s.At(2, 9, 0), 10)
	chk.Float64(tst, "S(2,9)", 1e-15, s.At(2, 9, 2), 18)
	chk.Array(tst, "zeta @ frame 1", 1e-15, s.Spectrum(1, 1), []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1})

	dt, err := s.Dt()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "dt", 1e-15, dt, 0.5)
}

func Test_series02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series02. numeric header line is consumed as data")

	text := "0.0 3\n1 2 3\n4 5 6\n7 8 9\n" +
		"2.0 3\n1 1 1\n2 2 2\n3 3 3\n"

	s, err := ReadSeries(strings.NewReader(text), 3)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "nframes", s.Nframes(), 2)
	chk.Array(tst, "times", 1e-15, s.Times, []float64{0, 2})
	chk.Array(tst, "frame 0 field 0", 1e-15, s.Spectrum(0, 0), []float64{1, 4, 7})
	chk.Array(tst, "frame 1 field 2", 1e-15, s.Spectrum(1, 2), []float64{1, 2, 3})

	// Frame is a view on Data
	F := s.Frame(1)
	F.Set(0, 0, -1)
	chk.Float64(tst, "view", 1e-15, s.At(1, 0, 0), -1)
}

func Test_series03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series03. round trip")

	for _, nfields := range []int{3, 4} {
		orig := synthSeries(7, nfields, 5, 0.25)
		var buf bytes.Buffer
		err := WriteSeries(&buf, orig)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		s, err := ReadSeries(&buf, nfields)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Int(tst, "nframes", s.Nframes(), 5)
		chk.Int(tst, "count", s.Count, 7)
		chk.Array(tst, "times", 1e-15, s.Times, orig.Times)
		chk.Array(tst, "data", 1e-12, s.Data, orig.Data)
		for j := 0; j < nfields; j++ {
			ch := s.Channel(j)
			chk.Int(tst, "channel rows", len(ch), 5)
			chk.Float64(tst, "channel(4,6)", 1e-12, ch[4][6], float64(4000+60+j)+0.25)
		}
	}
}

func Test_series04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series04. truncated trailing data is dropped")

	orig := synthSeries(5, 4, 4, 1.0)
	var buf bytes.Buffer
	err := WriteSeries(&buf, orig)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	text := buf.String()

	// cut inside the last frame
	lines := strings.Split(strings.TrimSpace(text), "\n")
	cut := strings.Join(lines[:len(lines)-2], "\n") + "\n"

	s, err := ReadSeries(strings.NewReader(cut), 4)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "nframes", s.Nframes(), 3)

	// frame_count × record_size ≤ total < (frame_count+1) × record_size
	total := len(strings.Fields(cut))
	rs := s.RecordSize()
	if s.Nframes()*rs > total || total >= (s.Nframes()+1)*rs {
		tst.Errorf("frame count invariant failed: nframes=%d rs=%d total=%d", s.Nframes(), rs, total)
	}
}

func Test_series05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series05. errors")

	_, err := ReadSeries(strings.NewReader("# kmax = ten\n1 2 3\n"), 4)
	if err == nil {
		tst.Errorf("malformed header should fail")
		return
	}
	io.Pforan("%v\n", err)

	_, err = ReadSeries(strings.NewReader("0 2\n1 2\n3 x\n"), 2)
	if err == nil {
		tst.Errorf("non-numeric value should fail")
		return
	}

	_, err = ReadSeries(strings.NewReader("0 2\n"), 0)
	if err == nil {
		tst.Errorf("nfields=0 should fail")
		return
	}

	// empty file: no frames; time indexing fails
	s, err := ReadSeries(strings.NewReader(""), 4)
	if err != nil {
		tst.Errorf("empty stream should not fail:\n%v", err)
		return
	}
	chk.Int(tst, "nframes", s.Nframes(), 0)
	_, err = s.FrameIndex(25)
	if err == nil {
		tst.Errorf("FrameIndex on empty series should fail")
		return
	}

	// missing file
	_, err = ReadSeriesFile("/nonexistent/spectra.asc", 4)
	if err == nil {
		tst.Errorf("missing file should fail")
	}
}

func Test_series06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series06. time to frame")

	s := synthSeries(2, 3, 101, 0.5)
	idx, err := s.FrameIndex(25)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "frame @ t=25", idx, 50)

	idx, _ = s.FrameIndex(24.999)
	chk.Int(tst, "frame @ t=24.999", idx, 50)

	idx, _ = s.FrameIndex(24.7)
	chk.Int(tst, "frame @ t=24.7", idx, 49)

	_, err = s.FrameIndex(50.5)
	if err == nil {
		tst.Errorf("t beyond last frame should fail")
	}

	for _, t := range []float64{1e300, math.Inf(1), math.NaN(), -0.5} {
		idx, err = s.FrameIndex(t)
		if err == nil {
			tst.Errorf("t=%g should fail but gave frame %d", t, idx)
			return
		}
		io.Pforan("%v\n", err)
	}

	_, err = TimeToFrame(1, 0, FrameTol, 10)
	if err == nil {
		tst.Errorf("dt=0 should fail")
	}
}

func Test_series07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series07. file and Fortran exponents")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "spectra.asc")
	text := "  0.0000D+00   2\n 1.0D0 2.5D-01 3.0\n 2.0 1.0d+00 4.0\n" +
		"  1.0000D-01   2\n 1.0 2.0 3.0\n 2.0 5.0 6.0\n"
	err := os.WriteFile(fn, []byte(text), 0644)
	if err != nil {
		tst.Errorf("cannot write file:\n%v", err)
		return
	}
	s, err := ReadSeriesFile(fn, 3)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "nframes", s.Nframes(), 2)
	chk.Array(tst, "S(0)", 1e-15, s.Spectrum(0, 1), []float64{0.25, 1.0})
	chk.Array(tst, "times", 1e-15, s.Times, []float64{0, 0.1})
}
