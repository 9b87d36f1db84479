// Copyright 2026 The Hydra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dat

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// synthFrame returns ng*ng values in file order: v[j*ng+i] = 10*i + j + offset
func synthFrame(ng int, offset float32) (v []float32) {
	v = make([]float32, ng*ng)
	for i := 0; i < ng; i++ {
		for j := 0; j < ng; j++ {
			v[j*ng+i] = float32(10*i+j) + offset
		}
	}
	return
}

func writeR4(tst *testing.T, fn string, times []float64, frames ...[]float32) {
	f, err := os.Create(fn)
	if err != nil {
		tst.Fatalf("cannot create file:\n%v", err)
	}
	defer f.Close()
	err = R4{}.Write(f, times, frames...)
	if err != nil {
		tst.Fatalf("cannot write file:\n%v", err)
	}
}

func Test_snapshot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snapshot01. transpose and periodic closure")

	ng := 4
	var buf bytes.Buffer
	err := R4{}.Write(&buf, []float64{0, 2.5}, synthFrame(ng, 0), synthFrame(ng, 100))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	raw, err := ReadR4(&buf)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "nvals", len(raw), 2*(ng*ng+1))
	chk.Int(tst, "nframes", R4Frames(len(raw), ng), 2)

	t, err := SnapshotTime(raw, ng, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "t", 1e-15, t, 2.5)

	Z, err := Snapshot(raw, ng, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	r, c := Z.Dims()
	chk.Ints(tst, "dims", []int{r, c}, []int{ng + 1, ng + 1})
	io.Pforan("Z(1,2) = %v\n", Z.At(1, 2))
	chk.Float64(tst, "Z(1,2)", 1e-15, Z.At(1, 2), 112)
	chk.Float64(tst, "Z(3,0)", 1e-15, Z.At(3, 0), 130)
	for k := 0; k <= ng; k++ {
		chk.Float64(tst, "last row", 1e-15, Z.At(ng, k), Z.At(0, k))
		chk.Float64(tst, "last col", 1e-15, Z.At(k, ng), Z.At(k, 0))
	}
	chk.Float64(tst, "corner", 1e-15, Z.At(ng, ng), Z.At(0, 0))
}

func Test_snapshot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snapshot02. shape mismatch")

	ng := 3
	var buf bytes.Buffer
	err := R4{}.Write(&buf, []float64{0}, synthFrame(ng, 0))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	raw, _ := ReadR4(bytes.NewReader(buf.Bytes()))

	_, err = Snapshot(raw, ng, 1)
	if err == nil {
		tst.Errorf("frame beyond end of file should fail")
		return
	}
	io.Pforan("%v\n", err)

	_, err = Snapshot(raw, ng+1, 0)
	if err == nil {
		tst.Errorf("wrong grid size should fail")
		return
	}

	_, err = Snapshot(raw, 0, 0)
	if err == nil {
		tst.Errorf("ng=0 should fail")
		return
	}

	_, err = ReadR4(bytes.NewReader(buf.Bytes()[:buf.Len()-1]))
	if err == nil {
		tst.Errorf("partial float should fail")
	}
}

func Test_snapshot03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snapshot03. files and difference")

	ng := 4
	dir := tst.TempDir()
	fnA := filepath.Join(dir, "hh.r4")
	fnB := filepath.Join(dir, "bhh.r4")
	writeR4(tst, fnA, []float64{0, 1}, synthFrame(ng, 0), synthFrame(ng, 7))
	writeR4(tst, fnB, []float64{0, 1}, synthFrame(ng, 0), synthFrame(ng, 2))

	Z, err := LoadDifference(fnA, fnB, ng, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	for i := 0; i <= ng; i++ {
		for j := 0; j <= ng; j++ {
			chk.Float64(tst, "a-b", 1e-5, Z.At(i, j), 5)
		}
	}

	_, err = LoadSnapshot(filepath.Join(dir, "missing.r4"), ng, 0)
	if err == nil {
		tst.Errorf("missing file should fail")
	}
}

func Test_snapshot04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snapshot04. big-endian")

	ng := 2
	var buf bytes.Buffer
	be := R4{Order: binary.BigEndian}
	err := be.Write(&buf, []float64{3}, []float32{1, 2, 3, 4})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	raw, err := be.Read(&buf)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	Z, err := Snapshot(raw, ng, 0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Z(0,1)", 1e-15, Z.At(0, 1), 3)
	chk.Float64(tst, "Z(1,0)", 1e-15, Z.At(1, 0), 2)
	chk.Float64(tst, "Z(2,2)", 1e-15, Z.At(2, 2), 1)
}
