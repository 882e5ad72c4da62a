// Copyright 2025 go-quad Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package soa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quadsim/go-quad/quad"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		Fields:          FieldsPerRecord,
		RecordsPerBlock: 16,
		NumBlocks:       3,
		DataOffset:      HeaderSize,
	}
	buf, err := EncodeHeader(&h)
	if err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}
	if len(buf) != HeaderSize {
		t.Fatalf("encoded header is %d bytes, want %d", len(buf), HeaderSize)
	}
	got, err := DecodeHeader(buf)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if got.RecordsPerBlock != 16 || got.NumBlocks != 3 || got.DataOffset != HeaderSize {
		t.Errorf("decoded header = %+v", got)
	}
}

func TestCreateOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.soa")
	if err := Create(path, 8, 2); err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.NumBlocks() != 2 || s.RecordsPerBlock() != 8 {
		t.Fatalf("geometry = %d blocks x %d records", s.NumBlocks(), s.RecordsPerBlock())
	}

	blk := s.Block(0)
	if len(blk) != 8*FieldsPerRecord {
		t.Fatalf("Block(0) has %d floats, want %d", len(blk), 8*FieldsPerRecord)
	}
	for i, v := range blk {
		if v != 0 {
			t.Fatalf("fresh block not zeroed at %d: %v", i, v)
		}
	}

	x := quad.SplatF32(1).AsV128()
	y := quad.SplatF32(2).AsV128()
	z := quad.SplatF32(3).AsV128()
	w := quad.SplatF32(4).AsV128()
	ScatterFields(blk, 0, x, y, z, w)
	ScatterFields(blk, 4, w, z, y, x)

	gx, gy, gz, gw := GatherFields(blk, 0)
	if gx != x || gy != y || gz != z || gw != w {
		t.Errorf("GatherFields(0) = %v %v %v %v", gx, gy, gz, gw)
	}

	// On disk the records stay interleaved: record 0 is {1, 2, 3, 4}.
	for i, want := range []float32{1, 2, 3, 4} {
		if blk[i] != want {
			t.Errorf("record 0 field %d = %v, want %v", i, blk[i], want)
		}
	}

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Writes persist across close and reopen.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	blk2 := s2.Block(0)
	gx, gy, gz, gw = GatherFields(blk2, 4)
	if gx != w || gy != z || gz != y || gw != x {
		t.Errorf("GatherFields(4) after reopen = %v %v %v %v", gx, gy, gz, gw)
	}
}

func TestGatherScatterPlainSlice(t *testing.T) {
	// The helpers work on any record-order slice, mmap'd or not.
	block := make([]float32, 16)
	for i := range block {
		block[i] = float32(i)
	}
	x, y, z, w := GatherFields(block, 0)
	if got := x.AsF32x4(); got != (quad.F32x4{0, 4, 8, 12}) {
		t.Errorf("field 0 = %v", got)
	}
	if got := w.AsF32x4(); got != (quad.F32x4{3, 7, 11, 15}) {
		t.Errorf("field 3 = %v", got)
	}

	out := make([]float32, 16)
	ScatterFields(out, 0, x, y, z, w)
	for i := range block {
		if out[i] != block[i] {
			t.Errorf("index %d: got %v, want %v", i, out[i], block[i])
		}
	}
}

func TestCreateRejectsBadGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.soa")
	if err := Create(path, 3, 1); err == nil {
		t.Error("Create accepted a record count that is not a multiple of 4")
	}
	if err := Create(path, 0, 1); err == nil {
		t.Error("Create accepted zero records per block")
	}
	if err := Create(path, 8, 0); err == nil {
		t.Error("Create accepted zero blocks")
	}
}

func TestOpenRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	noMagic := filepath.Join(dir, "nomagic.soa")
	if err := os.WriteFile(noMagic, make([]byte, 128), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(noMagic); err == nil {
		t.Error("Open accepted a file without the magic")
	}

	short := filepath.Join(dir, "short.soa")
	if err := os.WriteFile(short, []byte(Magic), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(short); err == nil {
		t.Error("Open accepted a file shorter than the header")
	}

	truncated := filepath.Join(dir, "trunc.soa")
	h := Header{
		Fields:          FieldsPerRecord,
		RecordsPerBlock: 8,
		NumBlocks:       1,
		DataOffset:      HeaderSize,
	}
	buf, err := EncodeHeader(&h)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(truncated, buf, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(truncated); err == nil {
		t.Error("Open accepted a file with missing block data")
	}
}
