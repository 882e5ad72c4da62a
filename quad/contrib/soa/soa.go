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

// Package soa persists blocks of interleaved 4-float records and exposes
// them as mmap'd []float32 views, so the transposed load/store family can
// move whole records between record order and per-field registers without
// copying the file through the heap.
package soa

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"

	"github.com/quadsim/go-quad/quad"
)

const (
	// HeaderSize is the fixed header size. It is a multiple of 16, so
	// block offsets inherit the page alignment of the mapping.
	HeaderSize = 64

	// Magic identifies a valid field store file.
	Magic = "QSOA"

	// FormatVersion is the current file format version.
	FormatVersion uint16 = 1

	// FieldsPerRecord is fixed: one record is one 16-byte x/y/z/w group.
	FieldsPerRecord = 4
)

// Header holds the persisted store metadata.
type Header struct {
	Magic           [4]byte
	Version         uint16
	Fields          uint16
	RecordsPerBlock uint32
	NumBlocks       uint32
	DataOffset      uint64
	Reserved        [40]byte // pad to 64 bytes
}

// EncodeHeader writes the header to a byte slice, padded to HeaderSize.
func EncodeHeader(h *Header) ([]byte, error) {
	if h == nil {
		return nil, errors.New("header is nil")
	}
	copy(h.Magic[:], Magic)
	h.Version = FormatVersion
	var w bytes.Buffer
	if err := binary.Write(&w, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	b := w.Bytes()
	if len(b) < HeaderSize {
		padded := make([]byte, HeaderSize)
		copy(padded, b)
		return padded, nil
	}
	return b, nil
}

// DecodeHeader reads the header from src. Returns error if magic/version invalid.
func DecodeHeader(src []byte) (*Header, error) {
	if len(src) < HeaderSize {
		return nil, errors.New("header too short")
	}
	var h Header
	r := bytes.NewReader(src[:HeaderSize])
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if string(h.Magic[:]) != Magic {
		return nil, errors.New("invalid magic")
	}
	if h.Version != FormatVersion {
		return nil, errors.New("unsupported format version")
	}
	if h.Fields != FieldsPerRecord {
		return nil, fmt.Errorf("unsupported field count %d", h.Fields)
	}
	return &h, nil
}

// Create writes a new store file holding numBlocks zeroed blocks of
// recordsPerBlock records each. recordsPerBlock must be a positive
// multiple of 4 so every block transposes in whole record groups.
func Create(path string, recordsPerBlock, numBlocks int) error {
	if recordsPerBlock <= 0 || recordsPerBlock%4 != 0 {
		return errors.New("records per block must be a positive multiple of 4")
	}
	if numBlocks <= 0 {
		return errors.New("block count must be positive")
	}

	h := Header{
		Fields:          FieldsPerRecord,
		RecordsPerBlock: uint32(recordsPerBlock),
		NumBlocks:       uint32(numBlocks),
		DataOffset:      HeaderSize,
	}
	buf, err := EncodeHeader(&h)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	block := make([]byte, recordsPerBlock*FieldsPerRecord*4)
	for i := 0; i < numBlocks; i++ {
		if _, err := f.Write(block); err != nil {
			f.Close()
			return fmt.Errorf("write block %d: %w", i, err)
		}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Store is an mmap-backed field store open for reading and writing.
type Store struct {
	f    *os.File
	data mmap.MMap
	hdr  Header
}

// Open maps an existing store file read-write.
func Open(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	h, err := DecodeHeader(m)
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, err
	}
	need := int64(h.DataOffset) + int64(h.NumBlocks)*int64(h.RecordsPerBlock)*FieldsPerRecord*4
	if int64(len(m)) < need {
		m.Unmap()
		f.Close()
		return nil, fmt.Errorf("file truncated: %d bytes, need %d", len(m), need)
	}
	return &Store{f: f, data: m, hdr: *h}, nil
}

// NumBlocks returns the number of blocks in the store.
func (s *Store) NumBlocks() int {
	return int(s.hdr.NumBlocks)
}

// RecordsPerBlock returns the number of 4-float records per block.
func (s *Store) RecordsPerBlock() int {
	return int(s.hdr.RecordsPerBlock)
}

// Block returns a []float32 view of block b, in record order. The slice
// is valid until Close. Writes go straight to the mapping.
func (s *Store) Block(b int) []float32 {
	if s.data == nil || b < 0 || b >= int(s.hdr.NumBlocks) {
		return nil
	}
	n := int(s.hdr.RecordsPerBlock) * FieldsPerRecord
	off := int64(s.hdr.DataOffset) + int64(b)*int64(n)*4
	ptr := unsafe.Pointer(&s.data[off])
	return unsafe.Slice((*float32)(ptr), n)
}

// Flush writes the mapping back to the file.
func (s *Store) Flush() error {
	if s.data == nil {
		return nil
	}
	return s.data.Flush()
}

// Close unmaps the file and closes it.
func (s *Store) Close() error {
	if s.data != nil {
		if err := s.data.Unmap(); err != nil {
			return err
		}
		s.data = nil
	}
	if s.f != nil {
		err := s.f.Close()
		s.f = nil
		return err
	}
	return nil
}

// GatherFields transposes the record group starting at record k of block
// into per-field registers: lane p of x holds field 0 of record k+p, and
// so on through w. k must be a multiple of 4.
func GatherFields(block []float32, k int) (x, y, z, w quad.V128) {
	r := block[k*FieldsPerRecord:]
	return quad.Load4x4Tr(r[0:4], r[4:8], r[8:12], r[12:16])
}

// ScatterFields writes per-field registers back to the record group
// starting at record k of block. Inverse of GatherFields.
func ScatterFields(block []float32, k int, x, y, z, w quad.V128) {
	r := block[k*FieldsPerRecord:]
	quad.Store4x4Tr(x, y, z, w, r[0:4], r[4:8], r[8:12], r[12:16])
}
