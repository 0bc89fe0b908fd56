// SPDX-License-Identifier: MIT
//
// File: mmap.go
// Role: file-backed flat storage via memory mapping.

package storage

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// Mmap is a file-backed Access: n elements of T mapped read-write from a
// flat file. T MUST NOT contain pointers, slices, maps, or strings — the
// mapping reinterprets raw file bytes as []T.
//
// The zero value is not usable; construct with OpenMmap. Close unmaps and
// closes the file; accessing the backend afterwards panics.
type Mmap[T any] struct {
	file *os.File
	raw  mmap.MMap
	data []T
}

// OpenMmap maps n elements of T at path. A missing file is created and
// sized to n elements of zero bytes; an existing file must be exactly
// n*sizeof(T) bytes, else ErrSizeMismatch.
// Returns ErrBadLength if n < 0, ErrZeroSizeElement for zero-byte T.
func OpenMmap[T any](path string, n int) (*Mmap[T], error) {
	itemSize := int(unsafe.Sizeof(*new(T)))
	if itemSize <= 0 {
		return nil, ErrZeroSizeElement
	}
	if n < 0 {
		return nil, ErrBadLength
	}
	want := int64(n) * int64(itemSize)

	var file *os.File
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.Size() != want {
			return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrSizeMismatch, info.Size(), want)
		}
		if file, err = os.OpenFile(path, os.O_RDWR, 0); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		if file, err = os.Create(path); err != nil {
			return nil, err
		}
		if err = file.Truncate(want); err != nil {
			file.Close()
			return nil, err
		}
	default:
		return nil, err
	}

	raw, err := mmap.Map(file, mmap.RDWR, 0)
	if err != nil {
		file.Close()
		return nil, err
	}
	m := &Mmap[T]{file: file, raw: raw}
	if n > 0 {
		m.data = unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
	}
	return m, nil
}

// At returns the element at linear offset i.
func (m *Mmap[T]) At(i int) T { return m.data[i] }

// SetAt stores v at linear offset i.
func (m *Mmap[T]) SetAt(i int, v T) { m.data[i] = v }

// Len returns the number of mapped elements.
func (m *Mmap[T]) Len() int { return len(m.data) }

// Flush synchronously writes dirty pages back to the file.
func (m *Mmap[T]) Flush() error { return m.raw.Flush() }

// Close unmaps the file and closes it. The backend must not be used after
// Close returns.
func (m *Mmap[T]) Close() error {
	m.data = nil
	if err := m.raw.Unmap(); err != nil {
		m.file.Close()
		return err
	}
	return m.file.Close()
}
