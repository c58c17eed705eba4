// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
var ErrOutOfMemory = errors.New("out of memory")

// Allocator provides the pixel memory of a canvas.
type Allocator interface {
	// Alloc returns a zeroed slice of length n.
	Alloc(n int) ([]byte, error)

	// Free returns memory obtained from Alloc.  The slice must not be
	// used afterwards.
	Free(buf []byte)
}

// HeapAllocator allocates from the Go heap.  This is the default.
type HeapAllocator struct{}

// Alloc implements the [Allocator] interface.
func (HeapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("allocate %d bytes: %w", n, ErrOutOfMemory)
	}
	return make([]byte, n), nil
}

// Free implements the [Allocator] interface.
// Memory is reclaimed by the garbage collector.
func (HeapAllocator) Free([]byte) {}

// ArenaAllocator hands out consecutive pieces of a fixed buffer.
// Freed memory is only reused after a call to Reset.
type ArenaAllocator struct {
	buf  []byte
	used int
}

// NewArenaAllocator returns an allocator which serves all requests from buf.
func NewArenaAllocator(buf []byte) *ArenaAllocator {
	return &ArenaAllocator{buf: buf}
}

// Alloc implements the [Allocator] interface.
func (a *ArenaAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 || n > len(a.buf)-a.used {
		return nil, fmt.Errorf("allocate %d bytes, %d available: %w",
			n, len(a.buf)-a.used, ErrOutOfMemory)
	}
	res := a.buf[a.used : a.used+n : a.used+n]
	clear(res)
	a.used += n
	return res, nil
}

// Free implements the [Allocator] interface.
func (a *ArenaAllocator) Free([]byte) {}

// Available returns the number of bytes which can still be allocated.
func (a *ArenaAllocator) Available() int {
	return len(a.buf) - a.used
}

// Reset makes the whole buffer available again.  All memory handed out
// before must no longer be in use.
func (a *ArenaAllocator) Reset() {
	a.used = 0
}
