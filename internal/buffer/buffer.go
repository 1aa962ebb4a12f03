// Copyright (C) 2020 Markus L. Noga
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

// Package buffer provides resizable staging buffers of floats, through which
// a host writes sample data into process memory before invoking a variance
// function on it.
package buffer

import (
	"math"
	"unsafe"

	"github.com/pbnjay/memory"
)

// Returned by Resize when the requested size cannot be represented or allocated
const ResizeFailed = int32(-1)

// Floating point element types a buffer can hold
type Float interface {
	~float32 | ~float64
}

// A resizable buffer of floats, owned by the caller. The zero value is an
// empty buffer ready to use. A buffer must not be resized or written while a
// computation reads its slice.
type Buffer[T Float] struct {
	data []T
}

// Resizes the buffer to hold size elements, zeroing elements newly exposed
// at the end, and returns the resulting capacity. Returns ResizeFailed and
// leaves the buffer unchanged if size is negative or exceeds physical memory.
// Returns ResizeFailed after resizing if the capacity does not fit an int32.
func (b *Buffer[T]) Resize(size int32) int32 {
	if size < 0 {
		return ResizeFailed
	}
	var zero T
	if total := memory.TotalMemory(); total > 0 && uint64(size)*uint64(unsafe.Sizeof(zero)) > total {
		return ResizeFailed
	}

	n := int(size)
	old := len(b.data)
	switch {
	case n <= old:
		b.data = b.data[:n]
	case n <= cap(b.data):
		b.data = b.data[:n]
		for i := old; i < n; i++ {
			b.data[i] = 0
		}
	default:
		b.data = append(b.data, make([]T, n-old)...)
	}

	if cap(b.data) > math.MaxInt32 {
		return ResizeFailed
	}
	return int32(cap(b.data))
}

// Returns the address of the first element, or nil if the buffer has no storage.
// The address stays valid until the next Resize that grows the capacity.
func (b *Buffer[T]) Ptr() unsafe.Pointer {
	if cap(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b.data))
}

// Returns a view of the current contents. The view is borrowed: it aliases
// the buffer and is invalidated by Resize.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Number of elements
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Number of elements the buffer can hold without reallocating
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}
