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

// Package host exposes the variance functions through the calling convention
// of a host that exchanges data via flat memory: the host resizes a staging
// buffer, writes samples at the returned address and then calls a function
// that reads the buffer as its input.
package host

import (
	"unsafe"

	"github.com/mlnoga/variance/internal/buffer"
	"github.com/mlnoga/variance/internal/variance"
)

// Staging buffers of one host. The zero value is ready to use.
// A session is not safe for concurrent use.
type Session struct {
	F32 buffer.Buffer[float32]
	F64 buffer.Buffer[float64]
}

// Returns a new, empty session
func NewSession() *Session {
	return &Session{}
}

// Address of the 32-bit staging buffer
func (s *Session) Ptr32f() unsafe.Pointer { return s.F32.Ptr() }

// Address of the 64-bit staging buffer
func (s *Session) Ptr64f() unsafe.Pointer { return s.F64.Ptr() }

// Resizes the 32-bit staging buffer. Returns its capacity, or buffer.ResizeFailed
func (s *Session) Resize32f(size int32) int32 { return s.F32.Resize(size) }

// Resizes the 64-bit staging buffer. Returns its capacity, or buffer.ResizeFailed
func (s *Session) Resize64f(size int32) int32 { return s.F64.Resize(size) }

// Population variance of the 32-bit buffer, simple algorithm
func (s *Session) Var32fSimple() float32 {
	return variance.Variance32fSimple(s.F32.Slice())
}

// Sample variance of the 32-bit buffer, simple algorithm
func (s *Session) Var32fSimpleUnbiased() float32 {
	return variance.Variance32fSimpleUnbiased(s.F32.Slice())
}

// Sample variance of the 32-bit buffer, two-pass algorithm in float32
func (s *Session) Var32f2PassUnbiased() float32 {
	return variance.Variance32f2PassUnbiased(s.F32.Slice())
}

// Sample variance of the 32-bit buffer, two-pass algorithm accumulating in float64
func (s *Session) Var32f2PassUnbiasedPartial64f() float32 {
	return variance.Variance32f2PassUnbiasedPartial64f(s.F32.Slice())
}

// Sample variance of the 64-bit buffer, two-pass algorithm
func (s *Session) Var64f2PassUnbiased() float64 {
	return variance.Variance64f2PassUnbiased(s.F64.Slice())
}

// Sample variance of the 32-bit buffer, shifted algorithm
func (s *Session) Var32fShiftUnbiased(shift float32) float32 {
	return variance.Variance32fShiftUnbiased(s.F32.Slice(), shift)
}

// Sample variance of the 32-bit buffer, shifted algorithm with four lanes
func (s *Session) Var32fShiftUnbiasedSIMD4(shift float32) float32 {
	return variance.Variance32fShiftUnbiasedSIMD4(s.F32.Slice(), shift)
}

// Mean of the 32-bit buffer
func (s *Session) Mean32f() float32 {
	return variance.Mean32f(s.F32.Slice())
}

// Mean of the 64-bit buffer
func (s *Session) Mean64f() float64 {
	return variance.Mean64f(s.F64.Slice())
}
