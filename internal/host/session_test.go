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

package host

import (
	"math"
	"testing"
	"unsafe"

	"gotest.tools/assert"
)

// Writes values through the raw staging address, the way a host does
func stage32f(s *Session, values []float32) {
	s.Resize32f(int32(len(values)))
	view := unsafe.Slice((*float32)(s.Ptr32f()), len(values))
	copy(view, values)
}

func stage64f(s *Session, values []float64) {
	s.Resize64f(int32(len(values)))
	view := unsafe.Slice((*float64)(s.Ptr64f()), len(values))
	copy(view, values)
}

func TestSessionReadsStagedData(t *testing.T) {
	s := NewSession()
	stage32f(s, []float32{2, 4, 4, 4, 5, 5, 7, 9})
	stage64f(s, []float64{2, 4, 4, 4, 5, 5, 7, 9})

	want := 32.0 / 7.0
	near := func(got float64) bool { return math.Abs(got-want) < 1e-5 }

	assert.Equal(t, s.Var32fSimple(), float32(4))
	assert.Assert(t, near(float64(s.Var32fSimpleUnbiased())))
	assert.Assert(t, near(float64(s.Var32f2PassUnbiased())))
	assert.Assert(t, near(float64(s.Var32f2PassUnbiasedPartial64f())))
	assert.Assert(t, near(s.Var64f2PassUnbiased()))
	assert.Assert(t, near(float64(s.Var32fShiftUnbiased(2))))
	assert.Assert(t, near(float64(s.Var32fShiftUnbiasedSIMD4(2))))
	assert.Equal(t, s.Mean32f(), float32(5))
	assert.Equal(t, s.Mean64f(), float64(5))
}

func TestSessionEmpty(t *testing.T) {
	s := NewSession()
	assert.Assert(t, s.Ptr32f() == nil)
	assert.Assert(t, math.IsNaN(float64(s.Var32fSimple())))
	assert.Assert(t, math.IsNaN(s.Var64f2PassUnbiased()))
	assert.Assert(t, math.IsNaN(s.Mean64f()))
}

func TestSessionBuffersAreIndependent(t *testing.T) {
	a, b := NewSession(), NewSession()
	stage32f(a, []float32{1, 2, 3, 4})
	stage32f(b, []float32{10, 20})
	assert.Equal(t, a.Mean32f(), float32(2.5))
	assert.Equal(t, b.Mean32f(), float32(15))
}
