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

// Package samples loads and generates the sample sequences that variance
// algorithms run on.
package samples

// A sample sequence, held in 32-bit and in 64-bit precision
type Sample struct {
	Name   string
	Data32 []float32
	Data64 []float64
}

// Creates a sample from float64 values. The 32-bit copy is rounded to nearest.
func NewSample(name string, values []float64) *Sample {
	s := &Sample{Name: name, Data32: make([]float32, len(values)), Data64: values}
	for i, v := range values {
		s.Data32[i] = float32(v)
	}
	return s
}

// Creates a sample from float32 values. The 64-bit copy is exact.
func NewSample32(name string, values []float32) *Sample {
	s := &Sample{Name: name, Data32: values, Data64: make([]float64, len(values))}
	for i, v := range values {
		s.Data64[i] = float64(v)
	}
	return s
}

// Default shift for the shifted algorithms, the first value or zero
func (s *Sample) DefaultShift() float32 {
	if len(s.Data32) == 0 {
		return 0
	}
	return s.Data32[0]
}
