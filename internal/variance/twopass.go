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

package variance

import (
	"math"
)

// Floating point element and accumulator types
type float interface {
	~float32 | ~float64
}

// Calculates the arithmetic mean of the given data, accumulating in float32. NaN for empty data.
func Mean32f(v []float32) float32 {
	return mean[float32, float32](v)
}

// Calculates the arithmetic mean of the given data. NaN for empty data.
func Mean64f(v []float64) float64 {
	return mean[float64, float64](v)
}

// Calculates the sample variance of the given data with the two-pass
// algorithm, in float32 throughout. NaN for fewer than two values.
func Variance32f2PassUnbiased(v []float32) float32 {
	return variance2PassUnbiased[float32, float32](v)
}

// Calculates the sample variance of the given float32 data with the two-pass
// algorithm. Each value is widened to float64 before centering, mean and
// squared deviations are accumulated in float64, and only the result is
// narrowed back to float32. NaN for fewer than two values.
func Variance32f2PassUnbiasedPartial64f(v []float32) float32 {
	return float32(variance2PassUnbiased[float32, float64](v))
}

// Calculates the sample variance of the given data with the two-pass algorithm. NaN for fewer than two values.
func Variance64f2PassUnbiased(v []float64) float64 {
	return variance2PassUnbiased[float64, float64](v)
}

// Mean of elements of type T, widened to and accumulated in type A
func mean[T, A float](v []T) A {
	if len(v) == 0 {
		return A(math.NaN())
	}
	tot := A(0)
	for _, x := range v {
		tot += A(x)
	}
	r := 1 / A(len(v))
	return r * tot
}

// First pass computes the mean, second pass the sum of squared deviations
// from it, divided by N-1. Elements of type T are widened to A before
// centering.
func variance2PassUnbiased[T, A float](v []T) A {
	if len(v) < 2 {
		return A(math.NaN())
	}
	m := mean[T, A](v)
	sum := A(0)
	for _, x := range v {
		d := A(x) - m
		sum += A(d * d)
	}
	return sum / (A(len(v)) - 1)
}
