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

// Package variance computes mean and variance of in-memory float sequences
// with three algorithms of increasing numerical stability: simple (raw sums),
// shifted (sums of values centered on a constant) and two-pass (sums centered
// on the true mean).
//
// All functions are pure. They read the given slice and never retain or modify
// it. Results that are mathematically undefined for the given length are NaN.
package variance

import (
	"math"
)

// Computes the sum of squares and the sum of the given data in a single pass,
// accumulating in float32. Returns (0, 0) for empty data.
func ComputeSumPair(v []float32) (sumsq, sum float32) {
	for _, x := range v {
		sumsq += float32(x * x)
		sum += x
	}
	return sumsq, sum
}

// Calculates the population variance of the given data with the simple
// algorithm, (sum(x*x) - sum(x)*sum(x)/N) / N. NaN for empty data.
//
// Suffers from catastrophic cancellation when the mean is large relative
// to the spread of the data.
func Variance32fSimple(v []float32) float32 {
	if len(v) == 0 {
		return float32(math.NaN())
	}
	sumsq, sum := ComputeSumPair(v)
	sqsum := sum * sum
	r := 1 / float32(len(v))
	sub := sumsq - float32(sqsum*r)
	return sub * r
}

// Calculates the sample variance of the given data with the simple algorithm
// and Bessel's correction. NaN for fewer than two values.
//
// Evaluated as (sum(x*x)/N - sum(x)*sum(x)/(N*N)) * N/(N-1) in that order,
// which rounds differently from the shorter form dividing by N-1 directly.
func Variance32fSimpleUnbiased(v []float32) float32 {
	if len(v) < 2 {
		return float32(math.NaN())
	}
	sumsq, sum := ComputeSumPair(v)
	sqsum := sum * sum
	n := float32(len(v))
	r := 1 / n
	ratio := n / (n - 1)
	sub := float32(sumsq*r) - float32(float32(sqsum*r)*r)
	return sub * ratio
}
