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

// Variance is invariant under shifting all values by a constant C:
//
//	sum((x-C)^2) - sum(x-C)^2/N  ==  sum(x^2) - sum(x)^2/N
//
// so the shifted variants compute the simple formula on x-C. Any finite C
// gives the same result in exact arithmetic. A C close to the mean keeps the
// shifted sums small and avoids most of the cancellation of the simple method.

// Calculates the sample variance of the given data after shifting all values
// by the given constant. NaN for fewer than two values.
func Variance32fShiftUnbiased(v []float32, shift float32) float32 {
	sumsq, sum := shiftedSumPair(v, shift)
	return combineShifted(sumsq, sum, len(v))
}

// Calculates the sample variance of the given data after shifting all values
// by the given constant. Accumulates four lanes in parallel with vector
// instructions where the CPU supports them, then sums the lanes.
//
// Agrees with Variance32fShiftUnbiased up to rounding differences caused by
// the lane order. Values past the last full group of four are added by a
// scalar tail pass.
func Variance32fShiftUnbiasedSIMD4(v []float32, shift float32) float32 {
	body := len(v) &^ 3
	sq, s := shiftLanes(v[:body], shift)
	sumsq := ((sq[0] + sq[1]) + sq[2]) + sq[3]
	sum := ((s[0] + s[1]) + s[2]) + s[3]

	tailSq, tail := shiftedSumPair(v[body:], shift)
	return combineShifted(sumsq+tailSq, sum+tail, len(v))
}

// Accumulates sum((x-shift)^2) and sum(x-shift) in a single pass
func shiftedSumPair(v []float32, shift float32) (sumsq, sum float32) {
	for _, x := range v {
		d := x - shift
		sumsq += float32(d * d)
		sum += d
	}
	return sumsq, sum
}

// Applies (sumsq - sum*sum/N) / (N-1), or NaN for n<2
func combineShifted(sumsq, sum float32, n int) float32 {
	if n < 2 {
		return float32(math.NaN())
	}
	r := 1 / float32(n)
	r2 := 1 / (float32(n) - 1)
	sub := sumsq - float32(float32(r*sum)*sum)
	return sub * r2
}

// Accumulates the shifted sums of squares and sums in four lanes, with lane j
// covering elements j, j+4, j+8 and so on. Length of data must be a multiple
// of four. Pure go implementation
func shiftLanesPureGo(data []float32, shift float32) (sq, s [4]float32) {
	for i := 0; i+3 < len(data); i += 4 {
		for j := 0; j < 4; j++ {
			d := data[i+j] - shift
			sq[j] += float32(d * d)
			s[j] += d
		}
	}
	return sq, s
}
