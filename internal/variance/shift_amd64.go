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

//go:build amd64
// +build amd64

package variance

import (
	"github.com/klauspost/cpuid"
)

// Accumulates the shifted sums of squares and sums in four lanes.
// Length of data must be a multiple of four.
func shiftLanes(data []float32, shift float32) (sq, s [4]float32) {
	if cpuid.CPU.SSE2() {
		shiftLanesSSE(data, shift, &sq, &s)
		return sq, s
	}
	return shiftLanesPureGo(data, shift)
}

// Accumulates the shifted sums of squares and sums in four lanes. SSE implementation
//
//go:noescape
func shiftLanesSSE(data []float32, shift float32, sq, s *[4]float32)
