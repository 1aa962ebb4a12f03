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

package internal

import (
	"fmt"
	"math"

	"github.com/mlnoga/variance/internal/variance"
	"gonum.org/v1/gonum/stat"
)

// Results of all variance algorithms on one sample
type VarianceStats struct {
	N     int     // Number of values
	Shift float32 // Shift used by the shifted algorithms

	Mean32f float32 // Mean, float32
	Mean64f float64 // Mean, float64

	Simple             float32 // Simple algorithm, population variance
	SimpleUnbiased     float32 // Simple algorithm, sample variance
	ShiftUnbiased      float32 // Shifted algorithm, sample variance
	ShiftUnbiasedSIMD4 float32 // Shifted algorithm with four lanes, sample variance
	TwoPass            float32 // Two-pass algorithm in float32
	TwoPassPartial64f  float32 // Two-pass algorithm on float32 data, accumulating in float64
	TwoPass64f         float64 // Two-pass algorithm in float64

	Reference float64 // Sample variance of the float64 data as computed by gonum
}

// Calculates all variance statistics for a sample given in 32-bit and 64-bit
// precision. Both slices should hold the same values.
func CalcVarianceStats(data32 []float32, data64 []float64, shift float32) (s *VarianceStats) {
	s = &VarianceStats{N: len(data32), Shift: shift}

	s.Mean32f = variance.Mean32f(data32)
	s.Mean64f = variance.Mean64f(data64)

	s.Simple = variance.Variance32fSimple(data32)
	s.SimpleUnbiased = variance.Variance32fSimpleUnbiased(data32)
	s.ShiftUnbiased = variance.Variance32fShiftUnbiased(data32, shift)
	s.ShiftUnbiasedSIMD4 = variance.Variance32fShiftUnbiasedSIMD4(data32, shift)
	s.TwoPass = variance.Variance32f2PassUnbiased(data32)
	s.TwoPassPartial64f = variance.Variance32f2PassUnbiasedPartial64f(data32)
	s.TwoPass64f = variance.Variance64f2PassUnbiased(data64)

	s.Reference = math.NaN()
	if len(data64) >= 2 {
		s.Reference = stat.Variance(data64, nil)
	}
	return s
}

// Absolute difference of the given sample variance from the reference
func (s *VarianceStats) AbsError(v float32) float64 {
	return math.Abs(float64(v) - s.Reference)
}

// Pretty print variance stats to string
func (s *VarianceStats) String() string {
	return fmt.Sprintf("N %d Shift %.8g Mean %.8g Mean64f %.10g\n"+
		"Simple %.8g SimpleUnbiased %.8g (err %.3g)\n"+
		"Shift %.8g (err %.3g) ShiftSIMD4 %.8g (err %.3g)\n"+
		"2Pass %.8g (err %.3g) 2PassPartial64f %.8g (err %.3g) 2Pass64f %.10g\n"+
		"Reference %.10g",
		s.N, s.Shift, s.Mean32f, s.Mean64f,
		s.Simple, s.SimpleUnbiased, s.AbsError(s.SimpleUnbiased),
		s.ShiftUnbiased, s.AbsError(s.ShiftUnbiased), s.ShiftUnbiasedSIMD4, s.AbsError(s.ShiftUnbiasedSIMD4),
		s.TwoPass, s.AbsError(s.TwoPass), s.TwoPassPartial64f, s.AbsError(s.TwoPassPartial64f), s.TwoPass64f,
		s.Reference)
}

// Pretty print variance stats to CSV header
func (s *VarianceStats) ToCSVHeader() string {
	return "N,Shift,Mean32f,Mean64f,Simple,SimpleUnbiased,ShiftUnbiased,ShiftUnbiasedSIMD4,TwoPass,TwoPassPartial64f,TwoPass64f,Reference"
}

// Pretty print variance stats to CSV line item
func (s *VarianceStats) ToCSVLine() string {
	return fmt.Sprintf("%d,%.8g,%.8g,%.10g,%.8g,%.8g,%.8g,%.8g,%.8g,%.8g,%.10g,%.10g",
		s.N, s.Shift, s.Mean32f, s.Mean64f,
		s.Simple, s.SimpleUnbiased, s.ShiftUnbiased, s.ShiftUnbiasedSIMD4,
		s.TwoPass, s.TwoPassPartial64f, s.TwoPass64f, s.Reference)
}
