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
	"io"
	"time"

	"github.com/mlnoga/variance/internal/variance"
)

// A named variance algorithm, run on a sample in 32-bit and 64-bit precision
type Algorithm struct {
	Name string
	Run  func(data32 []float32, data64 []float64, shift float32) float64
}

// All benchmarked algorithms, in report order
var Algorithms = []Algorithm{
	{"simple", func(d []float32, _ []float64, _ float32) float64 { return float64(variance.Variance32fSimpleUnbiased(d)) }},
	{"2pass", func(d []float32, _ []float64, _ float32) float64 { return float64(variance.Variance32f2PassUnbiased(d)) }},
	{"2pass64f", func(_ []float32, d []float64, _ float32) float64 { return variance.Variance64f2PassUnbiased(d) }},
	{"2pass, partial 64", func(d []float32, _ []float64, _ float32) float64 {
		return float64(variance.Variance32f2PassUnbiasedPartial64f(d))
	}},
	{"shift", func(d []float32, _ []float64, s float32) float64 { return float64(variance.Variance32fShiftUnbiased(d, s)) }},
	{"shift simd4", func(d []float32, _ []float64, s float32) float64 {
		return float64(variance.Variance32fShiftUnbiasedSIMD4(d, s))
	}},
}

// Elapsed time for running one algorithm repeatedly
type Timing struct {
	Name    string
	Loops   int
	Elapsed time.Duration
	Result  float64 // Result of the last run
}

// Runs each algorithm the given number of times on the sample and measures the elapsed time
func BenchVariance(data32 []float32, data64 []float64, shift float32, loops int) []Timing {
	timings := make([]Timing, len(Algorithms))
	for i, a := range Algorithms {
		var res float64
		start := time.Now()
		for l := 0; l < loops; l++ {
			res = a.Run(data32, data64, shift)
		}
		timings[i] = Timing{Name: a.Name, Loops: loops, Elapsed: time.Since(start), Result: res}
	}
	return timings
}

// Prints a table of timings
func PrintTimings(w io.Writer, timings []Timing) {
	fmt.Fprintf(w, "%-20s %10s %14s %16s\n", "algorithm", "loops", "elapsed", "result")
	for _, t := range timings {
		fmt.Fprintf(w, "%-20s %10d %14s %16.8g\n", t.Name, t.Loops, t.Elapsed.Round(time.Microsecond), t.Result)
	}
}
