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

package samples

import (
	"fmt"

	"github.com/valyala/fastrand"
)

// Generates n values from the pattern 4, 7, 13, 16 plus the given offset,
// extended by v[i]=v[i/4]. With a large offset, this exposes the precision
// loss of the float32 algorithms.
func GenerateOffset(n int, offset float64) *Sample {
	values := make([]float64, n)
	for i, p := range []float64{4, 7, 13, 16} {
		if i < n {
			values[i] = p + offset
		}
	}
	for i := 4; i < n; i++ {
		values[i] = values[i>>2]
	}
	return NewSample(fmt.Sprintf("offset(n=%d, offset=%g)", n, offset), values)
}

// Generates n float32 values uniformly distributed in [center-width/2, center+width/2)
func GenerateUniform(n int, center, width float32) *Sample {
	rng := fastrand.RNG{}
	values := make([]float32, n)
	for i := range values {
		u := float32(rng.Uint32n(1<<24)) / float32(1<<24)
		values[i] = center + width*(u-0.5)
	}
	return NewSample32(fmt.Sprintf("uniform(n=%d, center=%g, width=%g)", n, center, width), values)
}
