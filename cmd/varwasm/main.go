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

//go:build wasip1

// Command varwasm is a WebAssembly reactor module exporting the variance
// functions to a host. Build with
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o variance.wasm ./cmd/varwasm
//
// The host calls resize32f or resize64f, writes samples at the address
// returned by ptr32f or ptr64f, then calls one of the var* functions.
package main

import (
	"unsafe"

	"github.com/mlnoga/variance/internal/host"
)

// Staging buffers of this module instance
var session = host.NewSession()

//go:wasmexport ptr32f
func ptr32f() unsafe.Pointer { return session.Ptr32f() }

//go:wasmexport ptr64f
func ptr64f() unsafe.Pointer { return session.Ptr64f() }

//go:wasmexport resize32f
func resize32f(size int32) int32 { return session.Resize32f(size) }

//go:wasmexport resize64f
func resize64f(size int32) int32 { return session.Resize64f(size) }

//go:wasmexport var32f_simple
func var32fSimple() float32 { return session.Var32fSimple() }

//go:wasmexport var32f_simple_unbiased
func var32fSimpleUnbiased() float32 { return session.Var32fSimpleUnbiased() }

//go:wasmexport var32f_2pass_unbiased
func var32f2PassUnbiased() float32 { return session.Var32f2PassUnbiased() }

//go:wasmexport var32f_2pass_unbiased_partial64f
func var32f2PassUnbiasedPartial64f() float32 { return session.Var32f2PassUnbiasedPartial64f() }

//go:wasmexport var64f_2pass_unbiased
func var64f2PassUnbiased() float64 { return session.Var64f2PassUnbiased() }

//go:wasmexport var32f_shift_unbiased
func var32fShiftUnbiased(shift float32) float32 { return session.Var32fShiftUnbiased(shift) }

//go:wasmexport var32f_shift_unbiased_simd128
func var32fShiftUnbiasedSIMD128(shift float32) float32 { return session.Var32fShiftUnbiasedSIMD4(shift) }

//go:wasmexport mean32f
func mean32f() float32 { return session.Mean32f() }

//go:wasmexport mean64f
func mean64f() float64 { return session.Mean64f() }

func main() {}
