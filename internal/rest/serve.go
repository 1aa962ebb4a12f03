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

// Package rest serves the variance statistics over HTTP as JSON.
package rest

import (
	"math"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	nl "github.com/mlnoga/variance/internal"
	"github.com/mlnoga/variance/internal/samples"
	"golang.org/x/xerrors"
)

// Upper bound on benchmark repetitions per request
const maxBenchLoops = 1 << 16

// Listens on the given address, e.g. ":8080", then sandboxes the process
// with the given chroot and setuid arguments and serves the API.
func Serve(addr string, chroot string, setuid int) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return xerrors.Errorf("listen on %s: %w", addr, err)
	}
	defer ln.Close()
	if err := MakeSandbox(chroot, setuid); err != nil {
		return err
	}
	return http.Serve(ln, NewRouter())
}

// Returns a router with all API routes installed
func NewRouter() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/variance", postVariance)
			v1.POST("/bench", postBench)
		}
	}
	return r
}

func getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

type postVarianceArgs struct {
	Values []float64 `json:"values"`
	Shift  *float32  `json:"shift"` // defaults to the first value
}

// JSON has no NaN, undefined results are sent as null
type varianceResult struct {
	N                  int      `json:"n"`
	Shift              *float64 `json:"shift"`
	Mean32f            *float64 `json:"mean32f"`
	Mean64f            *float64 `json:"mean64f"`
	Simple             *float64 `json:"simple"`
	SimpleUnbiased     *float64 `json:"simpleUnbiased"`
	ShiftUnbiased      *float64 `json:"shiftUnbiased"`
	ShiftUnbiasedSIMD4 *float64 `json:"shiftUnbiasedSIMD4"`
	TwoPass            *float64 `json:"twoPass"`
	TwoPassPartial64f  *float64 `json:"twoPassPartial64f"`
	TwoPass64f         *float64 `json:"twoPass64f"`
	Reference          *float64 `json:"reference"`
}

func nullable(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func newVarianceResult(s *nl.VarianceStats) *varianceResult {
	return &varianceResult{
		N:                  s.N,
		Shift:              nullable(float64(s.Shift)),
		Mean32f:            nullable(float64(s.Mean32f)),
		Mean64f:            nullable(s.Mean64f),
		Simple:             nullable(float64(s.Simple)),
		SimpleUnbiased:     nullable(float64(s.SimpleUnbiased)),
		ShiftUnbiased:      nullable(float64(s.ShiftUnbiased)),
		ShiftUnbiasedSIMD4: nullable(float64(s.ShiftUnbiasedSIMD4)),
		TwoPass:            nullable(float64(s.TwoPass)),
		TwoPassPartial64f:  nullable(float64(s.TwoPassPartial64f)),
		TwoPass64f:         nullable(s.TwoPass64f),
		Reference:          nullable(s.Reference),
	}
}

func sampleAndShift(values []float64, shift *float32) (*samples.Sample, float32) {
	sample := samples.NewSample("request", values)
	if shift != nil {
		return sample, *shift
	}
	return sample, sample.DefaultShift()
}

func postVariance(c *gin.Context) {
	var args postVarianceArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sample, shift := sampleAndShift(args.Values, args.Shift)
	stats := nl.CalcVarianceStats(sample.Data32, sample.Data64, shift)
	c.JSON(http.StatusOK, newVarianceResult(stats))
}

type postBenchArgs struct {
	Values []float64 `json:"values"`
	Shift  *float32  `json:"shift"`
	Loops  int       `json:"loops" binding:"min=1"`
}

type benchResult struct {
	Name      string   `json:"name"`
	Loops     int      `json:"loops"`
	ElapsedNs int64    `json:"elapsedNs"`
	Result    *float64 `json:"result"`
}

func postBench(c *gin.Context) {
	var args postBenchArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if args.Loops > maxBenchLoops {
		c.JSON(http.StatusBadRequest, gin.H{"error": "loops must not exceed 65536"})
		return
	}
	sample, shift := sampleAndShift(args.Values, args.Shift)
	timings := nl.BenchVariance(sample.Data32, sample.Data64, shift, args.Loops)
	res := make([]benchResult, len(timings))
	for i, t := range timings {
		res[i] = benchResult{t.Name, t.Loops, t.Elapsed.Nanoseconds(), nullable(t.Result)}
	}
	c.JSON(http.StatusOK, res)
}
