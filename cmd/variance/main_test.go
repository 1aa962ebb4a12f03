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

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	nl "github.com/mlnoga/variance/internal"
	"github.com/mlnoga/variance/internal/samples"
)

func testStats() ([]*samples.Sample, []*nl.VarianceStats) {
	ss := []*samples.Sample{
		samples.NewSample("a", []float64{2, 4, 4, 4, 5, 5, 7, 9}),
		samples.NewSample("b", []float64{1, 2, 3, 4}),
	}
	stats := make([]*nl.VarianceStats, len(ss))
	for i, s := range ss {
		stats[i] = nl.CalcVarianceStats(s.Data32, s.Data64, s.DefaultShift())
	}
	return ss, stats
}

func TestWriteStatsCSV(t *testing.T) {
	ss, stats := testStats()
	var buf bytes.Buffer
	if err := writeStatsCSV(&buf, ss, stats); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "Name,N,") || !strings.HasPrefix(lines[2], `"b",4,`) {
		t.Errorf("got CSV:\n%s", buf.String())
	}
}

// Accepts the given number of bytes, then fails every write
type failingWriter struct {
	left int
}

var errDiskFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.left {
		n := w.left
		w.left = 0
		return n, errDiskFull
	}
	w.left -= len(p)
	return len(p), nil
}

func TestWriteStatsCSVReportsWriteErrors(t *testing.T) {
	ss, stats := testStats()
	for _, left := range []int{0, 10, 200} {
		err := writeStatsCSV(&failingWriter{left: left}, ss, stats)
		if !errors.Is(err, errDiskFull) {
			t.Errorf("left=%d: err=%v; want %v", left, err, errDiskFull)
		}
	}
}
