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
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/klauspost/cpuid"
	nl "github.com/mlnoga/variance/internal"
	"github.com/mlnoga/variance/internal/rest"
	"github.com/mlnoga/variance/internal/samples"
	"github.com/pbnjay/memory"
	"golang.org/x/xerrors"
)

const version = "0.1.0"

var totalMiBs = memory.TotalMemory() / 1024 / 1024

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var log = flag.String("log", "", "save log output to `file`")
var csv = flag.String("csv", "", "save statistics as CSV to `file`")

var gen = flag.String("gen", "offset", "synthetic sample if no files are given: offset=4,7,13,16 plus offset, repeated; uniform=uniform random around offset")
var n = flag.Int("n", 65536, "number of values in synthetic sample")
var offset = flag.Float64("offset", 16777200.0, "offset (center) of synthetic sample")
var width = flag.Float64("width", 2.0, "width of the uniform synthetic sample")
var shift = flag.Float64("shift", math.NaN(), "shift for the shifted algorithms, NaN: use first value of each sample")

var loops = flag.Int("loops", 16384, "number of repetitions per algorithm for bench")

var addr = flag.String("addr", ":8080", "listen address for serve")
var chroot = flag.String("chroot", "", "serve: change filesystem root to `dir` after startup (requires root)")
var setuid = flag.Int("setuid", -1, "serve: change user id after startup, -1=no change")

func main() {
	start := time.Now()
	flag.Usage = func() {
		fmt.Fprintf(os.Stdout, `Variance Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (stats|bench|serve|legal|version) (sample0.txt ... samplen.f32)

Commands:
  stats   Show variance of each sample with every algorithm
  bench   Time every algorithm on each sample
  serve   Serve the statistics over HTTP
  legal   Show license and attribution information
  version Show version information

Samples are text (.txt, numbers separated by whitespace or commas) or raw
little-endian floats (.f32, .f64), optionally compressed (.gz, .xz). Without
sample files, a synthetic sample is generated.

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *log != "" {
		if err := nl.LogAlsoToFile(*log); err != nil {
			nl.LogFatalf("Unable to open logfile '%s': %s\n", *log, err)
		}
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			nl.LogFatal("Could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			nl.LogFatal("Could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		return
	}

	var err error
	switch args[0] {
	case "stats":
		err = cmdStats(args[1:])
	case "bench":
		err = cmdBench(args[1:])
	case "serve":
		err = cmdServe()
	case "legal":
		nl.LogPrint(legal)
	case "version":
		nl.LogPrintf("Version %s\n", version)
	default:
		nl.LogPrintf("Unknown command '%s'\n\n", args[0])
		flag.Usage()
		return
	}
	if err != nil {
		nl.LogFatalf("Error: %s\n", err)
	}

	nl.LogPrintf("Done after %v\n", time.Since(start))
	nl.LogSync()
}

// Loads the given sample files, or generates a synthetic sample if there are none
func loadSamples(fileNames []string) ([]*samples.Sample, error) {
	if len(fileNames) == 0 {
		switch *gen {
		case "offset":
			return []*samples.Sample{samples.GenerateOffset(*n, *offset)}, nil
		case "uniform":
			return []*samples.Sample{samples.GenerateUniform(*n, float32(*offset), float32(*width))}, nil
		default:
			return nil, xerrors.Errorf("unknown generator '%s'", *gen)
		}
	}
	res := make([]*samples.Sample, 0, len(fileNames))
	for _, fileName := range fileNames {
		s, err := samples.ReadFile(fileName)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

// Shift for the given sample, from the flag or the first value
func shiftFor(s *samples.Sample) float32 {
	if math.IsNaN(*shift) {
		return s.DefaultShift()
	}
	return float32(*shift)
}

func cmdStats(fileNames []string) (err error) {
	ss, err := loadSamples(fileNames)
	if err != nil {
		return err
	}

	stats := make([]*nl.VarianceStats, len(ss))
	for i, s := range ss {
		stats[i] = nl.CalcVarianceStats(s.Data32, s.Data64, shiftFor(s))
		nl.LogPrintf("%d: %s\n%v\n", i, s.Name, stats[i])
	}

	if *csv == "" {
		return nil
	}
	f, err := os.Create(*csv)
	if err != nil {
		return xerrors.Errorf("creating CSV file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = xerrors.Errorf("closing CSV file: %w", cerr)
		}
	}()
	return writeStatsCSV(f, ss, stats)
}

// Writes one CSV line per sample, preceded by a header line
func writeStatsCSV(w io.Writer, ss []*samples.Sample, stats []*nl.VarianceStats) error {
	for i, s := range stats {
		if i == 0 {
			if _, err := fmt.Fprintf(w, "Name,%s\n", s.ToCSVHeader()); err != nil {
				return xerrors.Errorf("writing CSV header: %w", err)
			}
		}
		if _, err := fmt.Fprintf(w, "%q,%s\n", ss[i].Name, s.ToCSVLine()); err != nil {
			return xerrors.Errorf("writing CSV line %d: %w", i+1, err)
		}
	}
	return nil
}

func cmdBench(fileNames []string) error {
	ss, err := loadSamples(fileNames)
	if err != nil {
		return err
	}
	nl.LogPrintf("CPU %s, %d cores, SSE2 %v, %d MiB physical memory, GOMAXPROCS %d\n",
		cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.SSE2(), totalMiBs, runtime.GOMAXPROCS(0))
	for i, s := range ss {
		nl.LogPrintf("%d: %s\n", i, s.Name)
		timings := nl.BenchVariance(s.Data32, s.Data64, shiftFor(s), *loops)
		nl.PrintTimings(nl.LogWriter(), timings)
	}
	return nil
}

func cmdServe() error {
	nl.LogPrintf("Serving on %s\n", *addr)
	return rest.Serve(*addr, *chroot, *setuid)
}
