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
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"golang.org/x/xerrors"
)

// Reads a sample from the file with the given name. Decompresses gzip if a
// .gz or .gzip suffix is present, and xz if a .xz suffix is present. The
// remaining suffix selects the format: .f32 and .f64 are raw little-endian
// floats, anything else is text.
func ReadFile(fileName string) (s *Sample, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	base := fileName
	switch strings.ToLower(filepath.Ext(base)) {
	case ".gz", ".gzip":
		if r, err = gzip.NewReader(r); err != nil {
			return nil, xerrors.Errorf("%s: %w", fileName, err)
		}
		base = strings.TrimSuffix(base, filepath.Ext(base))
	case ".xz":
		if r, err = xz.NewReader(r); err != nil {
			return nil, xerrors.Errorf("%s: %w", fileName, err)
		}
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	switch strings.ToLower(filepath.Ext(base)) {
	case ".f32":
		s, err = ReadFloat32(r)
	case ".f64":
		s, err = ReadFloat64(r)
	default:
		s, err = ReadText(r)
	}
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", fileName, err)
	}
	s.Name = fileName
	return s, nil
}

// Reads numbers from text. Numbers are separated by whitespace or commas,
// and a # starts a comment running to the end of the line. Lines may be
// arbitrarily long.
func ReadText(r io.Reader) (*Sample, error) {
	values := []float64{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == '\r'
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, xerrors.Errorf("line %d: %w", lineNo, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewSample("", values), nil
}

// Reads raw little-endian float32 values until the end of input
func ReadFloat32(r io.Reader) (*Sample, error) {
	b, err := readAllAligned(r, 4)
	if err != nil {
		return nil, err
	}
	values := make([]float32, len(b)>>2)
	for i := range values {
		values[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i<<2:]))
	}
	return NewSample32("", values), nil
}

// Reads raw little-endian float64 values until the end of input
func ReadFloat64(r io.Reader) (*Sample, error) {
	b, err := readAllAligned(r, 8)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(b)>>3)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i<<3:]))
	}
	return NewSample("", values), nil
}

func readAllAligned(r io.Reader, bytesPerValue int) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(b)%bytesPerValue != 0 {
		return nil, xerrors.Errorf("%d trailing bytes after last %d-byte value", len(b)%bytesPerValue, bytesPerValue)
	}
	return b, nil
}
