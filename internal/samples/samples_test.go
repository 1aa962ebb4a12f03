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
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

const sampleText = "# classic dataset\n2, 4 4\n4,5\t5\n\n7 9 # tail\n"

var sampleValues = []float64{2, 4, 4, 4, 5, 5, 7, 9}

func TestReadText(t *testing.T) {
	s, err := ReadText(strings.NewReader(sampleText))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Data64, sampleValues) {
		t.Errorf("Data64=%v; want %v", s.Data64, sampleValues)
	}
	if len(s.Data32) != len(sampleValues) || s.Data32[7] != 9 {
		t.Errorf("Data32=%v", s.Data32)
	}
}

func TestReadTextLongLine(t *testing.T) {
	s, err := ReadText(strings.NewReader(strings.Repeat("1.5,", 20000) + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Data64) != 20000 || s.Data64[19999] != 1.5 {
		t.Errorf("read %d values; want 20000", len(s.Data64))
	}
}

func TestReadTextError(t *testing.T) {
	_, err := ReadText(strings.NewReader("1 2\n3 x\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err=%v; want parse error on line 2", err)
	}
}

func writeFile(t *testing.T, name string, compress func(io.Writer) io.WriteCloser, data []byte) string {
	fileName := filepath.Join(t.TempDir(), name)
	f, err := os.Create(fileName)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var w io.Writer = f
	if compress != nil {
		cw := compress(f)
		defer cw.Close()
		w = cw
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	return fileName
}

func TestReadFileCompressed(t *testing.T) {
	gz := func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) }
	xzw := func(w io.Writer) io.WriteCloser {
		x, err := xz.NewWriter(w)
		if err != nil {
			t.Fatal(err)
		}
		return x
	}
	for _, tc := range []struct {
		name     string
		compress func(io.Writer) io.WriteCloser
	}{
		{"plain.txt", nil},
		{"sample.txt.gz", gz},
		{"sample.txt.xz", xzw},
	} {
		fileName := writeFile(t, tc.name, tc.compress, []byte(sampleText))
		s, err := ReadFile(fileName)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if !reflect.DeepEqual(s.Data64, sampleValues) || s.Name != fileName {
			t.Errorf("%s: got %v named %s", tc.name, s.Data64, s.Name)
		}
	}
}

func TestReadFileBinary(t *testing.T) {
	var b32, b64 bytes.Buffer
	for _, v := range sampleValues {
		binary.Write(&b32, binary.LittleEndian, float32(v))
		binary.Write(&b64, binary.LittleEndian, v)
	}
	s, err := ReadFile(writeFile(t, "sample.f32", nil, b32.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Data64, sampleValues) {
		t.Errorf("f32: got %v", s.Data64)
	}
	s, err = ReadFile(writeFile(t, "sample.f64", nil, b64.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Data64, sampleValues) {
		t.Errorf("f64: got %v", s.Data64)
	}

	if _, err := ReadFloat64(bytes.NewReader(b64.Bytes()[:12])); err == nil {
		t.Errorf("expected error for truncated input")
	}
}

func TestGenerateOffset(t *testing.T) {
	s := GenerateOffset(16, 100)
	want := []float64{104, 107, 113, 116, 107, 107, 107, 107, 113, 113, 113, 113, 116, 116, 116, 116}
	if !reflect.DeepEqual(s.Data64, want) {
		t.Errorf("got %v; want %v", s.Data64, want)
	}
	if s.DefaultShift() != 104 {
		t.Errorf("DefaultShift=%f; want 104", s.DefaultShift())
	}
	if len(GenerateOffset(2, 0).Data32) != 2 {
		t.Errorf("short sample has wrong length")
	}
}

func TestGenerateUniform(t *testing.T) {
	s := GenerateUniform(1000, 10, 2)
	for i, v := range s.Data32 {
		if v < 9 || v > 11 || float64(v) != s.Data64[i] {
			t.Fatalf("value %d=%f outside [9,11] or copies differ", i, v)
		}
	}
	if math.Abs(float64(s.Data32[0])-10) > 1 || (&Sample{}).DefaultShift() != 0 {
		t.Errorf("unexpected shift defaults")
	}
}
