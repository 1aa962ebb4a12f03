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
	"bufio"
	"fmt"
	"io"
	"os"
)

// Singleton log writer. Writes to stdout, and optionally mirrors into a file.
// Does not add prefixes, or force newlines.

var logOut io.Writer = os.Stdout // where log output goes, stdout plus the optional file
var logFile *bufio.Writer        // buffered writer for the optional file
var logFileOS *os.File           // the optional file itself

// Mirrors all further log output into the given file, truncating it.
// Closes a previously mirrored file.
func LogAlsoToFile(fileName string) error {
	if err := closeLogFile(); err != nil {
		return err
	}
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	logFileOS, logFile = f, bufio.NewWriter(f)
	logOut = io.MultiWriter(os.Stdout, logFile)
	return nil
}

// Returns the current log writer, for components which take an io.Writer
func LogWriter() io.Writer {
	return logOut
}

func LogPrint(args ...interface{}) (n int, err error) {
	return fmt.Fprint(logOut, args...)
}

func LogPrintln(args ...interface{}) (n int, err error) {
	return fmt.Fprintln(logOut, args...)
}

func LogPrintf(format string, args ...interface{}) (n int, err error) {
	return fmt.Fprintf(logOut, format, args...)
}

func LogFatal(args ...interface{}) {
	fmt.Fprintln(logOut, args...)
	closeLogFile()
	os.Exit(1)
}

func LogFatalf(format string, args ...interface{}) {
	fmt.Fprintf(logOut, format, args...)
	closeLogFile()
	os.Exit(1)
}

// Flushes buffered output to the mirrored file, if any
func LogSync() error {
	if logFile == nil {
		return nil
	}
	if err := logFile.Flush(); err != nil {
		return err
	}
	return logFileOS.Sync()
}

func closeLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Flush()
	if cerr := logFileOS.Close(); err == nil {
		err = cerr
	}
	logOut, logFile, logFileOS = os.Stdout, nil, nil
	return err
}
