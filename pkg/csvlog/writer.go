// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package csvlog persists measurement records to an append-only CSV
// log file. Appending is the only mutation: the header is written once
// when the file is created and prior rows are never rewritten.
//
// The row separator is comma-plus-space (", "), matching the legacy
// log format consumers of this tool already parse. encoding/csv only
// supports single-rune separators, so rows are joined directly.
package csvlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NVIDIA/speedlog/pkg/errors"
	"github.com/NVIDIA/speedlog/pkg/report"
)

// separator joins fields within a row.
const separator = ", "

// FileName derives the log file name from the wall-clock start time of
// the run: Ookla_<M>.<D>.<YYYY>_<HHMM>.csv (month and day unpadded,
// 24-hour zero-padded time).
func FileName(start time.Time) string {
	return fmt.Sprintf("Ookla_%d.%d.%d_%02d%02d.csv",
		int(start.Month()), start.Day(), start.Year(),
		start.Hour(), start.Minute())
}

// HeaderRow returns the fixed header row.
func HeaderRow() string {
	return strings.Join(report.Header, separator)
}

// Writer appends measurement rows to a single CSV file whose path is
// fixed for the process lifetime.
type Writer struct {
	path string
	file *os.File
}

// New opens (creating if absent) the log file for the run that started
// at the given time, inside dir. The header row is written exactly once,
// when the file is first created.
func New(dir string, start time.Time) (*Writer, error) {
	path := filepath.Join(dir, FileName(start))

	_, statErr := os.Stat(path)
	existed := statErr == nil

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLogWrite,
			fmt.Sprintf("failed to open log file %s", path), err)
	}

	w := &Writer{path: path, file: f}

	if !existed {
		if _, err := fmt.Fprintln(f, HeaderRow()); err != nil {
			f.Close()
			return nil, errors.Wrap(errors.ErrCodeLogWrite,
				fmt.Sprintf("failed to write header to %s", path), err)
		}
	}

	return w, nil
}

// Path returns the log file path.
func (w *Writer) Path() string {
	return w.path
}

// Append writes one record as a single row. Failures propagate to the
// caller: a monitor that silently stops logging is worse than one that
// stops running.
func (w *Writer) Append(rec *report.Record) error {
	row := strings.Join(rec.Fields(), separator)
	if _, err := fmt.Fprintln(w.file, row); err != nil {
		return errors.Wrap(errors.ErrCodeLogWrite,
			fmt.Sprintf("failed to append to %s", w.path), err)
	}
	return nil
}

// Close releases the underlying file handle.
func (w *Writer) Close() error {
	return w.file.Close()
}
