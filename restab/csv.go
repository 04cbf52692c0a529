// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package restab loads benchmark result tables from CSV files and
// combines them for charting.
//
// A result table is a [table.Table] whose numeric columns are
// []float64 and whose remaining columns are []string. Tables read by
// this package are tagged with the system that produced them and the
// workload they measure (see [Tag]), reconciled to canonical column
// names (see [Renames]), and concatenated into one combined table
// (see [Concat]) from which per-system [Series] are extracted.
package restab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A SyntaxError represents a syntax error on a particular line of a
// result file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// ReadFile reads the result table in the CSV file at path.
//
// If the file does not exist, the returned error satisfies
// errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, path)
}

// ReadCSV parses a comma-separated result table from r. The first
// record is the header and names the columns. name is used in error
// messages; it is purely diagnostic.
//
// Columns whose non-empty cells all parse as numbers become []float64
// columns, with NaN for empty cells. All other columns are []string.
func ReadCSV(r io.Reader, name string) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SyntaxError{name, 1, "missing header"}
	} else if err != nil {
		return nil, csvError(name, err)
	}
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return nil, &SyntaxError{name, 1, fmt.Sprintf("duplicate column %q", col)}
		}
		seen[col] = true
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, csvError(name, err)
	}

	return normalize(table.TableFromStrings(header, rows, true)), nil
}

func csvError(name string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &SyntaxError{name, perr.Line, perr.Err.Error()}
	}
	return fmt.Errorf("%s: %w", name, err)
}

// normalize converts the columns of t to the types used by result
// tables. TableFromStrings produces []int for integral columns and
// leaves columns with empty cells as strings; both are turned into
// []float64 here so every numeric column has one type.
func normalize(t *table.Table) *table.Table {
	b := table.NewBuilder(t)
	for _, col := range t.Columns() {
		switch data := t.Column(col).(type) {
		case []int:
			fs := make([]float64, len(data))
			for i, v := range data {
				fs[i] = float64(v)
			}
			b.Add(col, fs)
		case []string:
			if fs, ok := parseFloats(data); ok {
				b.Add(col, fs)
			}
		}
	}
	return b.Done()
}

// parseFloats parses ss as numbers, treating empty cells as NaN. It
// reports false if any non-empty cell is not a number.
func parseFloats(ss []string) ([]float64, bool) {
	fs := make([]float64, len(ss))
	for i, s := range ss {
		s = strings.TrimSpace(s)
		if s == "" {
			fs[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		fs[i] = v
	}
	return fs, true
}
