// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func TestConcat(t *testing.T) {
	nan := math.NaN()
	a := Tag(mkTable(
		ThreadCount, []float64{1, 2},
		"Avg Latency (ns)", []float64{10, 20},
	), "fbtree", "a")
	b := Tag(mkTable(
		ThreadCount, []float64{4},
		AvgLatency, []float64{5},
		"Note", []string{"warm"},
	), "artolc", "a")

	got, err := Concat(a, new(table.Table), b)
	if err != nil {
		t.Fatal(err)
	}

	wantCols := []string{ThreadCount, "Avg Latency (ns)", SourceCol, WorkloadCol, AvgLatency, "Note"}
	if diff := cmp.Diff(wantCols, got.Columns()); diff != "" {
		t.Errorf("columns differ (-want +got):\n%s", diff)
	}
	if got.Len() != 3 {
		t.Errorf("got %d rows, want 3", got.Len())
	}
	for col, want := range map[string]any{
		ThreadCount:        []float64{1, 2, 4},
		"Avg Latency (ns)": []float64{10, 20, nan},
		AvgLatency:         []float64{nan, nan, 5},
		"Note":             []string{"", "", "warm"},
		SourceCol:          []string{"fbtree", "fbtree", "artolc"},
		WorkloadCol:        []string{"a", "a", "a"},
	} {
		if diff := cmp.Diff(want, got.Column(col), cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("column %q differs (-want +got):\n%s", col, diff)
		}
	}
}

func TestConcatEmpty(t *testing.T) {
	for _, tabs := range [][]*table.Table{nil, {new(table.Table), new(table.Table)}} {
		got, err := Concat(tabs...)
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Columns()) != 0 || got.Len() != 0 {
			t.Errorf("Concat(%d empty tables) has columns %q and %d rows", len(tabs), got.Columns(), got.Len())
		}
	}
}

func TestConcatTypeMismatch(t *testing.T) {
	a := mkTable(Throughput, []float64{1})
	b := mkTable(Throughput, []string{"fast"})
	_, err := Concat(a, b)
	var terr *ColumnTypeError
	if !errors.As(err, &terr) {
		t.Fatalf("got error %v, want *ColumnTypeError", err)
	}
	if terr.Column != Throughput {
		t.Errorf("error names column %q, want %q", terr.Column, Throughput)
	}
}

func TestConcatRows(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 5).Draw(t, "tables")
		var tabs []*table.Table
		var wantRows []float64
		next := 0.0
		for i := 0; i < n; i++ {
			cols := rapid.SliceOfNDistinct(rapid.SampledFrom(names), 1, -1, func(s string) string { return s }).Draw(t, "cols")
			rows := rapid.IntRange(0, 4).Draw(t, "rows")
			// The "row" column numbers every row so the result's
			// order can be checked.
			seq := make([]float64, rows)
			for j := range seq {
				seq[j] = next
				next++
			}
			wantRows = append(wantRows, seq...)
			args := []any{"row", seq}
			for _, col := range cols {
				args = append(args, col, make([]float64, rows))
			}
			tabs = append(tabs, mkTable(args...))
		}

		got, err := Concat(tabs...)
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != len(wantRows) {
			t.Fatalf("got %d rows, want %d", got.Len(), len(wantRows))
		}
		if len(wantRows) == 0 {
			return
		}
		if diff := cmp.Diff(wantRows, got.Column("row")); diff != "" {
			t.Fatalf("rows out of order (-want +got):\n%s", diff)
		}
	})
}
