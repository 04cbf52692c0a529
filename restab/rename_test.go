// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestLegacyColumns(t *testing.T) {
	if err := LegacyColumns().Validate(); err != nil {
		t.Fatal(err)
	}

	in := "Thread Count,Throughput (ops/s),Avg Latency (ns),Avg Read Lat (ns),Avg Write Lat (ns)\n1,10,20,30,40\n"
	tab, err := ReadCSV(strings.NewReader(in), "legacy.csv")
	if err != nil {
		t.Fatal(err)
	}
	got := LegacyColumns().Apply(tab)

	want := []string{ThreadCount, Throughput, AvgLatency, ReadLatency, WriteLatency}
	if diff := cmp.Diff(want, got.Columns()); diff != "" {
		t.Errorf("columns differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{20}, got.Column(AvgLatency)); diff != "" {
		t.Errorf("%s differs (-want +got):\n%s", AvgLatency, diff)
	}
	for _, legacy := range []string{"Avg Latency (ns)", "Avg Read Lat (ns)", "Avg Write Lat (ns)"} {
		if got.Column(legacy) != nil {
			t.Errorf("legacy column %q survived", legacy)
		}
	}
}

func TestApplyCanonicalWins(t *testing.T) {
	tab := mkTable(
		"Avg Latency (ns)", []float64{1},
		AvgLatency, []float64{2},
	)
	got := LegacyColumns().Apply(tab)
	if diff := cmp.Diff([]string{AvgLatency}, got.Columns()); diff != "" {
		t.Errorf("columns differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2}, got.Column(AvgLatency)); diff != "" {
		t.Errorf("%s differs (-want +got):\n%s", AvgLatency, diff)
	}
}

func TestApplyUnchanged(t *testing.T) {
	tab := mkTable(ThreadCount, []float64{1}, Throughput, []float64{2})
	if got := LegacyColumns().Apply(tab); got != tab {
		t.Errorf("Apply copied a table with no legacy columns")
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		r       Renames
		wantErr bool
	}{
		{Renames{}, false},
		{Renames{"a": "b"}, false},
		{Renames{"a": "b", "c": "b"}, false},
		{Renames{"a": "a"}, false},
		{Renames{"a": "b", "b": "b"}, false},
		{Renames{"a": "b", "b": "c"}, true},
		{Renames{"a": "b", "b": "a"}, true},
	} {
		err := test.r.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%v.Validate() = %v, want error %v", test.r, err, test.wantErr)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}
	rapid.Check(t, func(t *rapid.T) {
		// Build a valid rename map: no target is also a source.
		froms := rapid.SliceOfDistinct(rapid.SampledFrom(names), func(s string) string { return s }).Draw(t, "froms")
		isFrom := make(map[string]bool)
		for _, from := range froms {
			isFrom[from] = true
		}
		r := Renames{}
		for _, from := range froms {
			targets := []string{from}
			for _, name := range names {
				if !isFrom[name] {
					targets = append(targets, name)
				}
			}
			r[from] = rapid.SampledFrom(targets).Draw(t, "to")
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("generated invalid renames: %v", err)
		}

		cols := rapid.SliceOfNDistinct(rapid.SampledFrom(names), 1, -1, func(s string) string { return s }).Draw(t, "cols")
		var args []any
		for i, col := range cols {
			args = append(args, col, []float64{float64(i)})
		}
		tab := mkTable(args...)

		once := r.Apply(tab)
		twice := r.Apply(once)
		if diff := cmp.Diff(once.Columns(), twice.Columns()); diff != "" {
			t.Fatalf("renaming twice changed columns (-once +twice):\n%s", diff)
		}
		for _, col := range once.Columns() {
			if r.Canonical(col) != col {
				t.Fatalf("column %q remains after renaming with %v", col, r)
			}
		}
	})
}
