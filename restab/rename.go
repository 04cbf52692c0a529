// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
)

// Canonical metric column names.
const (
	ThreadCount  = "Thread Count"
	Throughput   = "Throughput (ops/s)"
	AvgLatency   = "Avg Latency (ns/op)"
	ReadLatency  = "Avg Read Latency (ns/op)"
	WriteLatency = "Avg Write Latency (ns/op)"
)

// Renames maps legacy or alternate column names to canonical column
// names, so that the same metric reported by different benchmark
// versions lines up under one name.
type Renames map[string]string

// LegacyColumns returns the renames for the column names written by
// older versions of the benchmarks.
func LegacyColumns() Renames {
	return Renames{
		"Avg Latency (ns)":   AvgLatency,
		"Avg Read Lat (ns)":  ReadLatency,
		"Avg Write Lat (ns)": WriteLatency,
	}
}

// Validate reports an error if some canonical name in r is itself
// renamed by r. Apply is idempotent only for valid Renames.
func (r Renames) Validate() error {
	froms := make([]string, 0, len(r))
	for from := range r {
		froms = append(froms, from)
	}
	sort.Strings(froms)
	for _, from := range froms {
		to := r[from]
		if to == from {
			continue
		}
		if next, ok := r[to]; ok && next != to {
			return fmt.Errorf("rename %q to %q: %q is itself renamed to %q", from, to, to, next)
		}
	}
	return nil
}

// Canonical returns the canonical name of column name.
func (r Renames) Canonical(name string) string {
	if to, ok := r[name]; ok {
		return to
	}
	return name
}

// Apply returns t with every column renamed to its canonical name.
// Renamed columns keep their position. If t already has a column
// with the canonical name, that column is kept and the legacy column
// is dropped.
func (r Renames) Apply(t *table.Table) *table.Table {
	have := make(map[string]bool, len(t.Columns()))
	for _, col := range t.Columns() {
		have[col] = true
	}

	var g table.Grouping = t
	changed := false
	for _, col := range t.Columns() {
		to := r.Canonical(col)
		if to == col {
			continue
		}
		if have[to] {
			g = table.Remove(g, col)
		} else {
			g = table.Rename(g, col, to)
			have[to] = true
		}
		changed = true
	}
	if !changed {
		return t
	}
	return table.Flatten(g)
}
