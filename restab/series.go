// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// ErrNoColumn is returned when a table lacks a requested column.
var ErrNoColumn = errors.New("no such column")

// A Series is one plotted line: the (X, Y) points of a single source,
// sorted by X.
type Series struct {
	Name string
	X, Y []float64
}

var float64sType = reflect.TypeOf([]float64(nil))

// Distinct returns the distinct values of column col of t in the
// order they first appear. It returns nil if t has no column col.
func Distinct(t *table.Table, col string) []string {
	data := t.Column(col)
	if data == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	rv := reflect.ValueOf(data)
	for i := 0; i < rv.Len(); i++ {
		v := fmt.Sprint(rv.Index(i).Interface())
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Select returns the rows of t whose string column col equals val.
// If t has no column col, Select returns an empty table.
func Select(t *table.Table, col, val string) *table.Table {
	if t.Column(col) == nil {
		return new(table.Table)
	}
	return table.Flatten(table.FilterEq(t, col, val))
}

// Lines extracts one Series per distinct value of column by, plotting
// numeric column x against numeric column y.
//
// Rows where x or y is NaN are dropped. Rows of one series that share
// an x value are averaged. Series are returned in the order their
// by value first appears in t, except that values listed in order
// come first, in that order.
//
// Lines returns an error wrapping ErrNoColumn if t lacks any of the
// three columns, and a *ColumnTypeError if x or y is not numeric.
func Lines(t *table.Table, by, x, y string, order []string) ([]Series, error) {
	for _, col := range []string{by, x, y} {
		if t.Column(col) == nil {
			return nil, fmt.Errorf("%w %q", ErrNoColumn, col)
		}
	}
	for _, col := range []string{x, y} {
		if typ := table.ColType(t, col); typ != float64sType {
			return nil, &ColumnTypeError{col, float64sType, typ}
		}
	}

	// Narrow to the three columns so aggregation carries nothing
	// else along.
	var nb table.Builder
	nb.Add(by, t.Column(by))
	nb.Add(x, t.Column(x))
	nb.Add(y, t.Column(y))
	var g table.Grouping = nb.Done()

	g = table.Filter(g, func(xv, yv float64) bool {
		return !math.IsNaN(xv) && !math.IsNaN(yv)
	}, x, y)
	if len(g.Tables()) == 0 || g.Table(table.RootGroupID).Len() == 0 {
		return nil, nil
	}

	g = table.GroupBy(g, by)
	g = ggstat.Agg(x)(ggstat.AggMean(y)).F(g)
	g = table.SortBy(g, x)

	mean := "mean " + y
	var lines []Series
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		lines = append(lines, Series{
			Name: fmt.Sprint(gid.Label()),
			X:    t.MustColumn(x).([]float64),
			Y:    t.MustColumn(mean).([]float64),
		})
	}
	return reorder(lines, order), nil
}

// reorder moves the series named in order to the front, in that
// order. The remaining series keep their relative order.
func reorder(lines []Series, order []string) []Series {
	if len(order) == 0 {
		return lines
	}
	byName := make(map[string]Series, len(lines))
	for _, s := range lines {
		byName[s.Name] = s
	}
	out := make([]Series, 0, len(lines))
	used := make(map[string]bool)
	for _, name := range order {
		if s, ok := byName[name]; ok && !used[name] {
			out = append(out, s)
			used[name] = true
		}
	}
	for _, s := range lines {
		if !used[s.Name] {
			out = append(out, s)
		}
	}
	return out
}
