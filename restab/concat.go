// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// A ColumnTypeError reports a column whose values have a different
// type than expected, such as a metric column that holds text.
type ColumnTypeError struct {
	Column string
	Want   reflect.Type
	Got    reflect.Type
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("column %q has type %s, want %s", e.Column, e.Got, e.Want)
}

// Concat returns the row-wise concatenation of tabs, in order.
//
// The columns of the result are the union of the columns of tabs, in
// the order each first appears. Rows from a table that lacks some
// column get NaN in that column if it is numeric and "" otherwise.
// Concat returns a *ColumnTypeError if a column has different types
// in different tables.
//
// Concatenating no tables, or only empty tables, returns an empty
// table.
func Concat(tabs ...*table.Table) (*table.Table, error) {
	var cols []string
	types := make(map[string]reflect.Type)
	var gs []table.Grouping
	for _, t := range tabs {
		if len(t.Columns()) == 0 {
			continue
		}
		for _, col := range t.Columns() {
			typ := table.ColType(t, col)
			if want, ok := types[col]; !ok {
				types[col] = typ
				cols = append(cols, col)
			} else if want != typ {
				return nil, &ColumnTypeError{col, want, typ}
			}
		}
		gs = append(gs, t)
	}
	if len(gs) == 0 {
		return new(table.Table), nil
	}

	// table.Concat requires identical column sets, so pad each
	// table out to the union.
	for i, g := range gs {
		t := g.(*table.Table)
		b := table.NewBuilder(t)
		padded := false
		for _, col := range cols {
			if !b.Has(col) {
				b.Add(col, fill(types[col], t.Len()))
				padded = true
			}
		}
		if padded {
			gs[i] = b.Done()
		}
	}
	return table.Flatten(table.Concat(gs...)), nil
}

// fill returns a slice of type typ and length n holding the missing
// value for that type.
func fill(typ reflect.Type, n int) table.Slice {
	switch typ {
	case reflect.TypeOf([]float64(nil)):
		fs := make([]float64, n)
		for i := range fs {
			fs[i] = math.NaN()
		}
		return fs
	}
	return reflect.MakeSlice(typ, n, n).Interface()
}
