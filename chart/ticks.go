// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"

	"golang.org/x/perf/benchunit"
	"gonum.org/v1/plot"
)

// scaledTicks labels the major ticks of an underlying Ticker with SI
// prefixes, using one scale for the whole axis ("500k", "1M", "1.5M").
type scaledTicks struct {
	plot.Ticker
}

func (t scaledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	var big float64
	for _, tk := range ticks {
		if tk.Label != "" {
			big = math.Max(big, math.Abs(tk.Value))
		}
	}
	s := benchunit.CommonScale([]float64{big}, benchunit.Decimal)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = scaleLabel(ticks[i].Value, s)
		}
	}
	return ticks
}

// scaleLabel formats v in the units of s with no trailing zeros.
func scaleLabel(v float64, s benchunit.Scaler) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v/s.Factor, 'g', 6, 64) + s.Prefix
}

// fixedTicks returns a Ticker that marks exactly vals.
func fixedTicks(vals []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(vals))
	for i, v := range vals {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ticks
}
