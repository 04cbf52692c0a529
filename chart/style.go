// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"gonum.org/v1/plot/vg"
)

// LegendPlacement says where a chart's legend is drawn.
type LegendPlacement int

const (
	// LegendInside draws the legend in the upper right corner
	// of the data area.
	LegendInside LegendPlacement = iota

	// LegendOutside draws the legend in a column to the right of
	// the plot, aligned with its top.
	LegendOutside
)

// A Range is a closed interval of axis values.
type Range struct {
	Min, Max float64
}

// A Style controls the appearance of a rendered chart.
type Style struct {
	// Width and Height are the image size. The image is
	// Width/vg.Inch*DPI pixels wide.
	Width, Height vg.Length
	DPI           int

	Legend LegendPlacement

	// LegendTitle, if non-empty, is drawn above the legend entries.
	LegendTitle string

	// GridAlpha is the opacity of the grid lines, in [0, 1].
	// Zero disables the grid.
	GridAlpha float64

	// GridDashes is the dash pattern of grid lines. Nil is solid.
	GridDashes []vg.Length

	// XRange, if non-nil, fixes the X axis range instead of
	// fitting it to the data.
	XRange *Range

	// XTicks, if non-nil, are the only labeled X ticks.
	XTicks []float64

	TitleSize  vg.Length
	TitleBold  bool
	LabelSize  vg.Length
	LegendSize vg.Length

	LineWidth    vg.Length
	MarkerRadius vg.Length
}

// Comparison returns the style of a thread-scaling comparison chart:
// a 10x6 inch, 300 dpi image with the legend inside the plot and a
// fixed thread axis.
func Comparison() Style {
	return Style{
		Width:        10 * vg.Inch,
		Height:       6 * vg.Inch,
		DPI:          300,
		Legend:       LegendInside,
		GridAlpha:    0.3,
		XRange:       &Range{0, 65},
		XTicks:       []float64{1, 9, 18, 35, 60},
		TitleSize:    vg.Points(14),
		TitleBold:    true,
		LabelSize:    vg.Points(12),
		LegendSize:   vg.Points(10),
		LineWidth:    vg.Points(2),
		MarkerRadius: vg.Points(3),
	}
}

// Workload returns the style of a per-workload chart: a 12x7 inch,
// 100 dpi image with a titled legend to the right of the plot and a
// dashed grid.
func Workload() Style {
	return Style{
		Width:        12 * vg.Inch,
		Height:       7 * vg.Inch,
		DPI:          100,
		Legend:       LegendOutside,
		LegendTitle:  "System",
		GridAlpha:    0.7,
		GridDashes:   []vg.Length{vg.Points(4), vg.Points(2)},
		TitleSize:    vg.Points(12),
		LabelSize:    vg.Points(10),
		LegendSize:   vg.Points(10),
		LineWidth:    vg.Points(1.5),
		MarkerRadius: vg.Points(3),
	}
}
