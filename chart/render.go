// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/benchplot/restab"
	"golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoData is returned when rendering a chart with no lines.
var ErrNoData = errors.New("no data to plot")

// A Chart is a line chart with one line per series.
type Chart struct {
	Title          string
	XLabel, YLabel string

	// Lines are drawn, and listed in the legend, in order.
	Lines []restab.Series
}

// legendMargin separates an outside legend from the plot and from
// the image edge.
const legendMargin = vg.Length(10)

// Plot builds the gonum plot of c in style st. The legend is attached
// to the plot only for LegendInside; see WritePNG.
func (c *Chart) Plot(st Style) (*plot.Plot, error) {
	if len(c.Lines) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.Title.Padding = vg.Points(6)
	if st.TitleSize > 0 {
		p.Title.TextStyle.Font.Size = st.TitleSize
	}
	if st.TitleBold {
		p.Title.TextStyle.Font.Weight = font.WeightBold
	}
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	if st.LabelSize > 0 {
		p.X.Label.TextStyle.Font.Size = st.LabelSize
		p.Y.Label.TextStyle.Font.Size = st.LabelSize
	}

	if st.GridAlpha > 0 {
		grid := plotter.NewGrid()
		clr := color.NRGBA{0xb0, 0xb0, 0xb0, uint8(st.GridAlpha*0xff + 0.5)}
		grid.Vertical.Color = clr
		grid.Vertical.Dashes = st.GridDashes
		grid.Horizontal.Color = clr
		grid.Horizontal.Dashes = st.GridDashes
		p.Add(grid)
	}

	for i, s := range c.Lines {
		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			xys[j].X, xys[j].Y = s.X[j], s.Y[j]
		}
		l, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		clr := plotutil.Color(i)
		l.Color = clr
		if st.LineWidth > 0 {
			l.Width = st.LineWidth
		}
		pts.Color = clr
		pts.Shape = plotutil.Shape(i)
		if st.MarkerRadius > 0 {
			pts.Radius = st.MarkerRadius
		}
		p.Add(l, pts)
		if st.Legend == LegendInside {
			p.Legend.Add(s.Name, l, pts)
		}
	}
	if st.Legend == LegendInside {
		p.Legend.Top = true
		p.Legend.XOffs = -vg.Points(6)
		p.Legend.YOffs = -vg.Points(6)
		if st.LegendSize > 0 {
			p.Legend.TextStyle.Font.Size = st.LegendSize
		}
	}

	// Fix the X range after adding the data, which widens it.
	if st.XRange != nil {
		p.X.Min, p.X.Max = st.XRange.Min, st.XRange.Max
	}
	if st.XTicks != nil {
		p.X.Tick.Marker = fixedTicks(st.XTicks)
	} else {
		p.X.Tick.Marker = scaledTicks{plot.DefaultTicks{}}
	}
	p.Y.Tick.Marker = scaledTicks{plot.DefaultTicks{}}
	return p, nil
}

// outsideLegend returns the legend drawn beside the plot for
// LegendOutside.
func (c *Chart) outsideLegend(st Style) plot.Legend {
	leg := plot.NewLegend()
	leg.Top, leg.Left = true, true
	if st.LegendSize > 0 {
		leg.TextStyle.Font.Size = st.LegendSize
	}
	if st.LegendTitle != "" {
		leg.Add(st.LegendTitle)
	}
	for i, s := range c.Lines {
		l :=&plotter.Line{LineStyle: draw.LineStyle{Color: plotutil.Color(i), Width: st.LineWidth}}
		if l.Width == 0 {
			l.Width = vg.Points(1)
		}
		pts := &plotter.Scatter{GlyphStyle: draw.GlyphStyle{Color: plotutil.Color(i), Shape: plotutil.Shape(i), Radius: st.MarkerRadius}}
		if pts.Radius == 0 {
			pts.Radius = vg.Points(3)
		}
		leg.Add(s.Name, l, pts)
	}
	return leg
}

// WritePNG renders c in style st and writes it to w as a PNG image.
func WritePNG(w io.Writer, c *Chart, st Style) error {
	p, err := c.Plot(st)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(st.Width, st.Height), vgimg.UseDPI(st.DPI), vgimg.UseBackgroundColor(color.White))
	dc := draw.New(img)
	if st.Legend == LegendOutside {
		leg := c.outsideLegend(st)
		r := leg.Rectangle(dc)
		lw := r.Max.X - r.Min.X + 2*legendMargin

		p.Draw(draw.Crop(dc, 0, -lw, 0, 0))

		// Align the legend with the top of the data area.
		var top vg.Length
		if p.Title.Text != "" {
			top = p.Title.TextStyle.Rectangle(p.Title.Text).Size().Y + p.Title.Padding
		}
		lc := draw.Crop(dc, dc.Max.X-dc.Min.X-lw+legendMargin, -legendMargin, 0, -top)
		leg.Draw(lc)
	} else {
		p.Draw(dc)
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return err
	}
	return nil
}

// Save renders c in style st to a PNG file at path, creating any
// missing parent directories. If c has no lines, Save returns
// ErrNoData and creates nothing.
func Save(path string, c *Chart, st Style) error {
	var buf bytes.Buffer
	if err := WritePNG(&buf, c, st); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}
