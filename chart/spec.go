// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders benchmark result series as PNG line charts.
package chart

import "golang.org/x/benchplot/restab"

// A Spec describes one kind of chart: which metric to plot against
// which column, and how to label and name the result.
type Spec struct {
	// Metric is the column plotted on the Y axis.
	Metric string

	// XCol is the column plotted on the X axis.
	XCol string

	XLabel, YLabel string

	// Title is the part of the chart title that names the chart
	// kind. Callers typically prefix it with the workload.
	Title string

	// File is the base name of the chart image, without extension.
	File string
}

// ThreadThroughput returns the spec for a throughput-versus-threads
// comparison chart.
func ThreadThroughput() Spec {
	return Spec{
		Metric: restab.Throughput,
		XCol:   restab.ThreadCount,
		XLabel: "Number of Threads",
		YLabel: restab.Throughput,
		Title:  "Throughput Comparison",
		File:   "throughput",
	}
}

// YCSB returns the five charts drawn for each YCSB workload, in the
// order they are rendered.
func YCSB() []Spec {
	return []Spec{
		{
			Metric: restab.Throughput,
			XCol:   restab.ThreadCount,
			Title:  "Throughput vs. Thread Count",
			File:   "throughput_vs_threads",
		},
		{
			Metric: restab.AvgLatency,
			XCol:   restab.ThreadCount,
			Title:  "Average Latency vs. Thread Count",
			File:   "avg_latency_vs_threads",
		},
		{
			Metric: restab.ReadLatency,
			XCol:   restab.ThreadCount,
			Title:  "Average Read Latency vs. Thread Count",
			File:   "read_latency_vs_threads",
		},
		{
			Metric: restab.WriteLatency,
			XCol:   restab.ThreadCount,
			Title:  "Average Write Latency vs. Thread Count",
			File:   "write_latency_vs_threads",
		},
		{
			Metric: restab.AvgLatency,
			XCol:   restab.Throughput,
			Title:  "Latency vs. Throughput",
			File:   "latency_vs_throughput",
		},
	}
}

// Labels returns the axis labels of s. An empty label defaults to
// the name of the plotted column.
func (s Spec) Labels() (x, y string) {
	x, y = s.XLabel, s.YLabel
	if x == "" {
		x = s.XCol
	}
	if y == "" {
		y = s.Metric
	}
	return x, y
}
