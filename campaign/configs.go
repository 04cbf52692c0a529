// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package campaign

import (
	"strings"

	"golang.org/x/benchplot/chart"
	"golang.org/x/benchplot/restab"
)

// ART returns the thread-scaling campaign comparing ART variants.
// Each variant directory holds one CSV per workload; each workload
// gets one throughput chart with a line per variant.
func ART() *Campaign {
	return &Campaign{
		Name: "ART",
		Sources: []string{
			"ART_LIMITED_Nodes_SCR",
			"ART_LIMITED_Version_num",
			"ART_NO_SCR",
		},
		Workloads: []string{"a", "b", "c"},
		Path: func(source, workload string) string {
			return source + "/" + workload + ".csv"
		},
		Renames:       restab.LegacyColumns(),
		Specs:         []chart.Spec{chart.ThreadThroughput()},
		Style:         chart.Comparison(),
		OrderBySource: true,
		OutDir:        "throughput_graphs",
		Output: func(workload string, spec chart.Spec) string {
			return spec.File + "_" + workload + ".png"
		},
		Title: func(workload string, spec chart.Spec) string {
			return spec.Title + " - " + workload + ".csv"
		},
	}
}

// YCSB returns the YCSB campaign comparing index structures with
// cache flushing. Each system's "<system>_results" directory holds one
// CSV per YCSB workload; each workload gets the five charts of
// chart.YCSB.
func YCSB() *Campaign {
	return &Campaign{
		Name: "YCSB",
		Sources: []string{
			"fbtree-cache-flush",
			"artolc-cache-flush",
		},
		Workloads: []string{"a", "c", "b"},
		Path: func(source, workload string) string {
			return source + "_results/" + workload + ".csv"
		},
		TrimSuffix: "_results",
		Renames:    restab.LegacyColumns(),
		Specs:      chart.YCSB(),
		Style:      chart.Workload(),
		OutDir:     "charts",
		Output: func(workload string, spec chart.Spec) string {
			return "YCSB-" + strings.ToUpper(workload) + "_results/" + spec.File + ".png"
		},
		Title: func(workload string, spec chart.Spec) string {
			return "Workload " + strings.ToUpper(workload) + " - " + spec.Title
		},
	}
}
