// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package campaign turns a directory of benchmark result files into
// comparison charts.
//
// A Campaign names the systems and workloads of one benchmark
// campaign, where their result files live, and which charts to draw.
// Run loads every result file that exists, reconciles column names,
// combines the tables, and renders one chart per workload and chart
// spec that has data.
package campaign

import (
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
	"golang.org/x/benchplot/chart"
	"golang.org/x/benchplot/restab"
)

// A Campaign describes the inputs and outputs of one set of
// benchmark runs.
type Campaign struct {
	// Name is used in progress messages.
	Name string

	// Sources are the systems compared, in legend order if
	// OrderBySource is set.
	Sources []string

	// Workloads are the workloads charted, in the order they are
	// processed.
	Workloads []string

	// Path returns the result file of source and workload,
	// slash-separated and relative to the run directory.
	Path func(source, workload string) string

	// TrimSuffix is removed from the directory of each result file
	// to form its source tag.
	TrimSuffix string

	// Renames reconciles column names before tables are combined.
	Renames restab.Renames

	Specs []chart.Spec
	Style chart.Style

	// OrderBySource orders chart lines by Sources instead of by
	// the order in which sources first appear in the data.
	OrderBySource bool

	// OutDir is the directory, relative to the run directory, that
	// holds every chart.
	OutDir string

	// Output returns the chart file of workload and spec, relative
	// to OutDir.
	Output func(workload string, spec chart.Spec) string

	// Title returns the title of the chart of workload and spec.
	Title func(workload string, spec chart.Spec) string
}

// A Report summarizes a Run.
type Report struct {
	// Artifacts are the charts written, relative to the run
	// directory, in the order they were written.
	Artifacts []string

	// Skipped lists the charts that were not drawn.
	Skipped []Skip

	// Workloads and Sources are the distinct tags of the combined
	// table, in the order they first appear.
	Workloads, Sources []string
}

// A Skip records a chart that was not drawn because it had no data.
// Spec is empty if the whole workload had no data.
type Skip struct {
	Workload string
	Spec     string
}

// Inputs returns the result files of c in load order: every source
// of the first workload, then every source of the next, and so on.
func (c *Campaign) Inputs() []string {
	var paths []string
	for _, w := range c.Workloads {
		for _, s := range c.Sources {
			paths = append(paths, c.Path(s, w))
		}
	}
	return paths
}

// Load reads every input of c that exists under dir and returns the
// combined, reconciled table. Missing inputs are logged and skipped.
func (c *Campaign) Load(dir string, logf func(format string, args ...any)) (*table.Table, error) {
	if err := c.Renames.Validate(); err != nil {
		return nil, err
	}
	files := &restab.Files{
		Paths:      c.Inputs(),
		Dir:        dir,
		TrimSuffix: c.TrimSuffix,
		Logf:       logf,
	}
	var tabs []*table.Table
	for files.Scan() {
		tabs = append(tabs, c.Renames.Apply(files.Table().Table))
	}
	if err := files.Err(); err != nil {
		return nil, err
	}
	return restab.Concat(tabs...)
}

// Chart builds the chart of spec for the rows of t. It returns a
// chart with no lines if t has no data for spec.
func (c *Campaign) Chart(t *table.Table, workload string, spec chart.Spec) (*chart.Chart, error) {
	var order []string
	if c.OrderBySource {
		order = c.Sources
	}
	lines, err := restab.Lines(t, restab.SourceCol, spec.XCol, spec.Metric, order)
	if err != nil && !errors.Is(err, restab.ErrNoColumn) {
		return nil, err
	}
	xl, yl := spec.Labels()
	return &chart.Chart{
		Title:  c.Title(workload, spec),
		XLabel: xl,
		YLabel: yl,
		Lines:  lines,
	}, nil
}

// Run loads the inputs of c under dir and writes its charts there.
//
// Missing inputs and charts without data are logged and skipped; a
// run with no data at all writes nothing and succeeds. Malformed
// inputs and failures to write a chart stop the run.
func (c *Campaign) Run(dir string, logf func(format string, args ...any)) (*Report, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	combined, err := c.Load(dir, logf)
	if err != nil {
		return nil, err
	}
	logf("Columns in combined table: [%s]\n", strings.Join(combined.Columns(), ", "))

	rep := &Report{
		Workloads: restab.Distinct(combined, restab.WorkloadCol),
		Sources:   restab.Distinct(combined, restab.SourceCol),
	}
	for _, w := range c.Workloads {
		logf("\nProcessing workload %s...\n", w)
		wt := restab.Select(combined, restab.WorkloadCol, w)
		if wt.Len() == 0 {
			logf("  Error: No data could be loaded for workload %s\n", w)
			rep.Skipped = append(rep.Skipped, Skip{Workload: w})
			continue
		}

		for _, spec := range c.Specs {
			ch, err := c.Chart(wt, w, spec)
			if err != nil {
				return rep, err
			}
			if len(ch.Lines) == 0 {
				logf("  Warning: No %s data for workload %s; skipping %s\n", spec.Metric, w, spec.File)
				rep.Skipped = append(rep.Skipped, Skip{w, spec.File})
				continue
			}

			rel := path.Join(c.OutDir, c.Output(w, spec))
			if err := chart.Save(filepath.Join(dir, filepath.FromSlash(rel)), ch, c.Style); err != nil {
				return rep, err
			}
			logf("Saved plot to %s\n", rel)
			rep.Artifacts = append(rep.Artifacts, rel)
		}
	}

	logf("\nGenerated %d %s charts in %s for workloads %v and systems %v\n", len(rep.Artifacts), c.Name, c.OutDir, rep.Workloads, rep.Sources)
	return rep, nil
}
