// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Tag columns added to every loaded table.
const (
	// SourceCol names the system or benchmark variant that
	// produced a row.
	SourceCol = "System"

	// WorkloadCol names the benchmark scenario a row measures.
	WorkloadCol = "Workload"
)

// PathTags derives the source and workload tags of the result file at
// path. The source is the file's directory with trimSuffix removed;
// the workload is the file's base name without its extension.
//
// For example, PathTags("fbtree_results/a.csv", "_results") returns
// "fbtree", "a".
func PathTags(path, trimSuffix string) (source, workload string) {
	dir, file := filepath.Split(filepath.Clean(path))
	dir = filepath.ToSlash(filepath.Clean(dir))
	if dir == "." {
		dir = ""
	}
	source = strings.TrimSuffix(dir, trimSuffix)
	workload = strings.TrimSuffix(file, filepath.Ext(file))
	return source, workload
}

// Tag returns t with constant SourceCol and WorkloadCol columns set
// to source and workload, replacing any existing columns by those
// names.
func Tag(t *table.Table, source, workload string) *table.Table {
	return table.NewBuilder(t).
		AddConst(SourceCol, source).
		AddConst(WorkloadCol, workload).
		Done()
}
