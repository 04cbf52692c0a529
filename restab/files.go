// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package restab

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/aclements/go-gg/table"
)

// A Files reads result tables from a sequence of CSV files.
//
// Each table is tagged (see Tag) with the source and workload derived
// from its path by PathTags. Files that do not exist are skipped with
// a warning; any other error stops the scan.
type Files struct {
	// Paths is the list of file names to read, relative to Dir.
	// Their directory and base name determine the tags.
	Paths []string

	// Dir, if non-empty, is the directory Paths are relative to.
	Dir string

	// TrimSuffix is removed from each directory name to form
	// the source tag, such as "_results".
	TrimSuffix string

	// Logf, if non-nil, receives a status line for every file
	// read or skipped.
	Logf func(format string, args ...any)

	// next is the index in Paths of the next file to read.
	next int

	cur *Loaded
	err error
}

// A Loaded is a result table read by Files.
type Loaded struct {
	// Path is the path of the file as given in Files.Paths.
	Path string

	Source, Workload string

	// Table is the tagged result table.
	Table *table.Table
}

// Scan advances to the next file that exists and reports whether a
// table was read. The caller should use the Table method to get the
// table. If Scan reaches the end of Paths, or if an error other than
// a missing file occurs, it returns false. In this case, the caller
// should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	for f.next < len(f.Paths) {
		path := f.Paths[f.next]
		f.next++

		t, err := ReadFile(filepath.Join(f.Dir, path))
		if errors.Is(err, fs.ErrNotExist) {
			f.logf("  Warning: Could not load data from %s\n", path)
			continue
		} else if err != nil {
			f.err = err
			f.cur = nil
			return false
		}

		source, workload := PathTags(path, f.TrimSuffix)
		f.cur = &Loaded{path, source, workload, Tag(t, source, workload)}
		f.logf("  Loaded data from %s: %d rows\n", path, t.Len())
		return true
	}
	f.cur = nil
	return false
}

// Table returns the table that was just read by Scan.
func (f *Files) Table() *Loaded {
	return f.cur
}

// Err returns the error that stopped Scan, if any. If Scan stopped
// because it read every file, or if Scan has not yet returned false,
// Err returns nil.
func (f *Files) Err() error {
	return f.err
}

func (f *Files) logf(format string, args ...any) {
	if f.Logf != nil {
		f.Logf(format, args...)
	}
}
