// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Artplot draws throughput comparison charts for the ART variants.
//
// Usage:
//
//	artplot [-C dir]
//
// Artplot reads a.csv, b.csv, and c.csv from each of the directories
// ART_LIMITED_Nodes_SCR, ART_LIMITED_Version_num, and ART_NO_SCR. Each
// file must have a header naming at least the columns
//
//	Thread Count,Throughput (ops/s)
//
// For each workload file, artplot writes
// throughput_graphs/throughput_<workload>.png with one line per
// directory. Missing files are reported and skipped.
//
// The -C flag runs artplot as if started in dir.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/benchplot/campaign"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: artplot [-C dir]\n")
	flag.PrintDefaults()
	exit(2)
}

var flagDir = flag.String("C", ".", "read results from and write charts to `dir`")

func main() {
	log.SetPrefix("artplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}

	if err := run(*flagDir, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(dir string, w io.Writer) error {
	logf := func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}
	c := campaign.ART()
	rep, err := c.Run(dir, logf)
	if err != nil {
		return err
	}
	if len(rep.Artifacts) > 0 {
		fmt.Fprintf(w, "\nAll graphs have been generated in the '%s' directory!\n", c.OutDir)
	}
	return nil
}
