// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ycsbplot draws per-workload YCSB charts comparing index structures.
//
// Usage:
//
//	ycsbplot [-C dir]
//
// Ycsbplot reads <system>_results/<workload>.csv for the systems
// fbtree-cache-flush and artolc-cache-flush and the YCSB workloads a,
// c, and b. Older result files that name latency columns
// "Avg Latency (ns)", "Avg Read Lat (ns)", and "Avg Write Lat (ns)"
// are accepted and reconciled with current files.
//
// For each workload, ycsbplot writes five charts to
// charts/YCSB-<WORKLOAD>_results/:
//
//	throughput_vs_threads.png
//	avg_latency_vs_threads.png
//	read_latency_vs_threads.png
//	write_latency_vs_threads.png
//	latency_vs_throughput.png
//
// Charts whose metric is missing from every system are skipped.
//
// The -C flag runs ycsbplot as if started in dir.
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
	fmt.Fprintf(os.Stderr, "usage: ycsbplot [-C dir]\n")
	flag.PrintDefaults()
	exit(2)
}

var flagDir = flag.String("C", ".", "read results from and write charts to `dir`")

func main() {
	log.SetPrefix("ycsbplot: ")
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
	_, err := campaign.YCSB().Run(dir, func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	})
	return err
}
