// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist reads newline-separated numbers from stdin and summarizes
// their distribution.
//
// With -v, the calculation history record is printed as well.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/calckit/calckit/calc"
)

func main() {
	verbose := flag.Bool("v", false, "print the calculation record")
	flag.Parse()

	if err := describe(os.Stdout, os.Stdin, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func describe(w io.Writer, r io.Reader, verbose bool) error {
	xs, err := readInput(r)
	if err != nil {
		return err
	}

	s := calc.New()
	st, err := s.Statistics(xs)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g  std dev %.6g\n", st.Count, st.Sum, st.Mean, st.StdDev)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%8s %.6g\n", "min", st.Min)
	fmt.Fprintf(w, "%8s %.6g\n", "median", st.Median)
	fmt.Fprintf(w, "%8s %.6g\n", "max", st.Max)
	fmt.Fprintf(w, "%8s %.6g\n", "range", st.Range)
	fmt.Fprintf(w, "%8s %s\n", "mode", st.ModeString())

	if verbose {
		fmt.Fprintln(w)
		for _, rec := range s.History() {
			fmt.Fprintln(w, rec)
		}
	}
	return nil
}

// readInput parses one number per line. Blank lines are skipped.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}
