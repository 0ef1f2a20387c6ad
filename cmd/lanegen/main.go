// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lanegen generates the statically unrolled register code used by the
// vectorized rotation engine.
//
// Usage:
//
//	lanegen -output z_lanes.go
//	lanegen -output z_lanes.go -widths 16,32 -lanes 12
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/lanegen -output z_lanes.go
//
// For every register width it emits:
//  1. Forward and backward slide loops, one per source/destination alignment
//     combination, with a 4-register unrolled body
//  2. One stash rotator per lane count and direction, loading the smaller
//     segment into that many registers and writing it back after the slide
//  3. The dispatch tables indexed by alignment and by lane count
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-rotate/hwy"
)

var (
	outputFile = flag.String("output", "", "Output Go source file (required)")
	packageOut = flag.String("pkg", "rotate", "Output package name")
	widths     = flag.String("widths", "16,32", "Comma-separated register widths in bytes (16, 32)")
	lanes      = flag.Int("lanes", hwy.MaxStashLanes, "Maximum number of stash registers")
)

func main() {
	flag.Parse()

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	widthList, err := parseWidths(*widths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		PackageOut: *packageOut,
		Widths:     widthList,
		MaxLanes:   *lanes,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s for widths: %s\n", *outputFile, *widths)
}

func parseWidths(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", p, err)
		}
		if w != 16 && w != 32 {
			return nil, fmt.Errorf("unsupported register width %d", w)
		}
		result = append(result, w)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no register widths specified")
	}
	return result, nil
}
