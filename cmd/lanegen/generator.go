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

package main

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-rotate/hwy"
)

// unroll is the number of registers moved per iteration of the main slide loop.
const unroll = 4

// alignments lists the load/store forms, unaligned first so that the
// generated tables can be indexed by a 0/1 "is aligned" flag.
var alignments = []string{"U", "A"}

// Generator emits the register code for the vectorized rotation engine.
type Generator struct {
	OutputFile string
	PackageOut string
	Widths     []int
	MaxLanes   int
}

// Run generates, formats and writes the output file.
func (g *Generator) Run() error {
	if g.MaxLanes < 1 {
		return fmt.Errorf("lane count must be positive, got %d", g.MaxLanes)
	}
	src := g.Generate()
	formatted, err := imports.Process(g.OutputFile, src, nil)
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(g.OutputFile, formatted, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.OutputFile, err)
	}
	return nil
}

// Generate returns the unformatted source of the output file.
func (g *Generator) Generate() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by lanegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.PackageOut)
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t\"unsafe\"\n\n")
	fmt.Fprintf(&buf, "\t\"github.com/ajroetker/go-rotate/hwy\"\n")
	fmt.Fprintf(&buf, ")\n")

	for _, w := range g.Widths {
		emitTables(&buf, w, g.MaxLanes)
		for _, s := range alignments {
			for _, d := range alignments {
				emitSlideFwd(&buf, w, s, d)
				emitSlideBwd(&buf, w, s, d)
			}
		}
		for n := 1; n <= g.MaxLanes; n++ {
			emitRotateLeft(&buf, w, n)
		}
		for n := 1; n <= g.MaxLanes; n++ {
			emitRotateRight(&buf, w, n)
		}
	}
	return buf.Bytes()
}

func emitTables(buf *bytes.Buffer, w, maxLanes int) {
	for _, dir := range []string{"Fwd", "Bwd"} {
		fmt.Fprintf(buf, "\n// slide%s%d holds the %d-byte slides indexed by [src aligned][dst aligned].\n", dir, w, w)
		fmt.Fprintf(buf, "var slide%s%d = [2][2]slideFunc{\n", dir, w)
		for _, s := range alignments {
			fmt.Fprintf(buf, "\t{slide%s%d%sU, slide%s%d%sA},\n", dir, w, s, dir, w, s)
		}
		fmt.Fprintf(buf, "}\n")
	}
	for _, dir := range []string{"Left", "Right"} {
		fmt.Fprintf(buf, "\n// rotate%s%d holds the %d-byte stash rotators indexed by lane count.\n", dir, w, w)
		if maxLanes == hwy.MaxStashLanes {
			fmt.Fprintf(buf, "var rotate%s%d = [hwy.MaxStashLanes + 1]stashRotator{\n", dir, w)
		} else {
			fmt.Fprintf(buf, "var rotate%s%d = [%d]stashRotator{\n", dir, w, maxLanes+1)
		}
		fmt.Fprintf(buf, "\tnil,\n")
		for n := 1; n <= maxLanes; n++ {
			fmt.Fprintf(buf, "\trotate%s%dx%d,\n", dir, w, n)
		}
		fmt.Fprintf(buf, "}\n")
	}
}

// offset renders base+k, omitting a zero k.
func offset(base string, k int) string {
	if k == 0 {
		return base
	}
	return fmt.Sprintf("%s+%d", base, k)
}

// at renders a pointer expression p+off.
func at(p, off string) string {
	if off == "0" || off == "" {
		return p
	}
	return fmt.Sprintf("unsafe.Add(%s, %s)", p, off)
}

func emitSlideFwd(buf *bytes.Buffer, w int, s, d string) {
	fmt.Fprintf(buf, "\nfunc slideFwd%d%s%s(dst, src unsafe.Pointer, n uintptr) {\n", w, s, d)
	fmt.Fprintf(buf, "\tvar i uintptr\n")
	fmt.Fprintf(buf, "\tfor ; i+%d <= n; i += %d {\n", unroll*w, unroll*w)
	for r := range unroll {
		fmt.Fprintf(buf, "\t\tv%d := load%s%d(unsafe.Add(src, %s))\n", r, s, w, offset("i", r*w))
	}
	for r := range unroll {
		fmt.Fprintf(buf, "\t\tstore%s%d(unsafe.Add(dst, %s), v%d)\n", d, w, offset("i", r*w), r)
	}
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\tfor ; i+%d <= n; i += %d {\n", w, w)
	fmt.Fprintf(buf, "\t\tstore%s%d(unsafe.Add(dst, i), load%s%d(unsafe.Add(src, i)))\n", d, w, s, w)
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\tslideTailFwd(dst, src, i, n)\n")
	fmt.Fprintf(buf, "}\n")
}

func emitSlideBwd(buf *bytes.Buffer, w int, s, d string) {
	fmt.Fprintf(buf, "\nfunc slideBwd%d%s%s(dst, src unsafe.Pointer, n uintptr) {\n", w, s, d)
	fmt.Fprintf(buf, "\tfor n >= %d {\n", unroll*w)
	fmt.Fprintf(buf, "\t\tn -= %d\n", unroll*w)
	for r := unroll - 1; r >= 0; r-- {
		fmt.Fprintf(buf, "\t\tv%d := load%s%d(unsafe.Add(src, %s))\n", r, s, w, offset("n", r*w))
	}
	for r := unroll - 1; r >= 0; r-- {
		fmt.Fprintf(buf, "\t\tstore%s%d(unsafe.Add(dst, %s), v%d)\n", d, w, offset("n", r*w), r)
	}
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\tfor n >= %d {\n", w)
	fmt.Fprintf(buf, "\t\tn -= %d\n", w)
	fmt.Fprintf(buf, "\t\tstore%s%d(unsafe.Add(dst, n), load%s%d(unsafe.Add(src, n)))\n", d, w, s, w)
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "\tslideTailBwd(dst, src, n)\n")
	fmt.Fprintf(buf, "}\n")
}

// emitRotateLeft stashes the left segment, which starts the window, in n
// registers. The last register is partial: only stash-(n-1)*w of its bytes
// belong to the segment.
func emitRotateLeft(buf *bytes.Buffer, w, n int) {
	fmt.Fprintf(buf, "\nfunc rotateLeft%dx%d(p unsafe.Pointer, total, stash uintptr, slide slideFunc) {\n", w, n)
	for r := range n {
		fmt.Fprintf(buf, "\tv%d := loadU%d(%s)\n", r, w, at("p", fmt.Sprint(r*w)))
	}
	fmt.Fprintf(buf, "\tslide(p, unsafe.Add(p, stash), total-stash)\n")
	fmt.Fprintf(buf, "\tdst := unsafe.Add(p, total-stash)\n")
	for r := range n - 1 {
		fmt.Fprintf(buf, "\tstoreU%d(%s, v%d)\n", w, at("dst", fmt.Sprint(r*w)), r)
	}
	last := (n - 1) * w
	fmt.Fprintf(buf, "\tstorePartial(%s, unsafe.Pointer(&v%d), %s)\n", at("dst", fmt.Sprint(last)), n-1, minus("stash", last))
	fmt.Fprintf(buf, "}\n")
}

// emitRotateRight stashes the right segment, which ends the window, in n
// registers counted from the end. The last register is partial: only its
// final stash-(n-1)*w bytes belong to the segment.
func emitRotateRight(buf *bytes.Buffer, w, n int) {
	fmt.Fprintf(buf, "\nfunc rotateRight%dx%d(p unsafe.Pointer, total, stash uintptr, slide slideFunc) {\n", w, n)
	for r := range n {
		fmt.Fprintf(buf, "\tv%d := loadU%d(unsafe.Add(p, total-%d))\n", r, w, (r+1)*w)
	}
	fmt.Fprintf(buf, "\tslide(unsafe.Add(p, stash), p, total-stash)\n")
	for r := range n - 1 {
		fmt.Fprintf(buf, "\tstoreU%d(unsafe.Add(p, stash-%d), v%d)\n", w, (r+1)*w, r)
	}
	last := (n - 1) * w
	fmt.Fprintf(buf, "\tstorePartial(p, unsafe.Add(unsafe.Pointer(&v%d), %d-stash), %s)\n", n-1, n*w, minus("stash", last))
	fmt.Fprintf(buf, "}\n")
}

func minus(base string, k int) string {
	if k == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, k)
}
