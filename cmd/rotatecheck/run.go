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
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/ajroetker/go-rotate/hwy"
	"github.com/ajroetker/go-rotate/hwy/contrib/rotate"
	"github.com/ajroetker/go-rotate/internal/verify"
	"github.com/ajroetker/go-rotate/internal/workerpool"
)

// fillBatch is the number of elements one worker initializes at a time.
const fillBatch = 1 << 20

// RunCmd rotates a buffer of int32 values where element i initially holds i.
type RunCmd struct {
	Length  int    `name:"length" short:"n" default:"100000000" env:"ROTATECHECK_LENGTH" help:"Number of int32 elements."`
	Offset  int    `name:"offset" short:"k" default:"33333333" env:"ROTATECHECK_OFFSET" help:"Rotation offset; element offset becomes the first one."`
	Engine  string `name:"engine" short:"e" enum:"auto,scalar,recursive,vector" default:"auto" env:"ROTATECHECK_ENGINE" help:"Rotation engine (auto, scalar, recursive, vector)."`
	Shift   int    `name:"shift" default:"0" env:"ROTATECHECK_SHIFT" help:"Elements skipped at the start of the backing array, to misalign the window."`
	Samples int    `name:"samples" default:"100000" env:"ROTATECHECK_SAMPLES" help:"Random positions checked in sampled mode."`
	Edge    int    `name:"edge" default:"100" env:"ROTATECHECK_EDGE" help:"Leading and trailing elements always checked in sampled mode."`
	Full    bool   `name:"full" env:"ROTATECHECK_FULL" help:"Check every element instead of sampling."`
	Workers int    `name:"workers" default:"0" env:"ROTATECHECK_WORKERS" help:"Goroutines used to fill the buffer and by --full (0 means GOMAXPROCS)."`
	Seed    uint64 `name:"seed" default:"1" env:"ROTATECHECK_SEED" help:"Seed for sampled positions."`
}

func (c *RunCmd) validate() error {
	switch {
	case c.Length < 0 || c.Length > math.MaxInt32:
		return fmt.Errorf("length %d out of range [0, %d]", c.Length, math.MaxInt32)
	case c.Offset < 0 || c.Offset > c.Length:
		return fmt.Errorf("offset %d out of range [0, %d]", c.Offset, c.Length)
	case c.Shift < 0:
		return fmt.Errorf("shift must not be negative, got %d", c.Shift)
	case c.Edge < 0 || c.Samples < 0:
		return fmt.Errorf("edge and samples must not be negative")
	}
	return nil
}

// Run executes the rotation and the verification.
func (c *RunCmd) Run(g *globals) error {
	if err := c.validate(); err != nil {
		return err
	}
	engine, err := rotate.ParseEngine(c.Engine)
	if err != nil {
		return err
	}

	backing := make([]int32, c.Shift+c.Length)
	data := backing[c.Shift:]
	pool := workerpool.New(c.Workers)
	pool.ParallelForBatched(len(data), fillBatch, func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = int32(i)
		}
	})
	pool.Close()
	g.logger.Debug("buffer ready",
		"length", c.Length,
		"shift", c.Shift,
		"workers", pool.Workers(),
		"level", hwy.CurrentName(),
		"register_width", hwy.RegisterWidth())

	start := time.Now()
	newMid := rotate.RotateWith(engine, data, c.Offset)
	elapsed := time.Since(start)
	g.logger.Info("rotated",
		"engine", engine.String(),
		"length", c.Length,
		"offset", c.Offset,
		"new_mid", newMid,
		"elapsed", elapsed)

	if want := c.Length - c.Offset; newMid != want {
		return fmt.Errorf("rotation returned %d, want %d", newMid, want)
	}

	orig := func(i int) int32 { return int32(i) }
	start = time.Now()
	if c.Full {
		err = verify.Full(g.ctx, data, c.Offset, orig, c.Workers)
	} else {
		err = verify.Sampled(data, c.Offset, orig, c.Edge, c.Samples, rand.New(rand.NewPCG(c.Seed, c.Seed)))
	}
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	g.logger.Debug("verified", "full", c.Full, "elapsed", time.Since(start))

	fmt.Fprintf(g.out, "ok: rotated %d elements by %d with the %s engine in %s\n", c.Length, c.Offset, engine, elapsed)
	return nil
}

// InfoCmd prints the capability flags the engines dispatch on.
type InfoCmd struct{}

// Run prints one "key: value" line per capability.
func (c *InfoCmd) Run(g *globals) error {
	fmt.Fprintf(g.out, "level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(g.out, "name: %s\n", hwy.CurrentName())
	fmt.Fprintf(g.out, "width: %d\n", hwy.CurrentWidth())
	fmt.Fprintf(g.out, "register_width: %d\n", hwy.RegisterWidth())
	fmt.Fprintf(g.out, "stash_lanes: %d\n", hwy.MaxStashLanes)
	fmt.Fprintf(g.out, "register_budget: %d\n", hwy.RegisterBudget())
	fmt.Fprintf(g.out, "no_simd: %t\n", hwy.NoSimdEnv())
	return nil
}
