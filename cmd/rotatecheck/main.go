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

// Command rotatecheck rotates a large generated buffer in place with one of
// the rotation engines and verifies the result.
//
// Usage:
//
//	rotatecheck run --length 100000000 --offset 33333333 --engine vector
//	rotatecheck run --length 4096 --offset 7 --shift 1 --full
//	rotatecheck info
//
// Every run flag can also be set through a ROTATECHECK_* environment
// variable. A .env file in the working directory is loaded first if present;
// it may also set HWY_NO_SIMD.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/ajroetker/go-rotate/hwy"
)

// CLI is the command line grammar.
type CLI struct {
	LogFormat string `name:"log-format" enum:"text,json" default:"text" env:"ROTATECHECK_LOG_FORMAT" help:"Log output format (text, json)."`
	Verbose   bool   `name:"verbose" short:"v" env:"ROTATECHECK_VERBOSE" help:"Enable debug logging."`

	Run  RunCmd  `cmd:"" help:"Rotate a generated buffer and verify the result."`
	Info InfoCmd `cmd:"" help:"Print the detected register capabilities."`
}

// globals is bound into every command's Run method.
type globals struct {
	ctx    context.Context
	logger *slog.Logger
	out    io.Writer
}

func main() {
	if err := loadDotenv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// The .env file may have changed HWY_NO_SIMD after package init.
	hwy.Refresh()

	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// loadDotenv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// execute parses args, runs the selected command and returns the process
// exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("rotatecheck"),
		kong.Description("Rotate and verify large buffers with the go-rotate engines."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(cli.LogFormat, level, stderr)

	if err := kctx.Run(&globals{ctx: ctx, logger: logger, out: stdout}); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		return 1
	}
	return 0
}

// newLogger returns a text or JSON slog logger writing to w.
func newLogger(format string, level slog.Level, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
