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

package hwy

import (
	"os"
	"strconv"
	"strings"
	"unsafe"
)

// DispatchLevel represents the wide-register instruction set detected at runtime.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable wide registers.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit registers).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit registers).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 Foundation + BW (512-bit registers).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON / ASIMD (128-bit registers).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseDispatchLevel parses a level name as printed by String.
func ParseDispatchLevel(s string) (DispatchLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return DispatchScalar, true
	case "sse2":
		return DispatchSSE2, true
	case "avx2":
		return DispatchAVX2, true
	case "avx512":
		return DispatchAVX512, true
	case "neon":
		return DispatchNEON, true
	default:
		return DispatchScalar, false
	}
}

// MaxStashLanes is the number of wide registers the rotation engine may
// dedicate to holding the smaller segment of a rotation.
const MaxStashLanes = 12

// maxRegisterWidth caps the width used by the stash machinery. Wider
// registers (AVX-512) are treated as 256-bit.
const maxRegisterWidth = 32

// currentLevel is the detected SIMD level for this runtime.
// Set by configure() from the per-arch detectCPUFeatures.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
var currentName string

func init() {
	configure()
}

// configure reads HWY_NO_SIMD and runs CPU detection.
func configure() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

// Refresh re-reads HWY_NO_SIMD and re-runs CPU detection.
//
// Programs that populate the environment after package initialization
// (for example from a .env file) call Refresh before doing any work.
// It must not be called concurrently with code that reads the dispatch state.
func Refresh() {
	configure()
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentName
}

// RegisterWidth returns the register width in bytes usable for bulk moves:
// 16 or 32, or 0 when running in scalar mode.
func RegisterWidth() int {
	if currentLevel == DispatchScalar {
		return 0
	}
	return min(currentWidth, maxRegisterWidth)
}

// RegisterBudget returns the number of bytes that fit in the register stash.
// It is 0 in scalar mode.
func RegisterBudget() int {
	return MaxStashLanes * RegisterWidth()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, scalar fallbacks are used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of T values that fit in one register of the
// current width.
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
