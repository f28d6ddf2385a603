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
	"unsafe"
)

// DispatchLevel represents the instruction set the lane width was chosen for.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go lanes.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE (scalable, treated as 128-bit).
	DispatchSVE
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
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Environment variables consulted once at init.
const (
	// EnvNoSimd forces scalar dispatch when set to a true value.
	EnvNoSimd = "HWY_NO_SIMD"

	// EnvVectorBytes overrides the detected group width (16, 32 or 64).
	EnvVectorBytes = "HWY_VECTOR_BYTES"
)

// maxVectorBytes bounds every lane group; 64 one-byte lanes at most.
const maxVectorBytes = 64

// MaxLanesBound is the largest value MaxLanes can return for any type.
// Kernels use it to size stack buffers that must hold one lane group.
const MaxLanesBound = maxVectorBytes

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the lane-group width in bytes.
// Set by init() in dispatch_*.go files, possibly overridden by EnvVectorBytes.
var currentWidth int

// currentName is the human-readable name of the current level.
var currentName string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the lane-group width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, scalar dispatch is used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv(EnvNoSimd)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// vectorBytesEnv returns the EnvVectorBytes override, or 0 if unset/invalid.
func vectorBytesEnv() int {
	val := os.Getenv(EnvVectorBytes)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || !validWidth(n) {
		return 0
	}
	return n
}

func validWidth(n int) bool {
	return n == 16 || n == 32 || n == 64
}

// applyOverrides runs after detection in every dispatch_*.go init.
func applyOverrides() {
	if n := vectorBytesEnv(); n != 0 {
		currentWidth = n
	}
}

// SetVectorBytesForTesting forces the lane-group width to n bytes (16, 32 or
// 64) and returns a function restoring the previous width. Invalid widths
// are ignored. Not safe for concurrent use with running kernels.
func SetVectorBytesForTesting(n int) (restore func()) {
	prev := currentWidth
	if validWidth(n) {
		currentWidth = n
	}
	return func() { currentWidth = prev }
}

// MaxLanes returns the number of lanes of type T in one lane group.
//
// For example, with AVX2 (32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int8: 32/1 = 32 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
