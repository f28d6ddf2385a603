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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	// cpu.ARM64.HasASIMD is always true for ARMv8+.
	switch {
	case cpu.ARM64.HasSVE:
		// SVE vector length is implementation defined; group at the
		// architectural minimum so kernels stay portable across cores.
		currentLevel = DispatchSVE
		currentWidth = 16
		currentName = "sve"
	case cpu.ARM64.HasASIMD:
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	default:
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
	}

	applyOverrides()
}
