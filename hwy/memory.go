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

import "unsafe"

// Alignment is the byte alignment of buffers returned by AlignedAlloc.
// It matches the widest lane group (AVX-512) and a cache line.
const Alignment = 64

// AlignedAlloc returns a zeroed slice of n elements whose first element is
// Alignment-aligned. The capacity is padded so that the slice spans a whole
// number of Alignment-byte blocks, letting full lane groups run past len
// without leaving the allocation.
//
// Returns nil for n <= 0.
func AlignedAlloc[T Lanes](n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	padded := ((n*size + Alignment - 1) / Alignment) * Alignment
	count := padded / size

	// Over-allocate by one block and slide forward to the boundary.
	buf := make([]T, count+Alignment/size)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := int((Alignment-addr%Alignment)%Alignment) / size
	return buf[off : off+n : off+count]
}

// IsAlignedSlice reports whether the first element of s sits on an
// Alignment boundary. Empty slices are considered aligned.
func IsAlignedSlice[T Lanes](s []T) bool {
	if cap(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%Alignment == 0
}
