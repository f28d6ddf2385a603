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

// This file provides stream compaction and mask algebra.

// CompressStore packs the lanes of v where mask is true to the front of dst
// and returns how many lanes were selected. dst must have room for every
// selected lane; lanes beyond len(dst) are counted but not written.
//
// For example: v=[1,2,3,4], mask=[T,F,T,F] -> dst=[1,3], returns 2
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	count := 0
	for i := range min(v.n, mask.n) {
		if mask.bits[i] {
			if count < len(dst) {
				dst[count] = v.data[i]
			}
			count++
		}
	}
	return count
}

// CountTrue counts true lanes in mask.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// AllTrue returns true if all lanes are true.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse returns true if no lane is true.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return !mask.AnyTrue()
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	for i, bit := range mask.bits[:mask.n] {
		if bit {
			return i
		}
	}
	return -1
}

// FirstN creates a mask with the first n lanes set to true.
func FirstN[T Lanes](n int) Mask[T] {
	m := Mask[T]{n: MaxLanes[T]()}
	for i := range max(0, min(n, m.n)) {
		m.bits[i] = true
	}
	return m
}

// MaskNot inverts every lane of the mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	r := Mask[T]{n: m.n}
	for i, bit := range m.bits[:m.n] {
		r.bits[i] = !bit
	}
	return r
}

// MaskAnd returns the lane-wise conjunction of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	r := Mask[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.bits[i] = a.bits[i] && b.bits[i]
	}
	return r
}

// MaskOr returns the lane-wise disjunction of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	r := Mask[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.bits[i] = a.bits[i] || b.bits[i]
	}
	return r
}
