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

// Package hwy provides portable lane-group operations with runtime width
// dispatch.
//
// Kernels are written once against Vec and Mask and run with whatever lane
// width the CPU offers (16, 32 or 64 bytes per group). Remainders that do not
// fill a whole group are handled with ProcessWithTail or TailMask.
//
// Basic usage:
//
//	import "github.com/capnhook/hwystats/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	hwy.Store(hwy.Add(a, b), out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a lane group: MaxLanes[T]() elements of the same type.
//
// The lanes live in a fixed-size array, so a Vec is a plain value that stays
// on the stack of the kernel using it. Create vectors with Load, Set or Zero
// and never keep them beyond the kernel that produced them.
type Vec[T Lanes] struct {
	data [MaxLanesBound]T
	n    int
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the lanes. Intended for tests; kernels use Store.
func (v Vec[T]) Data() []T {
	return append([]T(nil), v.data[:v.n]...)
}

// Store writes the vector's lanes to dst.
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.data[:v.n])
}

// Mask is the result of a lane-wise comparison.
type Mask[T Lanes] struct {
	bits [MaxLanesBound]bool
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits[:m.n] {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits[:m.n] {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits[:m.n] {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits[i]
}
