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

package vec

import "github.com/capnhook/hwystats/hwy"

// Sum computes the sum of all elements in a slice using hwy primitives.
//
// Returns 0 if the slice is empty. Integer sums wrap on overflow like any
// Go integer arithmetic. Lane groups are summed first, then the tail.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := Sum(data)  // 1 + 2 + 3 + 4 = 10
func Sum[T hwy.Lanes](v []T) T {
	if len(v) == 0 {
		return 0
	}

	sum := hwy.Zero[T]()
	var tail T
	hwy.ProcessWithTail[T](len(v),
		func(offset int) {
			sum = hwy.Add(sum, hwy.Load(v[offset:]))
		},
		func(offset, count int) {
			for _, x := range v[offset : offset+count] {
				tail += x
			}
		},
	)
	return hwy.ReduceSum(sum) + tail
}

// Min returns the minimum value in a slice using hwy primitives.
//
// Panics if the slice is empty.
//
// Note: For slices containing NaN values, behavior follows standard Go
// comparison semantics where NaN comparisons return false.
func Min[T hwy.Lanes](v []T) T {
	if len(v) == 0 {
		panic("vec: Min called on empty slice")
	}
	lo, _ := minMax(v, true, false)
	return lo
}

// Max returns the maximum value in a slice using hwy primitives.
//
// Panics if the slice is empty.
func Max[T hwy.Lanes](v []T) T {
	if len(v) == 0 {
		panic("vec: Max called on empty slice")
	}
	_, hi := minMax(v, false, true)
	return hi
}

// MinMax returns both the minimum and maximum values in a slice in a single
// pass.
//
// Panics if the slice is empty.
//
// Example:
//
//	data := []int32{3, 1, 4, 1, 5}
//	lo, hi := MinMax(data)  // lo=1, hi=5
func MinMax[T hwy.Lanes](v []T) (lo, hi T) {
	if len(v) == 0 {
		panic("vec: MinMax called on empty slice")
	}
	return minMax(v, true, true)
}

// minMax folds v into per-lane minima and/or maxima seeded with v[0], then
// folds the tail. v must not be empty.
func minMax[T hwy.Lanes](v []T, wantMin, wantMax bool) (lo, hi T) {
	minVec := hwy.Set(v[0])
	maxVec := minVec
	lo, hi = v[0], v[0]
	hwy.ProcessWithTail[T](len(v),
		func(offset int) {
			va := hwy.Load(v[offset:])
			if wantMin {
				minVec = hwy.Min(minVec, va)
			}
			if wantMax {
				maxVec = hwy.Max(maxVec, va)
			}
		},
		func(offset, count int) {
			for _, x := range v[offset : offset+count] {
				if x < lo {
					lo = x
				}
				if x > hi {
					hi = x
				}
			}
		},
	)

	if m := hwy.ReduceMin(minVec); m < lo {
		lo = m
	}
	if m := hwy.ReduceMax(maxVec); m > hi {
		hi = m
	}
	return lo, hi
}
