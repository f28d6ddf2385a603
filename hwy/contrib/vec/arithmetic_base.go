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

// Package vec provides element-wise vector arithmetic, activations and
// reductions over hwy lane groups, plus an owning Vector type.
//
// Slice kernels come in the "To" form: they write results to a separate
// destination slice (e.g., AddTo). dst may alias one of the inputs, so
// AddTo(a, a, b) adds b into a in place. When the slices have different
// lengths the kernels use the minimum length.
//
// Vector wraps an aligned, padded buffer and exposes the same operations
// with explicit length checks and error returns.
package vec

import "github.com/capnhook/hwystats/hwy"

// binaryTo applies op to whole lane groups of a and b and scalar to the tail.
func binaryTo[T hwy.Lanes](dst, a, b []T, op func(x, y hwy.Vec[T]) hwy.Vec[T], scalar func(x, y T) T) {
	n := min(len(dst), min(len(a), len(b)))
	if n == 0 {
		return
	}
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			hwy.Store(op(hwy.Load(a[offset:]), hwy.Load(b[offset:])), dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = scalar(a[i], b[i])
			}
		},
	)
}

// AddTo performs element-wise addition: dst[i] = a[i] + b[i].
//
// Example:
//
//	a := []float32{1, 2, 3, 4}
//	b := []float32{5, 6, 7, 8}
//	dst := make([]float32, 4)
//	AddTo(dst, a, b)  // dst is now {6, 8, 10, 12}
func AddTo[T hwy.Lanes](dst, a, b []T) {
	binaryTo(dst, a, b, hwy.Add[T], func(x, y T) T { return x + y })
}

// SubTo performs element-wise subtraction: dst[i] = a[i] - b[i].
func SubTo[T hwy.Lanes](dst, a, b []T) {
	binaryTo(dst, a, b, hwy.Sub[T], func(x, y T) T { return x - y })
}

// MulTo performs element-wise multiplication: dst[i] = a[i] * b[i].
func MulTo[T hwy.Lanes](dst, a, b []T) {
	binaryTo(dst, a, b, hwy.Mul[T], func(x, y T) T { return x * y })
}

// DivTo performs element-wise division: dst[i] = a[i] / b[i].
//
// Division by zero follows IEEE 754 (±Inf or NaN).
func DivTo[T hwy.Floats](dst, a, b []T) {
	binaryTo(dst, a, b, hwy.Div[T], func(x, y T) T { return x / y })
}

// ScaleTo multiplies each element by a scalar: dst[i] = c * s[i].
//
// Example:
//
//	s := []float32{1, 2, 3, 4}
//	dst := make([]float32, 4)
//	ScaleTo(dst, 2, s)  // dst is now {2, 4, 6, 8}
func ScaleTo[T hwy.Lanes](dst []T, c T, s []T) {
	n := min(len(dst), len(s))
	if n == 0 {
		return
	}

	vc := hwy.Set(c)
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			hwy.Store(hwy.Mul(vc, hwy.Load(s[offset:])), dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = c * s[i]
			}
		},
	)
}
