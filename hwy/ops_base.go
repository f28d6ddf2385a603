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

import "math"

// This file provides the portable implementations of the lane operations.
// Every operation works on whole lane groups; binary operations use the
// shorter of the two operands.

// Load creates a vector by loading up to MaxLanes[T]() elements from src.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:MaxLanes[T]()], src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

func binary[T Lanes](a, b Vec[T], op func(x, y T) T) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = op(a.data[i], b.data[i])
	}
	return r
}

func unary[T Lanes](v Vec[T], op func(x T) T) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = op(v.data[i])
	}
	return r
}

func compare[T Lanes](a, b Vec[T], op func(x, y T) bool) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = op(a.data[i], b.data[i])
	}
	return m
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction. Integer lanes wrap on overflow.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// MulAdd computes a*b + c element-wise.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return Add(Mul(a, b), c)
}

// Abs computes the absolute value of each lane.
// Unsigned lanes are returned unchanged.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// Sqrt computes the square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// ReduceSum sums all lanes, in lane order.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data[:v.n] {
		sum += x
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:v.n] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:v.n] {
		if x > m {
			m = x
		}
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IsNaN returns a mask of the lanes holding NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return NotEqual(v, v)
}

// IfThenElse selects a where mask is true and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, min(a.n, b.n))}
	for i := range r.n {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// MaskLoad loads data from a slice only for lanes where the mask is true.
// Inactive lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	r := Vec[T]{n: mask.n}
	for i := range min(len(src), mask.n) {
		if mask.bits[i] {
			r.data[i] = src[i]
		}
	}
	return r
}

// MaskStore stores vector data to a slice only for lanes where the mask is true.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := range min(len(dst), min(v.n, mask.n)) {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}
