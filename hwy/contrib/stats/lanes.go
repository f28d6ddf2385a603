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

package stats

import (
	"math"
	"unsafe"

	"github.com/capnhook/hwystats/hwy"
	"github.com/chewxy/math32"
)

// forEachGroup calls group for every whole lane group of T in [0, n) and
// elem for every remaining tail index, in that order.
func forEachGroup[T hwy.Lanes](n int, group func(offset int), elem func(i int)) {
	hwy.ProcessWithTail[T](n, group, func(offset, count int) {
		for i := offset; i < offset+count; i++ {
			elem(i)
		}
	})
}

// isFloat reports whether T is a floating-point type.
func isFloat[T hwy.Lanes]() bool {
	half := 0.5
	return T(half) != 0
}

// isInteger reports whether T is an integer type.
func isInteger[T hwy.Lanes]() bool {
	return !isFloat[T]()
}

// isSigned reports whether T can hold negative values.
func isSigned[T hwy.Lanes]() bool {
	var zero T
	return zero-1 < 0
}

// widthMask masks a uint64 down to the bit width of T.
func widthMask[T hwy.Lanes]() uint64 {
	var zero T
	bits := 8 * unsafe.Sizeof(zero)
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<bits - 1
}

// hasNaN reports whether x holds a NaN. Always false for integer T.
func hasNaN[T hwy.Lanes](x []T) bool {
	if !isFloat[T]() {
		return false
	}
	found := false
	forEachGroup[T](len(x),
		func(offset int) {
			if found {
				return
			}
			v := hwy.Load(x[offset:])
			found = !hwy.AllFalse(hwy.NotEqual(v, v))
		},
		func(i int) {
			found = found || x[i] != x[i]
		},
	)
	return found
}

func nan[T hwy.Lanes]() T {
	n := math.NaN()
	return T(n)
}

func sqrt[T hwy.Lanes](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	default:
		return T(math.Sqrt(float64(x)))
	}
}

// widen converts len(dst) elements of src to W.
func widen[T, W hwy.Lanes](dst []W, src []T) {
	for i := range dst {
		dst[i] = W(src[i])
	}
}

// sumWide sums x in lanes of the wider type W, widening one group at a time.
func sumWide[T, W hwy.Lanes](x []T) W {
	var buf [hwy.MaxLanesBound]W
	acc := hwy.Zero[W]()
	var tail W
	forEachGroup[W](len(x),
		func(offset int) {
			lanes := buf[:acc.NumLanes()]
			widen(lanes, x[offset:])
			acc = hwy.Add(acc, hwy.Load(lanes))
		},
		func(i int) {
			tail += W(x[i])
		},
	)
	return hwy.ReduceSum(acc) + tail
}

// sumFloat64 sums x in float64 lanes.
func sumFloat64[T hwy.Lanes](x []T) float64 {
	return sumWide[T, float64](x)
}

// isConstant reports whether every element of x equals x[0]. NaN is never
// equal to itself, so a buffer holding NaN is not constant. x must not be
// empty.
func isConstant[T hwy.Lanes](x []T) bool {
	first := x[0]
	vf := hwy.Set(first)
	same := true
	forEachGroup[T](len(x),
		func(offset int) {
			if same {
				same = hwy.AllTrue(hwy.Equal(hwy.Load(x[offset:]), vf))
			}
		},
		func(i int) {
			same = same && x[i] == first
		},
	)
	return same
}

// truncSaturate converts a non-negative v to integer T, truncating toward
// zero and clamping at the largest value of T.
func truncSaturate[T hwy.Lanes](v float64) T {
	top := widthMask[T]()
	if isSigned[T]() {
		top >>= 1
	}
	if v >= float64(top) {
		return T(top)
	}
	return T(v)
}

// crossDeviation returns sum((a[i]-ma) * (b[i]-mb)) in float64 lanes.
// a and b must have the same length.
func crossDeviation[T hwy.Lanes](a, b []T, ma, mb float64) float64 {
	var bufA, bufB [hwy.MaxLanesBound]float64
	acc := hwy.Zero[float64]()
	vma, vmb := hwy.Set(ma), hwy.Set(mb)
	var tail float64
	forEachGroup[float64](len(a),
		func(offset int) {
			la := bufA[:acc.NumLanes()]
			lb := bufB[:acc.NumLanes()]
			widen(la, a[offset:])
			widen(lb, b[offset:])
			da := hwy.Sub(hwy.Load(la), vma)
			db := hwy.Sub(hwy.Load(lb), vmb)
			acc = hwy.MulAdd(da, db, acc)
		},
		func(i int) {
			tail += (float64(a[i]) - ma) * (float64(b[i]) - mb)
		},
	)
	return hwy.ReduceSum(acc) + tail
}

// firstIndexOf returns the index of the first element equal to v, or -1.
func firstIndexOf[T hwy.Lanes](s []T, v T) int {
	vv := hwy.Set(v)
	idx := -1
	forEachGroup[T](len(s),
		func(offset int) {
			if idx >= 0 {
				return
			}
			if j := hwy.FindFirstTrue(hwy.Equal(hwy.Load(s[offset:]), vv)); j >= 0 {
				idx = offset + j
			}
		},
		func(i int) {
			if idx < 0 && s[i] == v {
				idx = i
			}
		},
	)
	return idx
}
