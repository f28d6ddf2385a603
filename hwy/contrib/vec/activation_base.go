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

import (
	"math"

	"github.com/capnhook/hwystats/hwy"
	"github.com/chewxy/math32"
)

// ReLUTo computes ReLU(x) = max(0, x) for each element.
//
// Example:
//
//	input := []float32{-2, -1, 0, 1, 2}
//	output := make([]float32, 5)
//	ReLUTo(output, input)  // output is now {0, 0, 0, 1, 2}
func ReLUTo[T hwy.Floats](dst, s []T) {
	n := min(len(dst), len(s))
	if n == 0 {
		return
	}

	zero := hwy.Zero[T]()
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			hwy.Store(hwy.Max(hwy.Load(s[offset:]), zero), dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = max(s[i], 0)
			}
		},
	)
}

// ExpTo computes e^x for each element.
//
// float32 lanes use math32.Exp, float64 lanes math.Exp.
func ExpTo[T hwy.Floats](dst, s []T) {
	n := min(len(dst), len(s))
	if n == 0 {
		return
	}

	hwy.ProcessWithTail[T](n,
		func(offset int) {
			hwy.Store(expVec(hwy.Load(s[offset:])), dst[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = exp(s[i])
			}
		},
	)
}

// SoftmaxTo computes softmax(x_i) = exp(x_i - max(x)) / sum(exp(x_j - max(x))).
//
// The max subtraction keeps every exponent at or below zero, so large inputs
// do not overflow. An empty input leaves dst untouched.
func SoftmaxTo[T hwy.Floats](dst, s []T) {
	n := min(len(dst), len(s))
	if n == 0 {
		return
	}
	s, dst = s[:n], dst[:n]

	m := Max(s)
	vmax := hwy.Set(m)
	sum := hwy.Zero[T]()
	var tailSum T
	hwy.ProcessWithTail[T](n,
		func(offset int) {
			e := expVec(hwy.Sub(hwy.Load(s[offset:]), vmax))
			hwy.Store(e, dst[offset:])
			sum = hwy.Add(sum, e)
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				dst[i] = exp(s[i] - m)
				tailSum += dst[i]
			}
		},
	)

	ScaleTo(dst, 1/(hwy.ReduceSum(sum)+tailSum), dst)
}

// expVec applies exp to every lane of v.
func expVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var buf [hwy.MaxLanesBound]T
	lanes := buf[:v.NumLanes()]
	hwy.Store(v, lanes)
	for i, x := range lanes {
		lanes[i] = exp(x)
	}
	return hwy.Load(lanes)
}

func exp[T hwy.Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp(v))
	default:
		return T(math.Exp(float64(x)))
	}
}
