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

// Vector is a fixed-length, owning float buffer.
//
// The backing storage comes from hwy.AlignedAlloc: it starts on a 64-byte
// boundary and its capacity is padded to whole blocks. Only the first Len()
// elements are part of the vector.
//
// A Vector has exactly one owner. Clone makes an independent copy, Move
// transfers the buffer and leaves the source empty, Release drops it.
type Vector[T hwy.Floats] struct {
	data []T
}

// New returns a zeroed vector of n elements. n <= 0 yields an empty vector.
func New[T hwy.Floats](n int) *Vector[T] {
	return &Vector[T]{data: hwy.AlignedAlloc[T](n)}
}

// FromSlice returns a vector holding a copy of s.
func FromSlice[T hwy.Floats](s []T) *Vector[T] {
	v := New[T](len(s))
	copy(v.data, s)
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// Data returns a view of the live elements. Writes through the view modify
// the vector.
func (v *Vector[T]) Data() []T { return v.data }

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexError("At", i, len(v.data))
	}
	return v.data[i], nil
}

// Set stores x at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return indexError("Set", i, len(v.data))
	}
	v.data[i] = x
	return nil
}

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	vx := hwy.Set(x)
	hwy.ProcessWithTail[T](len(v.data),
		func(offset int) {
			hwy.Store(vx, v.data[offset:])
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				v.data[i] = x
			}
		},
	)
}

// Clone returns an independent copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSlice(v.data)
}

// Move transfers the buffer to a new Vector and leaves v empty.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{data: v.data}
	v.data = nil
	return out
}

// Release drops the buffer. The vector is empty afterwards.
func (v *Vector[T]) Release() {
	v.data = nil
}

func (v *Vector[T]) binary(op string, o *Vector[T], kernel func(dst, a, b []T)) (*Vector[T], error) {
	if len(v.data) != len(o.data) {
		return nil, lengthError(op, len(v.data), len(o.data))
	}
	out := New[T](len(v.data))
	kernel(out.data, v.data, o.data)
	return out, nil
}

func (v *Vector[T]) binaryInPlace(op string, o *Vector[T], kernel func(dst, a, b []T)) error {
	if len(v.data) != len(o.data) {
		return lengthError(op, len(v.data), len(o.data))
	}
	kernel(v.data, v.data, o.data)
	return nil
}

// Add returns v + o.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	return v.binary("Add", o, AddTo[T])
}

// Sub returns v - o.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return v.binary("Sub", o, SubTo[T])
}

// Mul returns the element-wise product of v and o.
func (v *Vector[T]) Mul(o *Vector[T]) (*Vector[T], error) {
	return v.binary("Mul", o, MulTo[T])
}

// Div returns the element-wise quotient of v and o.
func (v *Vector[T]) Div(o *Vector[T]) (*Vector[T], error) {
	return v.binary("Div", o, DivTo[T])
}

// AddInPlace adds o into v.
func (v *Vector[T]) AddInPlace(o *Vector[T]) error {
	return v.binaryInPlace("AddInPlace", o, AddTo[T])
}

// SubInPlace subtracts o from v.
func (v *Vector[T]) SubInPlace(o *Vector[T]) error {
	return v.binaryInPlace("SubInPlace", o, SubTo[T])
}

// MulInPlace multiplies v by o element-wise.
func (v *Vector[T]) MulInPlace(o *Vector[T]) error {
	return v.binaryInPlace("MulInPlace", o, MulTo[T])
}

// DivInPlace divides v by o element-wise.
func (v *Vector[T]) DivInPlace(o *Vector[T]) error {
	return v.binaryInPlace("DivInPlace", o, DivTo[T])
}

// Scale returns c * v.
func (v *Vector[T]) Scale(c T) *Vector[T] {
	out := New[T](len(v.data))
	ScaleTo(out.data, c, v.data)
	return out
}

// ScaleInPlace multiplies every element of v by c.
func (v *Vector[T]) ScaleInPlace(c T) {
	ScaleTo(v.data, c, v.data)
}

// ReLU returns max(0, v) element-wise.
func (v *Vector[T]) ReLU() *Vector[T] {
	out := New[T](len(v.data))
	ReLUTo(out.data, v.data)
	return out
}

// Exp returns e^v element-wise.
func (v *Vector[T]) Exp() *Vector[T] {
	out := New[T](len(v.data))
	ExpTo(out.data, v.data)
	return out
}

// Softmax returns the softmax of v. An empty vector yields an empty result.
func (v *Vector[T]) Softmax() *Vector[T] {
	out := New[T](len(v.data))
	SoftmaxTo(out.data, v.data)
	return out
}

// Sum returns the sum of the elements, 0 for an empty vector.
func (v *Vector[T]) Sum() T {
	return Sum(v.data)
}

// Mean returns the arithmetic mean.
func (v *Vector[T]) Mean() (T, error) {
	if len(v.data) == 0 {
		return 0, opError("Mean", ErrEmpty)
	}
	return Sum(v.data) / T(len(v.data)), nil
}

// Max returns the largest element.
func (v *Vector[T]) Max() (T, error) {
	if len(v.data) == 0 {
		return 0, opError("Max", ErrEmpty)
	}
	return Max(v.data), nil
}

// Min returns the smallest element.
func (v *Vector[T]) Min() (T, error) {
	if len(v.data) == 0 {
		return 0, opError("Min", ErrEmpty)
	}
	return Min(v.data), nil
}
