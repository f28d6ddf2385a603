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
	"errors"
	"fmt"
)

// Kind classifies a statistics error.
type Kind int

const (
	// KindEmptyInput means a required buffer had no elements.
	KindEmptyInput Kind = iota + 1
	// KindShapeMismatch means buffer or output lengths disagree.
	KindShapeMismatch
	// KindInsufficientSamples means too few buffers were supplied.
	KindInsufficientSamples
	// KindInvalidArgument means a scalar parameter is out of range.
	KindInvalidArgument
)

var (
	// ErrEmptyInput is matched by errors of kind KindEmptyInput.
	ErrEmptyInput = errors.New("empty input")

	// ErrShapeMismatch is matched by errors of kind KindShapeMismatch.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInsufficientSamples is matched by errors of kind KindInsufficientSamples.
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrInvalidArgument is matched by errors of kind KindInvalidArgument.
	ErrInvalidArgument = errors.New("invalid argument")
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "EmptyInput"
	case KindShapeMismatch:
		return "ShapeMismatch"
	case KindInsufficientSamples:
		return "InsufficientSamples"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindEmptyInput:
		return ErrEmptyInput
	case KindShapeMismatch:
		return ErrShapeMismatch
	case KindInsufficientSamples:
		return ErrInsufficientSamples
	case KindInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// Error is returned by every fallible kernel in this package.
type Error struct {
	Op   string // kernel name, e.g. "Variance"
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("stats: %s: %s", e.Op, e.Msg)
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(op string, kind Kind, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func emptyInput(op string) error {
	return newError(op, KindEmptyInput, "input has no elements")
}
