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
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when two vectors of different lengths are combined.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrIndexOutOfRange is returned by bounds-checked element access.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmpty is returned by reductions that are undefined on an empty vector.
	ErrEmpty = errors.New("empty vector")
)

func opError(op string, err error) error {
	return fmt.Errorf("vec: %s: %w", op, err)
}

func lengthError(op string, want, got int) error {
	return fmt.Errorf("vec: %s: %w: %d != %d", op, ErrLengthMismatch, want, got)
}

func indexError(op string, i, n int) error {
	return fmt.Errorf("vec: %s: %w: index %d, length %d", op, ErrIndexOutOfRange, i, n)
}
