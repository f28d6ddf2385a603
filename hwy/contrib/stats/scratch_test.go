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
	"math/rand"
	rand2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScratchReleasedAfterMedian(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		start := liveScratch.Load()
		r := rand.New(rand.NewSource(14))
		for _, n := range []int{65, 66, 200, 1001, 4096} {
			x := randFloat64s(r, n)
			_, err := Median(x)
			require.NoError(t, err)
			assert.Equal(t, start, liveScratch.Load(), "n=%d", n)
		}
	})
}

func TestScratchReleasedWhenFirstRoundIsTerminal(t *testing.T) {
	start := liveScratch.Load()

	// Every element equals the pivot, so the first round answers.
	x := make([]uint32, 500)
	for i := range x {
		x[i] = 77
	}
	got := quickselect(x, 250, rand2.New(rand2.NewPCG(3, 4)))
	assert.Equal(t, uint32(77), got)
	assert.Equal(t, start, liveScratch.Load())
}

func TestScratchReleasedOnPanic(t *testing.T) {
	start := liveScratch.Load()
	x := make([]int32, 100)
	for i := range x {
		x[i] = int32(i)
	}
	// Rank 100 does not exist: the rounds shrink the buffer until the
	// selection indexes out of range and panics.
	assert.Panics(t, func() {
		quickselect(x, len(x), rand2.New(rand2.NewPCG(5, 6)))
	})
	assert.Equal(t, start, liveScratch.Load())
}

func TestScratchDoubleReleasePanics(t *testing.T) {
	s := acquire[float32](16)
	assert.Len(t, s.buf, 16)
	s.release()
	assert.Panics(t, s.release)

	b := borrow([]float32{1, 2})
	b.release()
	assert.Panics(t, b.release)
}

func TestScratchBorrowedNotRecycled(t *testing.T) {
	start := liveScratch.Load()
	caller := []int64{1, 2, 3}
	b := borrow(caller)
	b.release()
	assert.Equal(t, start, liveScratch.Load())
	assert.Equal(t, []int64{1, 2, 3}, caller)
}

func TestScratchReuse(t *testing.T) {
	s := acquire[int16](32)
	s.buf[0] = 5
	s.release()

	again := acquire[int16](8)
	defer again.release()
	assert.Len(t, again.buf, 8)
	assert.GreaterOrEqual(t, cap(again.buf), 8)
}

func TestReleaseLiveSkipsNilAndReleased(t *testing.T) {
	start := liveScratch.Load()
	a := acquire[float64](4)
	b := acquire[float64](4)
	b.release()
	releaseLive(a, nil, b)
	assert.False(t, a.live)
	assert.Equal(t, start, liveScratch.Load())
}
