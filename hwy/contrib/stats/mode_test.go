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
	"math/rand"
	"slices"
	"testing"

	"github.com/capnhook/hwystats/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceMode counts with a map and breaks ties toward the smaller value.
func referenceMode[T int8 | int32 | int64 | uint16 | float32 | float64](x []T) (T, int) {
	counts := map[T]int{}
	for _, v := range x {
		counts[v]++
	}
	keys := make([]T, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	best, bestCount := keys[0], 0
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best, bestCount
}

func TestModeUnique(t *testing.T) {
	m, err := Mode([]int32{4, 1, 4, 2, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, int32(4), m)

	f, err := Mode([]float64{0.5, 2.5, 2.5, -1})
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)
}

func TestModeTiesPreferSmaller(t *testing.T) {
	// Bucket path.
	m, err := Mode([]int32{9, 3, 9, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, int32(3), m)

	// Sort path: range exceeds the bucket limit.
	big, err := Mode([]int64{1 << 40, -7, 1 << 40, -7, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(-7), big)

	// Floats always take the sort path.
	f, err := Mode([]float32{2, 1, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, float32(1), f)
}

func TestModeBothPathsAgree(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		r := rand.New(rand.NewSource(12))
		for _, n := range laneSizes[int32]() {
			narrow := make([]int32, n)
			wide := make([]int64, n)
			for i := range narrow {
				v := r.Int31n(20) - 10
				narrow[i] = v
				wide[i] = int64(v) * (1 << 33)
			}

			v, c, err := ModeCount(narrow)
			require.NoError(t, err)
			wv, wc := referenceMode(narrow)
			assert.Equal(t, wv, v, "n=%d", n)
			assert.Equal(t, wc, c, "n=%d", n)

			bv, bc, err := ModeCount(wide)
			require.NoError(t, err)
			assert.Equal(t, int64(v)*(1<<33), bv, "n=%d", n)
			assert.Equal(t, c, bc, "n=%d", n)
		}
	})
}

func TestModeFullInt8Range(t *testing.T) {
	x := make([]int8, 0, 600)
	for v := -128; v <= 127; v++ {
		x = append(x, int8(v))
	}
	x = append(x, 127, 127, -128)
	v, c, err := ModeCount(x)
	require.NoError(t, err)
	assert.Equal(t, int8(127), v)
	assert.Equal(t, 3, c)
}

func TestModeUint16FullRange(t *testing.T) {
	x := []uint16{0, 65535, 65535, 0, 65535}
	v, c, err := ModeCount(x)
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), v)
	assert.Equal(t, 3, c)
}

func TestModeSortPathRuns(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		r := rand.New(rand.NewSource(13))
		for _, n := range laneSizes[float64]() {
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(r.Intn(6)) / 4
			}
			v, c, err := ModeCount(x)
			require.NoError(t, err)
			wv, wc := referenceMode(x)
			assert.Equal(t, wv, v, "n=%d", n)
			assert.Equal(t, wc, c, "n=%d", n)
		}
	})
}

func TestModeNaN(t *testing.T) {
	nan := math.NaN()
	v, c, err := ModeCount([]float64{nan, 3, nan, nan, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, 2, c)

	v, c, err = ModeCount([]float64{nan, nan})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
	assert.Equal(t, 1, c)
}

func TestModeEdgeCases(t *testing.T) {
	_, err := Mode([]int32{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, _, err = ModeCount([]float32{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Contains(t, err.Error(), "stats: ModeCount")

	v, c, err := ModeCount([]uint8{200})
	require.NoError(t, err)
	assert.Equal(t, uint8(200), v)
	assert.Equal(t, 1, c)
}

func TestModeLogsPath(t *testing.T) {
	logs := captureLogs(t)
	_, err := Mode([]int32{1, 2, 2})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "path=buckets")
	_, err = Mode([]float32{1, 2, 2})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "path=sort")
}

func TestModeRunsAcrossGroups(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		l := hwy.MaxLanes[float64]()
		var x []float64
		for _, run := range []struct {
			v float64
			n int
		}{{3, l}, {1, l + 1}, {2, l + 1}, {0.5, 1}} {
			for range run.n {
				x = append(x, run.v)
			}
		}
		v, c, err := ModeCount(x)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
		assert.Equal(t, l+1, c)
	})
}

func TestFirstIndexOf(t *testing.T) {
	forEachWidth(t, func(t *testing.T) {
		for _, n := range laneSizes[uint32]() {
			s := make([]uint32, n)
			assert.Equal(t, -1, firstIndexOf(s, 7), "n=%d", n)
			s[n-1] = 7
			assert.Equal(t, n-1, firstIndexOf(s, 7), "n=%d", n)
			s[n/2] = 7
			assert.Equal(t, n/2, firstIndexOf(s, 7), "n=%d", n)
		}
	})
}
