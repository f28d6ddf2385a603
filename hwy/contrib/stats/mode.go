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
	"github.com/capnhook/hwystats/hwy"
	"github.com/capnhook/hwystats/hwy/contrib/sort"
	"github.com/capnhook/hwystats/hwy/contrib/vec"
)

// maxBucketRange is the widest integer value range (max - min) counted with
// one bucket per value.
const maxBucketRange = 65535

// Mode returns the most frequent value in x. Ties resolve to the smaller
// value.
func Mode[T hwy.Lanes](x []T) (T, error) {
	v, _, err := modeCount("Mode", x)
	return v, err
}

// ModeCount returns the most frequent value in x and how often it occurs.
// Ties resolve to the smaller value. NaN values are never counted; if x
// holds nothing but NaN, ModeCount returns x[0] with count 1.
func ModeCount[T hwy.Lanes](x []T) (T, int, error) {
	return modeCount("ModeCount", x)
}

func modeCount[T hwy.Lanes](op string, x []T) (T, int, error) {
	switch len(x) {
	case 0:
		return 0, 0, emptyInput(op)
	case 1:
		return x[0], 1, nil
	}

	if isInteger[T]() {
		lo, hi := vec.MinMax(x)
		span := uint64(hi-lo) & widthMask[T]()
		if span <= maxBucketRange {
			traceMode(op, len(x), "buckets")
			v, c := modeBuckets(x, lo, span)
			return v, c, nil
		}
	}
	traceMode(op, len(x), "sort")
	v, c := modeSorted(x)
	return v, c, nil
}

func traceMode(op string, n int, path string) {
	if debugEnabled() {
		logDebug("mode path", "op", op, "n", n, "path", path)
	}
}

// modeBuckets counts integer values into span+1 buckets offset by lo.
func modeBuckets[T hwy.Lanes](x []T, lo T, span uint64) (T, int) {
	mask := widthMask[T]()
	counts := make([]uint32, span+1)
	vlo := hwy.Set(lo)
	var buf [hwy.MaxLanesBound]T
	forEachGroup[T](len(x),
		func(offset int) {
			d := hwy.Sub(hwy.Load(x[offset:]), vlo)
			offsets := buf[:d.NumLanes()]
			hwy.Store(d, offsets)
			for _, o := range offsets {
				counts[uint64(o)&mask]++
			}
		},
		func(i int) {
			counts[uint64(x[i]-lo)&mask]++
		},
	)

	// Arg-max: the first bucket holding the largest count is the smallest
	// value among the tied ones.
	best := vec.Max(counts)
	idx := firstIndexOf(counts, best)
	return lo + T(idx), int(best)
}

// modeSorted sorts a private copy and scans it for the longest run. Strict
// comparison keeps the earliest, smallest, value among equally long runs.
func modeSorted[T hwy.Lanes](x []T) (T, int) {
	work := make([]T, len(x))
	n := compactNonNaN(work, x)
	if n == 0 {
		return x[0], 1
	}
	work = work[:n]
	sort.Sort(work)

	// Runs end where neighbours differ. A lane group compares work[i+1]
	// with work[i] for every boundary i it covers.
	best, bestCount := work[0], 0
	start := 0
	closeRun := func(end int) {
		if end-start > bestCount {
			best, bestCount = work[start], end-start
		}
		start = end
	}
	forEachGroup[T](n-1,
		func(offset int) {
			diff := hwy.NotEqual(hwy.Load(work[offset+1:]), hwy.Load(work[offset:]))
			if hwy.AllFalse(diff) {
				return
			}
			for j := range diff.NumLanes() {
				if diff.GetBit(j) {
					closeRun(offset + j + 1)
				}
			}
		},
		func(i int) {
			if work[i+1] != work[i] {
				closeRun(i + 1)
			}
		},
	)
	closeRun(n)
	return best, bestCount
}

// compactNonNaN copies the non-NaN elements of src to dst in order and
// returns how many were copied. dst must be at least as long as src.
func compactNonNaN[T hwy.Lanes](dst, src []T) int {
	if !isFloat[T]() {
		return copy(dst, src)
	}
	n := 0
	forEachGroup[T](len(src),
		func(offset int) {
			v := hwy.Load(src[offset:])
			n += hwy.CompressStore(v, hwy.Equal(v, v), dst[n:])
		},
		func(i int) {
			if src[i] == src[i] {
				dst[n] = src[i]
				n++
			}
		},
	)
	return n
}
