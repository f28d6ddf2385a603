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
	"math/rand/v2"
	"slices"

	"github.com/capnhook/hwystats/hwy"
	"github.com/capnhook/hwystats/hwy/contrib/sort"
	"github.com/capnhook/hwystats/hwy/contrib/vec"
)

// smallMedianThreshold: inputs up to this size use rank selection on a
// single private copy instead of quickselect.
const smallMedianThreshold = 64

// Quickselect pivot stream seeds. Fixed so results and timings repeat.
const (
	pivotSeed1 = 0x9e3779b97f4a7c15
	pivotSeed2 = 0xbf58476d1ce4e5b9
)

// Median returns the median of x. For an even count it is the average of
// the two central order statistics: a/2 + b/2 for floats, the truncated
// float64 average for integers.
//
// If T is a float type and x holds a NaN, the result is NaN.
func Median[T hwy.Lanes](x []T) (T, error) {
	n := len(x)
	switch n {
	case 0:
		return 0, emptyInput("Median")
	case 1:
		return x[0], nil
	}
	if hasNaN(x) {
		return nan[T](), nil
	}

	lanes := hwy.MaxLanes[T]()
	switch {
	case n < lanes:
		traceMedian(n, lanes, "insertion")
		return medianSmall(x), nil
	case n <= smallMedianThreshold:
		traceMedian(n, lanes, "select")
		return medianSelect(x), nil
	default:
		traceMedian(n, lanes, "quickselect")
		rng := rand.New(rand.NewPCG(pivotSeed1, pivotSeed2))
		hi := quickselect(x, n/2, rng)
		if n%2 == 1 {
			return hi, nil
		}
		return average(quickselect(x, n/2-1, rng), hi), nil
	}
}

func traceMedian(n, lanes int, tier string) {
	if debugEnabled() {
		logDebug("median tier", "op", "Median", "n", n, "lanes", lanes, "tier", tier)
	}
}

// average combines the two central order statistics a <= b. Integers round
// toward zero and never overflow, even at the ends of the range of T.
func average[T hwy.Lanes](a, b T) T {
	if isFloat[T]() {
		return a/2 + b/2
	}
	if isSigned[T]() {
		x, y := int64(a), int64(b)
		m := (x & y) + ((x ^ y) >> 1) // floor((x+y)/2)
		if m < 0 && (x^y)&1 != 0 {
			m++
		}
		return T(m)
	}
	x, y := uint64(a), uint64(b)
	return T((x & y) + ((x ^ y) >> 1))
}

// medianSmall handles inputs shorter than one lane group on the stack.
func medianSmall[T hwy.Lanes](x []T) T {
	var buf [hwy.MaxLanesBound]T
	n := copy(buf[:], x)
	work := buf[:n]
	sort.InsertionSortSmall(work)
	if n%2 == 1 {
		return work[n/2]
	}
	return average(work[n/2-1], work[n/2])
}

// medianSelect runs one rank selection on a private copy. For even n the
// lower central value is the maximum of the part left of rank n/2.
func medianSelect[T hwy.Lanes](x []T) T {
	n := len(x)
	work := slices.Clone(x)
	hi := sort.Select(work, n/2)
	if n%2 == 1 {
		return hi
	}
	return average(vec.Max(work[:n/2]), hi)
}

// quickselect returns the k-th smallest element of x without modifying it.
//
// Each round draws a pivot, copies the elements below and above it into
// two fresh owned buffers and counts the equal ones. The round keeps the
// side that holds rank k, or stops when k falls among the equal elements.
// The caller's buffer enters as a borrowed token; every owned buffer is
// released before return, including on panic.
func quickselect[T hwy.Lanes](x []T, k int, rng *rand.Rand) T {
	cur := borrow(x)
	var below, above *scratch[T]
	defer func() {
		releaseLive(cur, below, above)
	}()

	for {
		n := len(cur.buf)
		if n <= smallMedianThreshold && cur.owned {
			return sort.Select(cur.buf, k)
		}

		pivot := cur.buf[rng.IntN(n)]
		below, above = acquire[T](n), acquire[T](n)
		nBelow, nAbove := sort.PartitionInto(cur.buf, pivot, below.buf, above.buf)
		nEqual := n - nBelow - nAbove

		switch {
		case k < nBelow:
			below.truncate(nBelow)
			cur.release()
			above.release()
			cur, below, above = below, nil, nil
		case k >= nBelow+nEqual:
			k -= nBelow + nEqual
			above.truncate(nAbove)
			cur.release()
			below.release()
			cur, below, above = above, nil, nil
		default:
			return pivot
		}
	}
}

// Quantile returns the q-th quantile of x, 0 <= q <= 1, interpolating
// linearly between the two order statistics around rank q*(len(x)-1).
// Quantile(x, 0.5) equals the median for odd lengths.
//
// If T is a float type and x holds a NaN, the result is NaN.
func Quantile[T hwy.Lanes](x []T, q float64) (float64, error) {
	if len(x) == 0 {
		return 0, emptyInput("Quantile")
	}
	if !(q >= 0 && q <= 1) {
		return 0, newError("Quantile", KindInvalidArgument, "q must be in [0, 1], got %v", q)
	}
	if hasNaN(x) {
		return math.NaN(), nil
	}

	pos := q * float64(len(x)-1)
	lo := int(pos)
	frac := pos - float64(lo)

	work := slices.Clone(x)
	a := float64(sort.Select(work, lo))
	if frac == 0 || lo+1 >= len(work) {
		return a, nil
	}
	b := float64(vec.Min(work[lo+1:]))
	return a + frac*(b-a), nil
}
