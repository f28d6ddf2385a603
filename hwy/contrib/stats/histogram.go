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

	"github.com/capnhook/hwystats/hwy"
)

// centerTolerance is the relative distance within which a value matches a
// bin center.
const centerTolerance = 1e-6

// Histogram counts values into bins and overwrites counts with the result.
//
// The interpretation of bins depends on len(counts):
//
//   - len(bins) == len(counts)+1: bins are edges; counts[b] is the number of
//     values in [bins[b], bins[b+1]). Values outside every interval are
//     dropped.
//   - len(bins) == len(counts): bins are centers; counts[b] is the number of
//     values x with |x - bins[b]| <= |bins[b]|*1e-6. For integer types this
//     is exact equality whenever |bins[b]| < 1e6.
//
// Any other length of counts is a ShapeMismatch. Empty values or bins leave
// counts untouched. NaN values never match a bin.
func Histogram[T hwy.Lanes](values, bins []T, counts []uint64) error {
	if len(values) == 0 || len(bins) == 0 {
		return nil
	}

	switch len(bins) {
	case len(counts) + 1:
		for b := range counts {
			counts[b] = countInRange(values, bins[b], bins[b+1])
		}
	case len(counts):
		for b, c := range bins {
			counts[b] = countNear(values, c)
		}
	default:
		return newError("Histogram", KindShapeMismatch,
			"%d bins need %d (centers) or %d (edges) counts, got %d",
			len(bins), len(bins), len(bins)-1, len(counts))
	}
	return nil
}

// countInRange counts values in the half-open interval [lo, hi).
func countInRange[T hwy.Lanes](values []T, lo, hi T) uint64 {
	vlo, vhi := hwy.Set(lo), hwy.Set(hi)
	var count uint64
	forEachGroup[T](len(values),
		func(offset int) {
			v := hwy.Load(values[offset:])
			in := hwy.MaskAnd(hwy.GreaterEqual(v, vlo), hwy.LessThan(v, vhi))
			count += uint64(hwy.CountTrue(in))
		},
		func(i int) {
			if x := values[i]; x >= lo && x < hi {
				count++
			}
		},
	)
	return count
}

// countNear counts values within the relative tolerance of center c.
func countNear[T hwy.Lanes](values []T, c T) uint64 {
	tol := T(math.Abs(float64(c)) * centerTolerance)

	if isFloat[T]() {
		vc, vtol := hwy.Set(c), hwy.Set(tol)
		var count uint64
		forEachGroup[T](len(values),
			func(offset int) {
				d := hwy.Abs(hwy.Sub(hwy.Load(values[offset:]), vc))
				count += uint64(hwy.CountTrue(hwy.LessEqual(d, vtol)))
			},
			func(i int) {
				d := values[i] - c
				if d < 0 {
					d = -d
				}
				if d <= tol {
					count++
				}
			},
		)
		return count
	}

	// Integers: the closed range [c-tol, c+tol]. tol <= |c|, so at most one
	// end can wrap; a wrapped end is treated as unbounded.
	lo, hi := c-tol, c+tol
	lowBounded, highBounded := lo <= c, hi >= c
	vlo, vhi := hwy.Set(lo), hwy.Set(hi)
	var count uint64
	forEachGroup[T](len(values),
		func(offset int) {
			v := hwy.Load(values[offset:])
			in := hwy.FirstN[T](v.NumLanes())
			if lowBounded {
				in = hwy.MaskAnd(in, hwy.GreaterEqual(v, vlo))
			}
			if highBounded {
				in = hwy.MaskAnd(in, hwy.LessEqual(v, vhi))
			}
			count += uint64(hwy.CountTrue(in))
		},
		func(i int) {
			x := values[i]
			if (!lowBounded || x >= lo) && (!highBounded || x <= hi) {
				count++
			}
		},
	)
	return count
}
