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

package sort

import "github.com/capnhook/hwystats/hwy"

// Partition3Way performs in-place 3-way partitioning around a pivot.
// Returns (lt, gt) indices where:
//   - data[0:lt] < pivot
//   - data[lt:gt] == pivot
//   - data[gt:n] > pivot
//
// Whole lane groups that are uniformly below, above or equal to the pivot
// are moved as groups; mixed groups fall back to the scalar flag algorithm.
func Partition3Way[T hwy.Lanes](data []T, pivot T) (int, int) {
	n := len(data)
	if n == 0 {
		return 0, 0
	}

	lanes := hwy.MaxLanes[T]()

	// For small arrays, use scalar directly
	if n < lanes*4 {
		return scalarPartition3Way(data, pivot, 0, 0, n)
	}

	pivotVec := hwy.Set(pivot)

	lt := 0
	gt := n
	i := 0

	for i+lanes <= gt {
		// gt swaps need a whole group between i and gt
		if gt-lanes < i+lanes {
			break
		}

		v := hwy.Load(data[i:])
		maskLess := hwy.LessThan(v, pivotVec)
		maskGreater := hwy.GreaterThan(v, pivotVec)

		if hwy.AllTrue(maskLess) {
			if lt == i {
				lt += lanes
				i += lanes
				continue
			}
			if lt+lanes <= i {
				// data[lt:lt+lanes] is all equal to the pivot
				vLt := hwy.Load(data[lt:])
				hwy.Store(v, data[lt:])
				hwy.Store(vLt, data[i:])
				lt += lanes
				i += lanes
				continue
			}
			break
		}

		if hwy.AllTrue(maskGreater) {
			gt -= lanes
			vGt := hwy.Load(data[gt:])
			hwy.Store(v, data[gt:])
			hwy.Store(vGt, data[i:])
			continue
		}

		if hwy.AllFalse(maskLess) && hwy.AllFalse(maskGreater) {
			i += lanes
			continue
		}

		// Mixed group: settle its elements one by one, then resume groups.
		end := min(i+lanes, gt)
		for i < end {
			if data[i] < pivot {
				data[lt], data[i] = data[i], data[lt]
				lt++
				i++
			} else if data[i] > pivot {
				gt--
				data[i], data[gt] = data[gt], data[i]
				if gt < end {
					end = gt
				}
			} else {
				i++
			}
		}
	}

	return scalarPartition3Way(data, pivot, lt, i, gt)
}

// PartitionInto copies the elements of src that are below pivot to the front
// of lo and the elements above pivot to the front of hi, preserving their
// relative order. Elements equal to pivot are not copied; their number is
// len(src) - nLo - nHi. src is not modified.
//
// Each lane group is split with two compress-stores; the tail is scalar.
// lo and hi must each hold at least len(src) elements.
func PartitionInto[T hwy.Lanes](src []T, pivot T, lo, hi []T) (nLo, nHi int) {
	if len(lo) < len(src) || len(hi) < len(src) {
		panic("sort: PartitionInto destination shorter than source")
	}

	pivotVec := hwy.Set(pivot)
	hwy.ProcessWithTail[T](len(src),
		func(offset int) {
			v := hwy.Load(src[offset:])
			nLo += hwy.CompressStore(v, hwy.LessThan(v, pivotVec), lo[nLo:])
			nHi += hwy.CompressStore(v, hwy.GreaterThan(v, pivotVec), hi[nHi:])
		},
		func(offset, count int) {
			for _, x := range src[offset : offset+count] {
				if x < pivot {
					lo[nLo] = x
					nLo++
				} else if x > pivot {
					hi[nHi] = x
					nHi++
				}
			}
		},
	)
	return nLo, nHi
}
