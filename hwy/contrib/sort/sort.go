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

// sortInsertionThreshold: use insertion sort for arrays this size or smaller.
const sortInsertionThreshold = 32

// Sort sorts data in-place in ascending order.
func Sort[T hwy.Lanes](data []T) {
	VQSort(data)
}

// VQSort sorts data in-place using vectorized quicksort.
// This is an introsort variant that combines:
//   - Insertion sort for small arrays
//   - Lane-parallel 3-way partitioning for larger arrays
//   - Heapsort fallback for worst-case guarantee
func VQSort[T hwy.Lanes](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	sortImpl(data, introDepth(n))
}

// introDepth returns 2*(floor(log2(n))+1), the introsort recursion budget.
func introDepth(n int) int {
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	return maxDepth * 2
}

// sortImpl is the recursive implementation of VQSort.
func sortImpl[T hwy.Lanes](data []T, depthLimit int) {
	for {
		n := len(data)
		if n <= sortInsertionThreshold {
			InsertionSortSmall(data)
			return
		}

		// Fallback to heapsort if recursion too deep
		if depthLimit == 0 {
			sortHeap(data)
			return
		}
		depthLimit--

		pivot := PivotSampled(data)
		lt, gt := Partition3Way(data, pivot)

		// Recurse into the smaller side, loop on the larger one.
		if lt < n-gt {
			sortImpl(data[:lt], depthLimit)
			data = data[gt:]
		} else {
			sortImpl(data[gt:], depthLimit)
			data = data[:lt]
		}
	}
}

// sortHeap is heapsort for O(n log n) worst-case guarantee.
func sortHeap[T hwy.Lanes](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T hwy.Lanes](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && data[left] > data[largest] {
			largest = left
		}
		if right < n && data[right] > data[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// NthElement rearranges data such that the element at index k
// is the element that would be at that position if data were sorted.
// Elements before k are <= data[k], elements after are >= data[k].
// Out-of-range k leaves data untouched.
func NthElement[T hwy.Lanes](data []T, k int) {
	n := len(data)
	if k < 0 || k >= n {
		return
	}
	nthElementImpl(data, k, introDepth(n))
}

func nthElementImpl[T hwy.Lanes](data []T, k, depthLimit int) {
	for {
		n := len(data)
		if n <= 1 {
			return
		}
		if depthLimit == 0 || n <= sortInsertionThreshold {
			VQSort(data)
			return
		}
		depthLimit--

		pivot := PivotSampled(data)
		lt, gt := Partition3Way(data, pivot)

		switch {
		case k < lt:
			data = data[:lt]
		case k >= gt:
			data = data[gt:]
			k -= gt
		default:
			// k is in the equal partition - done
			return
		}
	}
}

// Select returns the k-th smallest element (0-based) of data, reordering
// data as NthElement does. It panics if k is out of range.
func Select[T hwy.Lanes](data []T, k int) T {
	if k < 0 || k >= len(data) {
		panic("sort: Select rank out of range")
	}
	NthElement(data, k)
	return data[k]
}
