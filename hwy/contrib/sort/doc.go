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

// Package sort provides vectorized sorting, rank selection and partitioning
// over every hwy lane type.
//
// # Algorithm
//
// VQSort is an introsort variant that combines:
//   - Insertion sort for small subarrays
//   - Lane-parallel 3-way quicksort partitioning for larger arrays
//   - Heapsort fallback to guarantee O(n log n) worst case
//
// NthElement reuses the same partition step to place the k-th order
// statistic without sorting the whole slice. PartitionInto is the
// out-of-place variant used by selection algorithms that must not touch
// their input: it compacts the elements below and above a pivot into two
// separate buffers with hwy.CompressStore.
//
// # Example Usage
//
//	import "github.com/capnhook/hwystats/hwy/contrib/sort"
//
//	func Middle(data []float32) float32 {
//	    k := len(data) / 2
//	    sort.NthElement(data, k)
//	    return data[k]
//	}
//
// All functions sort in place in ascending order. NaN values compare false
// against everything, so their final position is unspecified.
package sort
