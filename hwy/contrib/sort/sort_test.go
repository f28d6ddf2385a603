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

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/capnhook/hwystats/hwy"
)

var testSizes = []int{0, 1, 7, 8, 15, 16, 31, 32, 33, 63, 64, 65, 100, 256, 1000}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	var empty []float32
	Sort(empty)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) should not modify empty slice")
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	data := []float32{42.0}
	Sort(data)
	if data[0] != 42.0 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

func TestSortPatterns(t *testing.T) {
	tests := []struct {
		name string
		data []float32
	}{
		{"sorted", []float32{1, 2, 3, 4, 5, 6, 7, 8}},
		{"reverse", []float32{8, 7, 6, 5, 4, 3, 2, 1}},
		{"duplicates", []float32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"allSame", []float32{5, 5, 5, 5, 5, 5, 5, 5}},
	}
	for _, tt := range tests {
		Sort(tt.data)
		if !IsSorted(tt.data) {
			t.Errorf("Sort(%s) produced unsorted result: %v", tt.name, tt.data)
		}
	}
}

func testSortMatchesStdlib[T hwy.Lanes](t *testing.T, gen func(r *rand.Rand) T) {
	r := rand.New(rand.NewSource(1))
	for _, n := range testSizes {
		data := make([]T, n)
		for i := range data {
			data[i] = gen(r)
		}
		want := slices.Clone(data)
		slices.Sort(want)
		Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("Sort(%T, n=%d) differs from slices.Sort", data, n)
		}
	}
}

func TestSortMatchesStdlib(t *testing.T) {
	for _, width := range []int{16, 32, 64} {
		t.Run(fmt.Sprintf("width=%d", width), func(t *testing.T) {
			defer hwy.SetVectorBytesForTesting(width)()
			testSortMatchesStdlib(t, func(r *rand.Rand) float32 { return r.Float32() * 1000 })
			testSortMatchesStdlib(t, func(r *rand.Rand) float64 { return r.NormFloat64() })
			testSortMatchesStdlib(t, func(r *rand.Rand) int32 { return r.Int31n(50) - 25 })
			testSortMatchesStdlib(t, func(r *rand.Rand) int64 { return r.Int63() })
			testSortMatchesStdlib(t, func(r *rand.Rand) int8 { return int8(r.Intn(256) - 128) })
			testSortMatchesStdlib(t, func(r *rand.Rand) uint16 { return uint16(r.Intn(1 << 16)) })
			testSortMatchesStdlib(t, func(r *rand.Rand) uint8 { return uint8(r.Intn(4)) })
		})
	}
}

func TestSortHeapFallback(t *testing.T) {
	data := make([]int32, 500)
	for i := range data {
		data[i] = int32(len(data) - i)
	}
	sortImpl(data, 0)
	if !IsSorted(data) {
		t.Error("sortImpl with exhausted depth did not sort")
	}
}

func TestPartition3Way(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, n := range testSizes {
		data := make([]int32, n)
		for i := range data {
			data[i] = r.Int31n(10)
		}
		pivot := int32(5)
		lt, gt := Partition3Way(data, pivot)
		for i := 0; i < lt; i++ {
			if data[i] >= pivot {
				t.Fatalf("n=%d: data[%d]=%d not < pivot", n, i, data[i])
			}
		}
		for i := lt; i < gt; i++ {
			if data[i] != pivot {
				t.Fatalf("n=%d: data[%d]=%d not == pivot", n, i, data[i])
			}
		}
		for i := gt; i < n; i++ {
			if data[i] <= pivot {
				t.Fatalf("n=%d: data[%d]=%d not > pivot", n, i, data[i])
			}
		}
	}
}

func TestPartitionInto(t *testing.T) {
	for _, width := range []int{16, 32, 64} {
		defer hwy.SetVectorBytesForTesting(width)()
		r := rand.New(rand.NewSource(3))
		for _, n := range testSizes {
			src := make([]float64, n)
			for i := range src {
				src[i] = float64(r.Intn(20))
			}
			orig := slices.Clone(src)
			lo := make([]float64, n)
			hi := make([]float64, n)
			pivot := float64(10)

			nLo, nHi := PartitionInto(src, pivot, lo, hi)

			var wantLo, wantHi []float64
			for _, x := range src {
				if x < pivot {
					wantLo = append(wantLo, x)
				} else if x > pivot {
					wantHi = append(wantHi, x)
				}
			}
			if !slices.Equal(lo[:nLo], wantLo) || !slices.Equal(hi[:nHi], wantHi) {
				t.Errorf("width=%d n=%d: PartitionInto split differs", width, n)
			}
			if !slices.Equal(src, orig) {
				t.Errorf("width=%d n=%d: PartitionInto modified its source", width, n)
			}
		}
	}
}

func TestPartitionIntoShortDestination(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PartitionInto with short destination did not panic")
		}
	}()
	PartitionInto([]int32{1, 2, 3}, 2, make([]int32, 1), make([]int32, 3))
}

func TestNthElement(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, n := range testSizes {
		if n == 0 {
			continue
		}
		data := make([]float32, n)
		for i := range data {
			data[i] = r.Float32()
		}
		sorted := slices.Clone(data)
		slices.Sort(sorted)

		for _, k := range []int{0, n / 2, n - 1} {
			work := slices.Clone(data)
			NthElement(work, k)
			if work[k] != sorted[k] {
				t.Errorf("n=%d: NthElement(k=%d) = %v, want %v", n, k, work[k], sorted[k])
			}
			for i := 0; i < k; i++ {
				if work[i] > work[k] {
					t.Fatalf("n=%d k=%d: work[%d]=%v > pivot", n, k, i, work[i])
				}
			}
			for i := k + 1; i < n; i++ {
				if work[i] < work[k] {
					t.Fatalf("n=%d k=%d: work[%d]=%v < pivot", n, k, i, work[i])
				}
			}
		}
	}
}

func TestNthElementOutOfRange(t *testing.T) {
	data := []int64{3, 1, 2}
	NthElement(data, 5)
	NthElement(data, -1)
	if !slices.Equal(data, []int64{3, 1, 2}) {
		t.Errorf("NthElement out of range modified data: %v", data)
	}
}

func TestSelect(t *testing.T) {
	if got := Select([]uint32{9, 3, 7, 1}, 2); got != 7 {
		t.Errorf("Select(k=2) = %d, want 7", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Select out of range did not panic")
		}
	}()
	Select([]uint32{1}, 1)
}

func TestPivotSampled(t *testing.T) {
	data := []float32{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	p := PivotSampled(data)
	if p < 2 || p > 7 {
		t.Errorf("PivotSampled = %v, want a central sample", p)
	}
	if got := PivotMedianOf3([]float32{3, 1, 2}); got != 2 {
		t.Errorf("PivotMedianOf3 = %v, want 2", got)
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int32{}) || !IsSorted([]int32{1, 1, 2}) {
		t.Error("IsSorted rejected sorted input")
	}
	if IsSorted([]int32{2, 1}) {
		t.Error("IsSorted accepted unsorted input")
	}
}
