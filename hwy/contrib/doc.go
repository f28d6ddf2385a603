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

// Package contrib groups the kernels built on the hwy lane layer.
//
// # Subpackages
//
//   - stats: mean, variance, covariance, correlation (and their all-pairs
//     matrices), histogram, median, quantile and mode
//   - vec: element-wise arithmetic, activations and reductions, plus the
//     owning Vector type
//   - sort: VQSort-style sorting, rank selection and copy partitioning
//   - workerpool: persistent goroutine pool for the parallel matrix kernels
//
// # Statistics (hwy/contrib/stats)
//
//	import "github.com/capnhook/hwystats/hwy/contrib/stats"
//
//	mean, err := stats.Mean(samples)
//	med, err := stats.Median(samples)
//
//	m := stats.NewMatrix(3)
//	err = stats.CorrMatrix(m, a, b, c)
//
// # Vectors (hwy/contrib/vec)
//
//	import "github.com/capnhook/hwystats/hwy/contrib/vec"
//
//	x := vec.FromSlice([]float32{1, 2, 3})
//	p := x.Softmax()
//	vec.AddTo(dst, a, b)
package contrib
