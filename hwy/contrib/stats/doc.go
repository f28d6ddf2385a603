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

// Package stats provides descriptive statistics over contiguous numeric
// slices, computed with hwy lane groups.
//
// # Aggregation
//
//   - Mean, Variance, StdDev: one buffer, computed in the element type
//   - Covariance, Correlation: two buffers, computed in float64
//   - CovMatrix, CorrMatrix: all pairs of N buffers into a symmetric Matrix
//   - ParallelCovMatrix, ParallelCorrMatrix: the same, rows spread over a
//     workerpool.Pool
//
// # Binning
//
// Histogram counts values per bin, where the bins are either K centers
// (tolerance match) or K+1 edges (half-open intervals).
//
// # Selection
//
//   - Median: insertion sort below one lane group, rank selection up to 64
//     elements, randomized lane-parallel quickselect above
//   - Quantile: linear interpolation between order statistics
//   - Mode, ModeCount: bucket counting for narrow integer ranges,
//     sort-and-scan otherwise; ties resolve to the smaller value
//
// Every kernel processes whole lane groups first and the remaining tail
// elements last, so results for a given lane width are reproducible.
// Input slices are never modified; selection kernels work on private copies.
//
// Errors are *Error values that match ErrEmptyInput, ErrShapeMismatch,
// ErrInsufficientSamples or ErrInvalidArgument under errors.Is.
package stats
