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
	"github.com/capnhook/hwystats/hwy/contrib/workerpool"
)

// Matrix is a dense row-major float64 matrix.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) *Matrix {
	return &Matrix{Rows: n, Cols: n, Data: make([]float64, n*n)}
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

// pairKernel computes one cell of a pairwise matrix.
type pairKernel[T hwy.Lanes] func(a, b []T, ma, mb moments) float64

// pairMatrix holds validated inputs for an all-pairs computation.
type pairMatrix[T hwy.Lanes] struct {
	out    *Matrix
	bufs   [][]T
	stats  []moments
	kernel pairKernel[T]
}

func newPairMatrix[T hwy.Lanes](op string, out *Matrix, kernel pairKernel[T], first []T, rest [][]T) (*pairMatrix[T], error) {
	n := 1 + len(rest)
	if n < 2 {
		return nil, newError(op, KindInsufficientSamples, "need at least 2 buffers, got %d", n)
	}
	if len(first) == 0 {
		return nil, emptyInput(op)
	}
	for i, b := range rest {
		if len(b) != len(first) {
			return nil, newError(op, KindShapeMismatch, "buffer %d has length %d, want %d", i+1, len(b), len(first))
		}
	}
	if out == nil || out.Rows != n || out.Cols != n || len(out.Data) != n*n {
		return nil, newError(op, KindShapeMismatch, "output must be %d×%d", n, n)
	}

	bufs := make([][]T, 0, n)
	bufs = append(bufs, first)
	bufs = append(bufs, rest...)
	stats := make([]moments, n)
	for i, b := range bufs {
		stats[i] = newMoments(b)
	}
	return &pairMatrix[T]{out: out, bufs: bufs, stats: stats, kernel: kernel}, nil
}

// row fills cells (i, j) and (j, i) for every j >= i.
func (p *pairMatrix[T]) row(i int) {
	for j := i; j < len(p.bufs); j++ {
		v := p.kernel(p.bufs[i], p.bufs[j], p.stats[i], p.stats[j])
		p.out.Set(i, j, v)
		p.out.Set(j, i, v)
	}
}

func (p *pairMatrix[T]) run() {
	for i := range p.bufs {
		p.row(i)
	}
}

// runParallel hands out rows one at a time; row i does N-i cells, so
// atomic distribution keeps the workers balanced. A nil pool runs inline.
func (p *pairMatrix[T]) runParallel(pool *workerpool.Pool) {
	if pool == nil {
		p.run()
		return
	}
	pool.ParallelForAtomic(len(p.bufs), p.row)
}

// CovMatrix writes the sample covariance of every pair of buffers into out,
// which must be N×N for N = 1 + len(rest). All buffers must have the same
// non-zero length. The diagonal holds each buffer's variance.
func CovMatrix[T hwy.Lanes](out *Matrix, first []T, rest ...[]T) error {
	p, err := newPairMatrix("CovMatrix", out, covariance[T], first, rest)
	if err != nil {
		return err
	}
	p.run()
	return nil
}

// CorrMatrix writes the Pearson correlation of every pair of buffers into
// out. Pairs involving a constant buffer, including its own diagonal cell,
// are 0.
func CorrMatrix[T hwy.Lanes](out *Matrix, first []T, rest ...[]T) error {
	p, err := newPairMatrix("CorrMatrix", out, correlate[T], first, rest)
	if err != nil {
		return err
	}
	p.run()
	return nil
}

// ParallelCovMatrix is CovMatrix with rows spread over pool.
func ParallelCovMatrix[T hwy.Lanes](pool *workerpool.Pool, out *Matrix, first []T, rest ...[]T) error {
	p, err := newPairMatrix("ParallelCovMatrix", out, covariance[T], first, rest)
	if err != nil {
		return err
	}
	p.runParallel(pool)
	return nil
}

// ParallelCorrMatrix is CorrMatrix with rows spread over pool.
func ParallelCorrMatrix[T hwy.Lanes](pool *workerpool.Pool, out *Matrix, first []T, rest ...[]T) error {
	p, err := newPairMatrix("ParallelCorrMatrix", out, correlate[T], first, rest)
	if err != nil {
		return err
	}
	p.runParallel(pool)
	return nil
}
