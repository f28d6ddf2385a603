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
	"sync"
	"sync/atomic"

	"github.com/capnhook/hwystats/hwy"
)

// liveScratch counts owned scratch buffers that have been acquired and not
// yet released.
var liveScratch atomic.Int64

// scratchPools maps a zero value of T to the *sync.Pool of *[]T buffers.
var scratchPools sync.Map

func poolFor[T hwy.Lanes]() *sync.Pool {
	var key T
	if p, ok := scratchPools.Load(any(key)); ok {
		return p.(*sync.Pool)
	}
	p, _ := scratchPools.LoadOrStore(any(key), &sync.Pool{})
	return p.(*sync.Pool)
}

// scratch is an ownership token for one working buffer of a selection
// round. A borrowed token wraps caller memory and never returns it anywhere;
// an owned token came from the pool and goes back on release. Either kind
// must be released exactly once.
type scratch[T hwy.Lanes] struct {
	buf   []T
	store *[]T
	owned bool
	live  bool
}

// borrow wraps caller memory that must not be modified or recycled.
func borrow[T hwy.Lanes](buf []T) *scratch[T] {
	return &scratch[T]{buf: buf, live: true}
}

// acquire returns an owned token with room for n elements.
func acquire[T hwy.Lanes](n int) *scratch[T] {
	store, _ := poolFor[T]().Get().(*[]T)
	if store == nil || cap(*store) < n {
		s := make([]T, n)
		store = &s
	}
	liveScratch.Add(1)
	return &scratch[T]{buf: (*store)[:n], store: store, owned: true, live: true}
}

// truncate shrinks the visible buffer to n elements.
func (s *scratch[T]) truncate(n int) {
	s.buf = s.buf[:n]
}

// release ends the token. Owned buffers go back to the pool.
// Releasing a token twice panics.
func (s *scratch[T]) release() {
	if !s.live {
		panic("stats: scratch buffer released twice")
	}
	s.live = false
	s.buf = nil
	if s.owned {
		poolFor[T]().Put(s.store)
		s.store = nil
		liveScratch.Add(-1)
	}
}

// releaseLive releases every token that is still live. nil tokens are skipped.
func releaseLive[T hwy.Lanes](tokens ...*scratch[T]) {
	for _, s := range tokens {
		if s != nil && s.live {
			s.release()
		}
	}
}
