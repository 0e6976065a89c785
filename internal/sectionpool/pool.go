// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package sectionpool recycles the owned byte copies a caller takes of
// an encapsulated ICAP section when it needs ownership past the
// lifetime of the parser's input buffer (e.g. handing a section to a
// worker goroutine). The core icapsp package never allocates these
// copies itself; it borrows from the caller's buffer by default.
package sectionpool

import "github.com/valyala/bytebufferpool"

// Pool wraps a bytebufferpool.Pool so callers don't reach for the
// global default pool directly and so a future caller-specific pool
// (sized differently per workload) is a one-line change.
type Pool struct {
	pool bytebufferpool.Pool
}

// New returns an empty, ready-to-use Pool.
func New() *Pool {
	return &Pool{}
}

// Copy returns an owned copy of section, backed by a pooled buffer.
// The returned slice is only valid until release is called; calling
// release hands the backing array back to the pool for reuse.
func (p *Pool) Copy(section []byte) (copied []byte, release func()) {
	buf := p.pool.Get()
	buf.Write(section)
	b := buf.B
	return b, func() { p.pool.Put(buf) }
}
