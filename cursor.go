// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

// cursor is a non-copying forward iterator over an immutable input
// buffer. It never re-reads or re-validates bytes already consumed: a
// mark records the start of the current token and slice()/sliceSkip()
// cut out the bytes since that mark.
//
// cursor never allocates; eight is a value type returned by next8 so
// that the header-value scan can unroll eight comparisons per loop
// iteration without a slice bounds-check per byte.
type cursor struct {
	buf  []byte
	i    int // current read position
	mark int // start of the token currently being scanned
}

func newCursor(buf []byte) cursor {
	return cursor{buf: buf}
}

// peek returns the next octet without advancing, and whether one was
// available.
func (c *cursor) peek() (byte, bool) {
	if c.i >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.i], true
}

// next returns the next octet and advances past it. ok is false at
// end of input; callers in that case must report Partial, never an
// error, per the contract in spec.md §7.
func (c *cursor) next() (b byte, ok bool) {
	if c.i >= len(c.buf) {
		return 0, false
	}
	b = c.buf[c.i]
	c.i++
	return b, true
}

// bump advances by one after a successful peek. It is unchecked:
// callers must only call it once peek() has confirmed a byte exists.
func (c *cursor) bump() {
	c.i++
}

// eight is eight consecutive octets, read and compared one field at a
// time so the compiler can keep them in registers instead of
// re-indexing a slice.
type eight struct {
	b0, b1, b2, b3, b4, b5, b6, b7 byte
}

// next8 returns the next eight octets as a value and advances past
// them, or reports false if fewer than eight octets remain.
func (c *cursor) next8() (eight, bool) {
	if len(c.buf)-c.i < 8 {
		return eight{}, false
	}
	b := c.buf[c.i : c.i+8 : c.i+8]
	c.i += 8
	return eight{b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7]}, true
}

// slice sets the mark to the current position. It yields no output;
// it exists so the next sliceSkip()/slice() pair bounds a token.
func (c *cursor) slice() {
	c.mark = c.i
}

// sliceSkip returns buf[mark : i-skip] and moves mark to i, discarding
// skip trailing delimiter bytes (e.g. 2 for a CRLF terminator, 1 for a
// bare LF or a single SP) from the returned slice.
func (c *cursor) sliceSkip(skip int) []byte {
	s := c.buf[c.mark : c.i-skip]
	c.mark = c.i
	return s
}

// fieldSkip is sliceSkip's Field-returning twin: it yields an offset
// pair into the underlying buffer instead of a byte slice, so header
// name/value storage never has to copy or re-derive an offset from a
// slice header.
func (c *cursor) fieldSkip(skip int) Field {
	var f Field
	f.Set(c.mark, c.i-skip)
	c.mark = c.i
	return f
}

// pos returns the number of bytes consumed since construction.
func (c *cursor) pos() int {
	return c.i
}

// len returns the number of unread bytes.
func (c *cursor) len() int {
	return len(c.buf) - c.i
}
