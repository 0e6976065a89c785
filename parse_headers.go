// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

// parseHeaderList fills *hdrs (whose capacity is the caller's header
// array) with the header block starting at the cursor's current
// position, stopping at the blank line that terminates it. *hdrs is
// grown with append, which never reallocates here: its capacity was
// fixed by the caller, and exceeding it is ErrTooManyHeaders rather
// than silent growth or truncation.
func parseHeaderList(c *cursor, hdrs *[]Header) (Status[struct{}], error) {
	for {
		b, ok := c.peek()
		if !ok {
			return Partial[struct{}](), nil
		}
		if b == '\r' {
			c.bump()
			nb, ok := c.next()
			if !ok {
				return Partial[struct{}](), nil
			}
			if nb != '\n' {
				return Status[struct{}]{}, ErrNewLine
			}
			c.slice()
			return Complete(struct{}{}), nil
		}
		if b == '\n' {
			c.bump()
			c.slice()
			return Complete(struct{}{}), nil
		}

		if len(*hdrs) == cap(*hdrs) {
			return Status[struct{}]{}, ErrTooManyHeaders
		}
		if !isHeaderNameByte(b) {
			return Status[struct{}]{}, ErrHeaderName
		}

		c.slice() // mark: start of header name
		for {
			nb, ok := c.next()
			if !ok {
				return Partial[struct{}](), nil
			}
			if nb == ':' {
				break
			}
			if !isHeaderNameByte(nb) {
				return Status[struct{}]{}, ErrHeaderName
			}
		}
		name := c.fieldSkip(1) // excludes the colon

		// OWS before the value: each skipped byte is folded out of
		// the value slice by re-marking after it.
		for {
			vb, ok := c.peek()
			if !ok {
				return Partial[struct{}](), nil
			}
			if vb != ' ' && vb != '\t' {
				break
			}
			c.bump()
		}
		c.slice() // mark: start of header value

		value, status, err := scanHeaderValue(c)
		if err != nil {
			return Status[struct{}]{}, err
		}
		if status.IsPartial() {
			return Partial[struct{}](), nil
		}

		*hdrs = append(*hdrs, Header{Name: name, Value: value})
	}
}

// scanHeaderValue consumes the header-value bytes and their CRLF/LF
// terminator, returning the value Field (terminator excluded). It
// processes 8 bytes per iteration via next8 and falls back to
// single-byte reads once fewer than 8 remain or one of the 8 fails the
// header-value table — the load-bearing loop spec.md §9 calls out.
func scanHeaderValue(c *cursor) (Field, Status[struct{}], error) {
	for {
		e, ok := c.next8()
		if !ok {
			break
		}
		group := [8]byte{e.b0, e.b1, e.b2, e.b3, e.b4, e.b5, e.b6, e.b7}
		valid := 0
		for _, b := range group {
			if !isHeaderValueByte(b) {
				break
			}
			valid++
		}
		if valid == 8 {
			continue
		}
		c.i -= 8 - valid
		break
	}

	var term byte
	for {
		b, ok := c.next()
		if !ok {
			return Field{}, Partial[struct{}](), nil
		}
		if !isHeaderValueByte(b) {
			term = b
			break
		}
	}

	switch term {
	case '\r':
		nb, ok := c.next()
		if !ok {
			return Field{}, Partial[struct{}](), nil
		}
		if nb != '\n' {
			return Field{}, Status[struct{}]{}, ErrHeaderValue
		}
		return c.fieldSkip(2), Complete(struct{}{}), nil
	case '\n':
		return c.fieldSkip(1), Complete(struct{}{}), nil
	default:
		return Field{}, Status[struct{}]{}, ErrHeaderValue
	}
}
