// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

// skipEmptyLines consumes any leading CRLF/LF pairs, stopping at (but
// not consuming past) the first non-newline octet. A bare '\r' not
// followed by '\n' is ErrNewLine.
func skipEmptyLines(c *cursor) (Status[struct{}], error) {
	for {
		b, ok := c.peek()
		if !ok {
			return Partial[struct{}](), nil
		}
		switch b {
		case '\r':
			c.bump()
			nb, ok := c.next()
			if !ok {
				return Partial[struct{}](), nil
			}
			if nb != '\n' {
				return Status[struct{}]{}, ErrNewLine
			}
		case '\n':
			c.bump()
		default:
			c.slice()
			return Complete(struct{}{}), nil
		}
	}
}

// parseToken reads octets up to a single SP terminator, accepting only
// isTokenByte bytes, and returns the text before the SP. An empty
// token, or a non-token byte before the SP, is ErrToken.
func parseToken(c *cursor) (Status[string], error) {
	for {
		b, ok := c.next()
		if !ok {
			return Partial[string](), nil
		}
		if b == ' ' {
			tok := c.sliceSkip(1)
			if len(tok) == 0 {
				return Status[string]{}, ErrToken
			}
			return Complete(bytesToString(tok)), nil
		}
		if !isTokenByte(b) {
			return Status[string]{}, ErrToken
		}
	}
}

// parseVersion requires exactly "ICAP/1.0" or "ICAP/1.1" and returns 0
// or 1. A buffer with fewer than 8 remaining bytes is Partial.
func parseVersion(c *cursor) (Status[int], error) {
	e, ok := c.next8()
	if !ok {
		return Partial[int](), nil
	}
	if e.b0 != 'I' || e.b1 != 'C' || e.b2 != 'A' || e.b3 != 'P' ||
		e.b4 != '/' || e.b5 != '1' || e.b6 != '.' {
		return Status[int]{}, ErrVersion
	}
	switch e.b7 {
	case '0':
		c.slice()
		return Complete(0), nil
	case '1':
		c.slice()
		return Complete(1), nil
	default:
		return Status[int]{}, ErrVersion
	}
}

// parseCode reads exactly three ASCII digits and returns their decimal
// value. A non-digit is ErrStatus.
func parseCode(c *cursor) (Status[int], error) {
	var digits [3]byte
	for i := 0; i < 3; i++ {
		b, ok := c.next()
		if !ok {
			return Partial[int](), nil
		}
		if !isDigit(b) {
			return Status[int]{}, ErrStatus
		}
		digits[i] = b
	}
	c.slice()
	code := int(digits[0]-'0')*100 + int(digits[1]-'0')*10 + int(digits[2]-'0')
	return Complete(code), nil
}

// parseReason reads up to CR or LF, accepting HTAB and 0x20-0x7E; it
// deliberately rejects obs-text and NUL (spec.md §4.3). A bare CR must
// be followed by LF.
func parseReason(c *cursor) (Status[string], error) {
	for {
		b, ok := c.next()
		if !ok {
			return Partial[string](), nil
		}
		switch {
		case b == '\r':
			nb, ok := c.next()
			if !ok {
				return Partial[string](), nil
			}
			if nb != '\n' {
				return Status[string]{}, ErrStatus
			}
			return Complete(bytesToString(c.sliceSkip(2))), nil
		case b == '\n':
			return Complete(bytesToString(c.sliceSkip(1))), nil
		case b == '\t' || (b >= 0x20 && b <= 0x7E):
			// keep scanning
		default:
			return Status[string]{}, ErrStatus
		}
	}
}

// newline accepts CRLF or a bare LF; anything else is ErrNewLine.
func newline(c *cursor) (Status[struct{}], error) {
	b, ok := c.next()
	if !ok {
		return Partial[struct{}](), nil
	}
	switch b {
	case '\r':
		nb, ok := c.next()
		if !ok {
			return Partial[struct{}](), nil
		}
		if nb != '\n' {
			return Status[struct{}]{}, ErrNewLine
		}
		c.slice()
		return Complete(struct{}{}), nil
	case '\n':
		c.slice()
		return Complete(struct{}{}), nil
	default:
		return Status[struct{}]{}, ErrNewLine
	}
}
