// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

// ParseResponse parses an ICAP status line and its headers. On
// Complete, the returned int is the number of bytes consumed up to and
// including the blank line that ends the headers; any Encapsulated
// sections that follow are not counted and are reached through
// EncapsulatedSections.
//
// Response grammar (spec.md §4.5):
//
//	ICAP-version SP status-code [SP reason-phrase] CRLF
//	*( header-field CRLF )
//	CRLF
//
// A response has no method to require an Encapsulated header against,
// so unlike ParseRequest an absent Encapsulated header simply leaves
// EncapsulatedSections nil rather than failing.
func ParseResponse(buf []byte, r *Response) (Status[int], error) {
	c := newCursor(buf)

	if st, err := skipEmptyLines(&c); err != nil {
		return Status[int]{}, err
	} else if st.IsPartial() {
		return Partial[int](), nil
	}

	verSt, err := parseVersion(&c)
	if err != nil {
		return Status[int]{}, err
	}
	if verSt.IsPartial() {
		return Partial[int](), nil
	}
	r.Version = verSt.Value()
	r.hasVersion = true

	if b, ok := c.next(); !ok {
		return Partial[int](), nil
	} else if b != ' ' {
		return Status[int]{}, ErrStatus
	}
	c.slice()

	codeSt, err := parseCode(&c)
	if err != nil {
		return Status[int]{}, err
	}
	if codeSt.IsPartial() {
		return Partial[int](), nil
	}
	r.Code = codeSt.Value()
	r.hasCode = true

	// After the code: SP + reason phrase terminated by newline, or a
	// bare CRLF/LF directly (empty reason). Not a plain "SP required"
	// rule, per spec.md §4.5's leniency note.
	b, ok := c.next()
	if !ok {
		return Partial[int](), nil
	}
	switch b {
	case ' ':
		c.slice()
		reasonSt, err := parseReason(&c)
		if err != nil {
			return Status[int]{}, err
		}
		if reasonSt.IsPartial() {
			return Partial[int](), nil
		}
		r.Reason = reasonSt.Value()
		r.hasReason = true
	case '\r':
		nb, ok := c.next()
		if !ok {
			return Partial[int](), nil
		}
		if nb != '\n' {
			return Status[int]{}, ErrStatus
		}
		r.Reason = ""
		r.hasReason = true
		c.slice()
	case '\n':
		r.Reason = ""
		r.hasReason = true
		c.slice()
	default:
		return Status[int]{}, ErrStatus
	}

	hdrSt, err := parseHeaderList(&c, &r.Headers)
	if err != nil {
		return Status[int]{}, err
	}
	if hdrSt.IsPartial() {
		return Partial[int](), nil
	}

	n := c.pos()

	if encValue, found := findHeader(r.Headers, buf, encapsulatedHdrName); found {
		trailing := buf[n:]
		r.EncapsulatedSections = parseEncapsulated(encValue, trailing)
	}

	return Complete(n), nil
}
