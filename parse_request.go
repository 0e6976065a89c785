// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

import "bytes"

var encapsulatedHdrName = []byte("Encapsulated")

// ParseRequest parses an ICAP request line, its headers, and the
// Encapsulated header (required unless the method is OPTIONS) naming
// the byte ranges of whatever follows the header block. On Complete,
// the returned int is the number of bytes consumed up to and including
// the blank line that ends the headers; the Encapsulated sections that
// follow are not counted and are reached through EncapsulatedSections.
//
// Request grammar (spec.md §4.4):
//
//	method SP request-uri SP ICAP-version CRLF
//	*( header-field CRLF )
//	CRLF
//
// Parsing restarts from buf[0] on every call; there is no resumable
// continuation state. A Partial result means the caller must supply a
// larger buffer containing the same prefix and parse again.
func ParseRequest(buf []byte, r *Request) (Status[int], error) {
	c := newCursor(buf)

	if st, err := skipEmptyLines(&c); err != nil {
		return Status[int]{}, err
	} else if st.IsPartial() {
		return Partial[int](), nil
	}

	methodSt, err := parseToken(&c)
	if err != nil {
		return Status[int]{}, err
	}
	if methodSt.IsPartial() {
		return Partial[int](), nil
	}
	r.Method = methodSt.Value()
	r.hasMethod = true

	pathSt, err := parseToken(&c)
	if err != nil {
		return Status[int]{}, err
	}
	if pathSt.IsPartial() {
		return Partial[int](), nil
	}
	r.Path = pathSt.Value()
	r.hasPath = true

	verSt, err := parseVersion(&c)
	if err != nil {
		return Status[int]{}, err
	}
	if verSt.IsPartial() {
		return Partial[int](), nil
	}
	r.Version = verSt.Value()
	r.hasVersion = true

	if st, err := newline(&c); err != nil {
		return Status[int]{}, err
	} else if st.IsPartial() {
		return Partial[int](), nil
	}

	hdrSt, err := parseHeaderList(&c, &r.Headers)
	if err != nil {
		return Status[int]{}, err
	}
	if hdrSt.IsPartial() {
		return Partial[int](), nil
	}

	n := c.pos() // headers-inclusive byte count, per spec.md §4.4

	encValue, found := findHeader(r.Headers, buf, encapsulatedHdrName)
	switch {
	case found:
		trailing := buf[n:]
		r.EncapsulatedSections = parseEncapsulated(encValue, trailing)
	case r.Method == "OPTIONS":
		r.EncapsulatedSections = nil
	default:
		return Status[int]{}, ErrMissingEncapsulated
	}

	return Complete(n), nil
}

// findHeader returns the value of the first header named name (an
// exact, case-sensitive match — ICAP defines "Encapsulated" with one
// fixed spelling) and whether one was found.
func findHeader(hdrs []Header, buf []byte, name []byte) ([]byte, bool) {
	for _, h := range hdrs {
		if bytes.Equal(h.Name.Get(buf), name) {
			return h.Value.Get(buf), true
		}
	}
	return nil, false
}
