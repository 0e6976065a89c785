// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

import "testing"

func TestParseHeaderListBasic(t *testing.T) {
	buf := []byte("Host: icap.example.org\r\nEncapsulated: null-body=0\r\n\r\nTRAILER")
	c := newCursor(buf)
	hdrs := make([]Header, 0, 8)
	st, err := parseHeaderList(&c, &hdrs)
	if err != nil || !st.IsComplete() {
		t.Fatalf("parseHeaderList: status=%+v err=%v", st, err)
	}
	if len(hdrs) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(hdrs))
	}
	if hdrs[0].Name.Str(buf) != "Host" || hdrs[0].Value.Str(buf) != "icap.example.org" {
		t.Fatalf("header 0: %q = %q", hdrs[0].Name.Str(buf), hdrs[0].Value.Str(buf))
	}
	if hdrs[1].Name.Str(buf) != "Encapsulated" || hdrs[1].Value.Str(buf) != "null-body=0" {
		t.Fatalf("header 1: %q = %q", hdrs[1].Name.Str(buf), hdrs[1].Value.Str(buf))
	}
	if c.pos() != len(buf)-len("TRAILER") {
		t.Fatalf("pos after headers: got %d, want %d", c.pos(), len(buf)-len("TRAILER"))
	}
}

func TestParseHeaderListNoHeaders(t *testing.T) {
	buf := []byte("\r\nX")
	c := newCursor(buf)
	hdrs := make([]Header, 0, 4)
	st, err := parseHeaderList(&c, &hdrs)
	if err != nil || !st.IsComplete() || len(hdrs) != 0 {
		t.Fatalf("status=%+v err=%v hdrs=%v", st, err, hdrs)
	}
}

func TestParseHeaderListOWSIsStripped(t *testing.T) {
	buf := []byte("X:   value  \r\n\r\n")
	c := newCursor(buf)
	hdrs := make([]Header, 0, 4)
	st, err := parseHeaderList(&c, &hdrs)
	if err != nil || !st.IsComplete() {
		t.Fatalf("status=%+v err=%v", st, err)
	}
	if hdrs[0].Value.Str(buf) != "value  " {
		// leading OWS is stripped; trailing SP is part of the field-value
		// octet set and is kept, matching spec.md §4.6 step 5.
		t.Fatalf("value: got %q", hdrs[0].Value.Str(buf))
	}
}

func TestParseHeaderListTooManyHeaders(t *testing.T) {
	buf := []byte("A: 1\r\nB: 2\r\n\r\n")
	c := newCursor(buf)
	hdrs := make([]Header, 0, 1)
	_, err := parseHeaderList(&c, &hdrs)
	if err != ErrTooManyHeaders {
		t.Fatalf("expected ErrTooManyHeaders, got %v", err)
	}
}

func TestParseHeaderListBadName(t *testing.T) {
	buf := []byte("Ba(d: 1\r\n\r\n")
	c := newCursor(buf)
	hdrs := make([]Header, 0, 4)
	_, err := parseHeaderList(&c, &hdrs)
	if err != ErrHeaderName {
		t.Fatalf("expected ErrHeaderName, got %v", err)
	}
}

func TestParseHeaderListPartial(t *testing.T) {
	buf := []byte("Host: exam")
	c := newCursor(buf)
	hdrs := make([]Header, 0, 4)
	st, err := parseHeaderList(&c, &hdrs)
	if err != nil || !st.IsPartial() {
		t.Fatalf("expected Partial, got status=%+v err=%v", st, err)
	}
}

func TestScanHeaderValueLongValue(t *testing.T) {
	// exercises the 8-byte-unrolled path followed by the tail fallback.
	buf := []byte("0123456789abcdefgh\r\nX")
	c := newCursor(buf)
	f, st, err := scanHeaderValue(&c)
	if err != nil || !st.IsComplete() {
		t.Fatalf("status=%+v err=%v", st, err)
	}
	if f.Str(buf) != "0123456789abcdefgh" {
		t.Fatalf("value: got %q", f.Str(buf))
	}
}

func TestScanHeaderValueBadTerminator(t *testing.T) {
	buf := []byte("value\rX")
	c := newCursor(buf)
	_, _, err := scanHeaderValue(&c)
	if err != ErrHeaderValue {
		t.Fatalf("expected ErrHeaderValue, got %v", err)
	}
}

func TestScanHeaderValueBareLF(t *testing.T) {
	buf := []byte("value\nrest")
	c := newCursor(buf)
	f, st, err := scanHeaderValue(&c)
	if err != nil || !st.IsComplete() || f.Str(buf) != "value" {
		t.Fatalf("status=%+v err=%v field=%q", st, err, f.Str(buf))
	}
}
