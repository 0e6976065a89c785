// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

import "testing"

func TestFieldSetGetStr(t *testing.T) {
	buf := []byte("Host: example.org")
	var f Field
	f.Set(0, 4)
	if f.Str(buf) != "Host" {
		t.Fatalf("Str: got %q", f.Str(buf))
	}
	if f.Empty() {
		t.Fatalf("Empty: expected false")
	}
	var empty Field
	if !empty.Empty() {
		t.Fatalf("zero Field should be Empty")
	}
}

func TestFieldExtend(t *testing.T) {
	var f Field
	f.Set(5, 5)
	if !f.Empty() {
		t.Fatalf("expected empty field")
	}
	f.Extend(9)
	if f.Len != 4 {
		t.Fatalf("Extend: got Len=%d, want 4", f.Len)
	}
}

func TestSectionKindString(t *testing.T) {
	cases := map[SectionKind]string{
		NullBody:       "null-body",
		RequestHeader:  "req-hdr",
		RequestBody:    "req-body",
		ResponseHeader: "res-hdr",
		ResponseBody:   "res-body",
		OptionsBody:    "opt-body",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String(): got %q, want %q", k, got, want)
		}
	}
}

func TestNewRequestHeaderCapacity(t *testing.T) {
	r := NewRequest(make([]Header, 0, 4))
	if len(r.Headers) != 0 || cap(r.Headers) != 4 {
		t.Fatalf("NewRequest: len=%d cap=%d", len(r.Headers), cap(r.Headers))
	}
	if r.HasMethod() || r.HasPath() {
		t.Fatalf("fresh Request should have no fields set")
	}
}
