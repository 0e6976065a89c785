// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Package icapmsg is a thin convenience layer over icapsp: it pairs a
// Request or Response with its pre-sized header array so a caller
// doesn't have to manage that wiring by hand, the way the teacher's
// parse_msg.go ties PFLine and a header list together for HTTP.
package icapmsg

import "github.com/intuitivelabs/icapsp"

// RequestMsg owns a Request and the header array it parses into.
type RequestMsg struct {
	Request *icapsp.Request
	headers []icapsp.Header
}

// NewRequestMsg allocates a RequestMsg with room for headerCapacity
// headers.
func NewRequestMsg(headerCapacity int) *RequestMsg {
	headers := make([]icapsp.Header, 0, headerCapacity)
	return &RequestMsg{
		Request: icapsp.NewRequest(headers),
		headers: headers,
	}
}

// Parse parses buf into m.Request, starting over from scratch (icapsp
// has no resumable continuation state; see icapsp's Status[T] docs).
func (m *RequestMsg) Parse(buf []byte) (icapsp.Status[int], error) {
	m.Reset()
	return icapsp.ParseRequest(buf, m.Request)
}

// Reset discards whatever a previous Parse populated, without
// reallocating the header array.
func (m *RequestMsg) Reset() {
	*m.Request = *icapsp.NewRequest(m.headers[:0])
}

// ResponseMsg owns a Response and the header array it parses into.
type ResponseMsg struct {
	Response *icapsp.Response
	headers  []icapsp.Header
}

// NewResponseMsg allocates a ResponseMsg with room for headerCapacity
// headers.
func NewResponseMsg(headerCapacity int) *ResponseMsg {
	headers := make([]icapsp.Header, 0, headerCapacity)
	return &ResponseMsg{
		Response: icapsp.NewResponse(headers),
		headers:  headers,
	}
}

// Parse parses buf into m.Response, starting over from scratch.
func (m *ResponseMsg) Parse(buf []byte) (icapsp.Status[int], error) {
	m.Reset()
	return icapsp.ParseResponse(buf, m.Response)
}

// Reset discards whatever a previous Parse populated, without
// reallocating the header array.
func (m *ResponseMsg) Reset() {
	*m.Response = *icapsp.NewResponse(m.headers[:0])
}
