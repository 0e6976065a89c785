// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

// Error is the closed set of terminal parse failures. Partial is never
// one of these: running out of input mid-grammar is reported through
// Status, not through an Error (see status.go).
type Error uint8

// Error values, one per grammar violation spec.md §7 names.
const (
	// ErrNone is the zero Error; never returned by a parser.
	ErrNone Error = iota
	// ErrHeaderName: a byte outside the header-name token set where a
	// name byte or name terminator was expected.
	ErrHeaderName
	// ErrHeaderValue: a byte outside the header-value set where a
	// value byte was expected, and it was not a valid terminator.
	ErrHeaderValue
	// ErrNewLine: '\r' not followed by '\n', or an illegal byte where
	// a newline was required.
	ErrNewLine
	// ErrStatus: malformed response status line.
	ErrStatus
	// ErrToken: malformed method or path token.
	ErrToken
	// ErrTooManyHeaders: header count exceeds the caller's capacity.
	ErrTooManyHeaders
	// ErrVersion: start-line version is not ICAP/1.0 or ICAP/1.1.
	ErrVersion
	// ErrMissingEncapsulated: a non-OPTIONS request lacks an
	// Encapsulated header.
	ErrMissingEncapsulated
)

var errStrings = [...]string{
	ErrNone:                "no error",
	ErrHeaderName:          "invalid header name",
	ErrHeaderValue:         "invalid header value",
	ErrNewLine:             "invalid new line",
	ErrStatus:              "invalid response status",
	ErrToken:               "invalid token",
	ErrTooManyHeaders:      "too many headers",
	ErrVersion:             "invalid ICAP version",
	ErrMissingEncapsulated: "missing encapsulated ICAP header",
}

// Error implements the error interface.
func (e Error) Error() string {
	if int(e) >= len(errStrings) {
		return "unknown icapsp error"
	}
	return errStrings[e]
}

// ErrInvalidChunkSize reports a malformed chunk-size line. It is kept
// separate from Error, mirroring spec.md §7's "InvalidChunkSize
// (separate)" row: chunk-size parsing is a standalone grammar, not
// part of the request/response start-line and header grammar.
type ErrInvalidChunkSize struct{}

func (ErrInvalidChunkSize) Error() string {
	return "invalid chunk size"
}
