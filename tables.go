// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

// Two flat 256-entry lookup tables so that classifying a byte costs a
// single indexed load instead of a chain of comparisons or a regex.
// Keep them as compile-time data: per-call character-class predicates
// would defeat the branch predictability the header-value scan in
// parse_headers.go depends on (see spec.md §9).

// headerNameTable accepts the RFC 7230 tchar set used for ICAP header
// field names:
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*"
//	      / "+" / "-" / "." / "^" / "_" / "`" / "|" / "~"
//	      / DIGIT / ALPHA
var headerNameTable = [256]bool{
	'!': true, '#': true, '$': true, '%': true, '&': true, '\'': true,
	'*': true, '+': true, '-': true, '.': true, '^': true, '_': true,
	'`': true, '|': true, '~': true,

	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,

	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'J': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true,
	'Y': true, 'Z': true,

	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true,
	'g': true, 'h': true, 'i': true, 'j': true, 'k': true, 'l': true,
	'm': true, 'n': true, 'o': true, 'p': true, 'q': true, 'r': true,
	's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true,
	'y': true, 'z': true,
}

// headerValueTable accepts HTAB, all printable ASCII except DEL, and
// the obs-text range (0x80-0xFF), per RFC 7230 field-content:
//
//	field-value = *( HTAB / SP / VCHAR / obs-text )
func init() {
	headerValueTable[0x09] = true // HTAB
	for b := 0x20; b <= 0x7E; b++ {
		headerValueTable[b] = true // SP, VCHAR
	}
	for b := 0x80; b <= 0xFF; b++ {
		headerValueTable[b] = true // obs-text
	}
}

var headerValueTable [256]bool

func isHeaderNameByte(b byte) bool {
	return headerNameTable[b]
}

func isHeaderValueByte(b byte) bool {
	return headerValueTable[b]
}

// isTokenByte accepts the ICAP method/path token chars: any octet in
// (0x1F, 0x7F), i.e. no control characters and no DEL.
func isTokenByte(b byte) bool {
	return b > 0x1F && b < 0x7F
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default: // 'A'-'F'
		return b - 'A' + 10
	}
}
