// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Test utils

package icapsp

import (
	"math/rand"

	"github.com/intuitivelabs/bytescase"
)

// randOWS returns a random run of SP/HTAB, the only "optional
// whitespace" this parser recognizes before a header value (no
// obsolete line-folding support, unlike full HTTP).
func randOWS() string {
	ws := [...]string{"", " ", "\t"}
	var s string
	n := rand.Intn(5) // max 5 whitespace "tokens"
	for i := 0; i < n; i++ {
		s += ws[rand.Intn(len(ws))]
	}
	return s
}

// randCase randomizes the case of each byte in s.
func randCase(s string) string {
	r := make([]byte, len(s))
	for i, b := range []byte(s) {
		switch rand.Intn(3) {
		case 0:
			r[i] = bytescase.ByteToLower(b)
		case 1:
			r[i] = bytescase.ByteToUpper(b)
		default:
			r[i] = b
		}
	}
	return string(r)
}
