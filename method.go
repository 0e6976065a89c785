// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

import (
	"bytes"

	"github.com/intuitivelabs/bytescase"
)

// Method is a recognized ICAP request method. ParseRequest itself
// never enforces membership in this set — the grammar accepts any
// token — Method is an informational convenience for callers that want
// to dispatch on it.
type Method uint8

const (
	MUndef Method = iota
	MReqmod
	MRespmod
	MOptions
	MOther // must be last
)

// Method2Name translates between a numeric Method and its ASCII name.
var Method2Name = [MOther + 1][]byte{
	MUndef:   []byte(""),
	MReqmod:  []byte("REQMOD"),
	MRespmod: []byte("RESPMOD"),
	MOptions: []byte("OPTIONS"),
	MOther:   []byte("OTHER"),
}

// Name returns the ASCII method name.
func (m Method) Name() []byte {
	if m > MOther {
		return Method2Name[MUndef]
	}
	return Method2Name[m]
}

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m.Name())
}

// GetMethodNo converts from an ASCII ICAP method token (case-sensitive
// per the grammar; RFC 3507 methods are conventionally upper-case) to
// the corresponding Method value. An unrecognized token maps to
// MOther, not an error — unlike httpsp's GetMethodNo there are only
// three known methods, too few to warrant a hash bucket lookup.
func GetMethodNo(buf []byte) Method {
	for m := MReqmod; m < MOther; m++ {
		if bytes.Equal(buf, Method2Name[m]) {
			return m
		}
	}
	return MOther
}

// GetMethodNoFold is GetMethodNo with case-insensitive comparison, for
// callers that want to tolerate "options" alongside "OPTIONS".
func GetMethodNoFold(buf []byte) Method {
	for m := MReqmod; m < MOther; m++ {
		if bytescase.CmpEq(buf, Method2Name[m]) {
			return m
		}
	}
	return MOther
}
