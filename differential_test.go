// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseRequestIdempotentReparse checks spec.md §8's idempotent
// re-parse property: parsing the same buffer twice into fresh Request
// values yields byte-for-byte identical results. A spew dump is used
// instead of "%+v" because Field only carries raw offsets — a plain
// Printf can't usefully show whether two Requests agree on Headers
// without walking the slice, whereas spew's recursive dump does it for
// free and makes a failing diff readable. The dump omits pointer
// addresses (the two Requests live at different addresses) and sorts
// map keys (EncapsulatedSections iteration order is random).
func TestParseRequestIdempotentReparse(t *testing.T) {
	buf := []byte("REQMOD icap://icap.example.org/reqmod ICAP/1.0\r\n" +
		"Host: icap.example.org\r\n" +
		"Encapsulated: req-hdr=0, null-body=0\r\n\r\n")

	r1 := NewRequest(make([]Header, 0, 8))
	st1, err1 := ParseRequest(buf, r1)
	require.NoError(t, err1)
	require.True(t, st1.IsComplete())

	r2 := NewRequest(make([]Header, 0, 8))
	st2, err2 := ParseRequest(buf, r2)
	require.NoError(t, err2)
	require.True(t, st2.IsComplete())

	dump := spew.ConfigState{Indent: " ", DisablePointerAddresses: true, SortKeys: true}
	assert.Equal(t, st1.Value(), st2.Value())
	assert.Equal(t, dump.Sdump(r1), dump.Sdump(r2))
}

// TestParseRequestPrefixInvariance checks spec.md §8's prefix-
// invariance property: every proper prefix of a complete, well-formed
// message returns Partial, never an error and never Complete. Every
// byte in full is a well-formed token/digit/CRLF byte, so no
// truncation point can land in any of spec.md §7's error classes.
func TestParseRequestPrefixInvariance(t *testing.T) {
	full := []byte("OPTIONS / ICAP/1.0\r\nEncapsulated: null-body=0\r\n\r\n")
	for n := 1; n < len(full); n++ {
		r := NewRequest(make([]Header, 0, 8))
		st, err := ParseRequest(full[:n], r)
		require.NoErrorf(t, err, "prefix of length %d", n)
		assert.Falsef(t, st.IsComplete(),
			"prefix of length %d should not parse to Complete", n)
	}
}
