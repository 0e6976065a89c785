// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

import "unsafe"

// bytesToString converts b to a string without copying. Safe only
// because every caller here first validated b against headerNameTable
// (or the ICAP token/version/reason byte classes), all of which are a
// subset of US-ASCII, and because the returned string is never held
// past the lifetime of the input buffer it borrows from.
func bytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
