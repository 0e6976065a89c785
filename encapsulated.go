// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

import "bytes"

// encapsulatedTokens maps each token the Encapsulated header value can
// carry to its SectionKind. Order matches spec.md §4.7's enumeration;
// req-body maps to RequestBody — the original Rust parser this one is
// ported from assigns req-body to ResponseBody, a bug spec.md §9 calls
// out and requires fixed here.
var encapsulatedTokens = [...]struct {
	prefix string
	kind   SectionKind
}{
	{"req-hdr=", RequestHeader},
	{"req-body=", RequestBody},
	{"null-body=", NullBody},
	{"res-hdr=", ResponseHeader},
	{"res-body=", ResponseBody},
	{"opt-body=", OptionsBody},
}

// parseEncapsulated interprets an Encapsulated header value (e.g.
// "req-hdr=0, res-hdr=137, res-body=296") and partitions trailing into
// named sections. The returned slices borrow from trailing; callers
// needing ownership past trailing's lifetime should copy (see
// internal/sectionpool for a pooled-copy helper).
//
// Only the six tokens named in spec.md §4.7 are recognized; each is
// anchored on its full "token=" prefix, so no ambiguity arises between
// tokens that share a leading substring (none of the six do).
func parseEncapsulated(headerValue, trailing []byte) map[SectionKind][]byte {
	var entries []EncapsulationEntry
	for _, t := range encapsulatedTokens {
		idx := bytes.Index(headerValue, []byte(t.prefix))
		if idx < 0 {
			continue
		}
		start := idx + len(t.prefix)
		end := start
		for end < len(headerValue) && isDigit(headerValue[end]) {
			end++
		}
		if end == start {
			continue // token present but no digits follow: skip it
		}
		n := 0
		for _, d := range headerValue[start:end] {
			n = n*10 + int(d-'0')
		}
		entries = append(entries, EncapsulationEntry{Kind: t.kind, Start: n})
	}

	// Stable sort by ascending offset: ties keep their §4.7 token
	// order instead of being reordered, so an adjacent zero-length
	// section (two entries claiming the same start) isn't split.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Start < entries[j-1].Start; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	sections := make(map[SectionKind][]byte, len(entries))
	for i, e := range entries {
		start := clampOffset(e.Start, len(trailing))
		end := len(trailing)
		if i+1 < len(entries) {
			end = clampOffset(entries[i+1].Start, len(trailing))
		}
		if end < start {
			end = start
		}
		sections[e.Kind] = trailing[start:end]
	}
	return sections
}

func clampOffset(off, max int) int {
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}
