// Copyright 2024 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package icapsp

import "testing"

func TestGetMethodNo(t *testing.T) {
	cases := map[string]Method{
		"REQMOD":  MReqmod,
		"RESPMOD": MRespmod,
		"OPTIONS": MOptions,
		"GARBAGE": MOther,
		"reqmod":  MOther, // case-sensitive
	}
	for in, want := range cases {
		if got := GetMethodNo([]byte(in)); got != want {
			t.Errorf("GetMethodNo(%q): got %v, want %v", in, got, want)
		}
	}
}

func TestGetMethodNoFold(t *testing.T) {
	for i := 0; i < 20; i++ {
		folded := randCase("REQMOD")
		if got := GetMethodNoFold([]byte(folded)); got != MReqmod {
			t.Errorf("GetMethodNoFold(%q): got %v, want MReqmod", folded, got)
		}
	}
}

func TestMethodName(t *testing.T) {
	if MReqmod.String() != "REQMOD" {
		t.Fatalf("got %q", MReqmod.String())
	}
	if MOther.String() != "OTHER" {
		t.Fatalf("got %q", MOther.String())
	}
}
