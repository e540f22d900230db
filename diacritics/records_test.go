// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diacritics_test

import (
	"testing"

	"github.com/mdhender/ipagen/diacritics"
)

func TestRecord_IsTied(t *testing.T) {
	for _, tc := range []struct {
		group string
		name  string
		want  bool
	}{
		{"segmentation", "tied-above", true},
		{"segmentation", "tied-below", true},
		{"segmentation", "linking", false},
		{"phonation", "tied-above", false},
		{"phonation", "voiceless", false},
	} {
		r := &diacritics.Record{Group: tc.group, Name: tc.name}
		if got := r.IsTied(); got != tc.want {
			t.Fatalf("IsTied(%s, %s) = %v, want %v", tc.group, tc.name, got, tc.want)
		}
	}
}

func TestRecord_CombiningRune(t *testing.T) {
	r := &diacritics.Record{Name: "tone-high", UnicodeHex: "0301"}
	got, err := r.CombiningRune()
	if err != nil {
		t.Fatalf("combining rune: %v", err)
	}
	if want := '\u0301'; got != want {
		t.Fatalf("CombiningRune = %U, want %U", got, want)
	}

	for _, hex := range []string{"", "zz99", "110000", "D800"} {
		r := &diacritics.Record{Name: "bad", UnicodeHex: hex}
		if _, err := r.CombiningRune(); err == nil {
			t.Fatalf("CombiningRune(%q): err = nil, want error", hex)
		}
	}
}
