// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package symdict_test

import (
	"strings"
	"testing"

	"github.com/mdhender/ipagen/symdict"
)

func TestSerialize(t *testing.T) {
	table := symdict.NewTable()
	table.Set("foo", "x")
	table.Set("foo.bar", "y")

	want := strings.Join([]string{
		"#let sym-dict = (",
		"  \"foo\": \"x\",",
		"  \"foo.bar\": \"y\",",
		")",
		"",
	}, "\n")
	if got := symdict.Serialize(table); got != want {
		t.Fatalf("Serialize =\n%s\nwant\n%s", got, want)
	}
}

func TestSerialize_Empty(t *testing.T) {
	want := "#let sym-dict = (\n)\n"
	if got := symdict.Serialize(symdict.NewTable()); got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}
