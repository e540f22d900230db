// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diacritics

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Apply evaluates the semantics of the generated Typst function in Go,
// so the result of applying a diacritic can be inspected before the
// package is regenerated and compiled.
//
// The default shape appends the combining character after every
// extended grapheme cluster of base. The tied shape requires exactly
// two clusters and joins them with the combining character; the error
// text mirrors the assertion the generated function raises. Typst's
// split("") brackets the clusters with empty boundary strings, which is
// why the generated assertion checks for four pieces and reports the
// length as pieces minus two.
func Apply(r *Record, base string) (string, error) {
	combining, err := r.CombiningRune()
	if err != nil {
		return "", err
	}

	parts := clusters(base)
	if r.IsTied() {
		if len(parts) != 2 {
			return "", fmt.Errorf("%s() expects argument of length 2, %d given", r.Name, len(parts))
		}
		return parts[0] + string(combining) + parts[1], nil
	}

	var b strings.Builder
	for _, cluster := range parts {
		b.WriteString(cluster)
		b.WriteRune(combining)
	}
	return b.String(), nil
}

// clusters splits s into extended grapheme clusters.
func clusters(s string) []string {
	var parts []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		parts = append(parts, g.Str())
	}
	return parts
}
