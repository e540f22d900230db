// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package diacritics regenerates the TyIPA accenting functions and
// their manual listing from the tabular diacritic definitions.
package diacritics

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Record is one row from the diacritic definitions table. Values are
// carried verbatim from the input file; the loader performs no case or
// whitespace normalization.
type Record struct {
	Group       string   // category label, drives section grouping and code shape
	IPAName     string   // e.g. "Voiceless"
	IPADesc     string   // e.g. "voiceless"
	UnicodeName string   // e.g. "COMBINING RING BELOW"
	UnicodeHex  string   // hex code point, no "0x" prefix
	Name        string   // generated function name, unique across a load
	Aliases     []string // alias names, may be empty
}

// IsTied reports whether the record generates the tied-segmentation
// code shape: a function that joins exactly two grapheme clusters with
// a combining tie bar instead of accenting every cluster.
func (r *Record) IsTied() bool {
	return r.Group == "segmentation" && strings.HasPrefix(r.Name, "tied-")
}

// CombiningRune decodes UnicodeHex into the combining character the
// generated function inserts.
func (r *Record) CombiningRune() (rune, error) {
	v, err := strconv.ParseUint(r.UnicodeHex, 16, 32)
	if err != nil {
		return utf8.RuneError, err
	}
	if !utf8.ValidRune(rune(v)) {
		return utf8.RuneError, &ErrBadCodePoint{Name: r.Name, Hex: r.UnicodeHex}
	}
	return rune(v), nil
}

// AliasField returns the alias list as it appeared in the input file:
// space-separated, empty when the record has no aliases.
func (r *Record) AliasField() string {
	return strings.Join(r.Aliases, " ")
}
