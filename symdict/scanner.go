// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package symdict recovers the dictionary of known TyIPA symbols from
// the hand-maintained symbol source file and serializes it as a literal
// Typst dictionary.
package symdict

import (
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

var (
	// rxSymbolDef matches the opening line of a symbol definition,
	// e.g. `#let bilabial-click = symbol(`, and captures the name.
	rxSymbolDef = regexp.MustCompile(`^[\t ]*#let[\t ]+([a-zA-Z\-]+)[\t ]*=[\t ]*symbol\([\t ]*(?://.*)*$`)

	// rxPrimary matches the default variant of the current symbol,
	// e.g. `"ʘ",` with an optional trailing comment.
	rxPrimary = regexp.MustCompile(`^[\t ]*"(\S)"[\t ]*,[\t ]*(?://.*)*$`)

	// rxSecondary matches a named variant of the current symbol,
	// e.g. `("alveolar", "ǃ"),`.
	rxSecondary = regexp.MustCompile(`^[\t ]*\([\t ]*"([a-zA-Z\-\.]+)"[\t ]*,[\t ]*"(\S)"\)[\t ]*,[\t ]*(?://.*)*`)
)

// Scanner recovers symbol definitions from the symbol source file.
//
// The scan is a single forward pass matching each line against three
// fixed patterns, carrying the most recent definition name as the
// current symbol. It tracks no nesting or block structure, which makes
// it fragile to reformatting but adequate for its one well-known input
// file; if the patterns change, change them in lockstep with the
// source file's layout.
type Scanner struct {
	fs afero.Fs
}

// NewScanner creates a Scanner backed by the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fs: afero.NewOsFs()}
}

// SetFS sets the filesystem for testing.
func (s *Scanner) SetFS(fs afero.Fs) {
	s.fs = fs
}

// ScanFile reads the symbol source file at path and scans it. The only
// failure is an unreadable input file.
func (s *Scanner) ScanFile(path string) (*Table, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, &ErrReadFile{Path: path, Err: err}
	}
	return Scan(data), nil
}

// Scan runs the forward pass over input. Patterns are tried in order
// and only the first match per line is acted on. A primary or
// secondary association seen before any definition line is skipped,
// never a fault. Duplicate names keep their first position in the
// table but take the last value written.
func Scan(input []byte) *Table {
	table := NewTable()
	current, seen := "", false
	for _, line := range strings.Split(string(input), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := rxSymbolDef.FindStringSubmatch(line); m != nil {
			current, seen = m[1], true
			continue
		}
		if m := rxPrimary.FindStringSubmatch(line); m != nil {
			if seen {
				table.Set(current, m[1])
			}
			continue
		}
		if m := rxSecondary.FindStringSubmatch(line); m != nil {
			if seen {
				table.Set(current+"."+m[1], m[2])
			}
		}
	}
	return table
}
