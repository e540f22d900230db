// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diacritics

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// column names from the header row of the definitions table.
const (
	colGroup       = "group"
	colIPAName     = "ipa-name"
	colIPADesc     = "ipa-desc"
	colUnicodeName = "unicode-name"
	colUnicodeHex  = "unicode-hex"
	colName        = "tyipa-name"
	colAliases     = "tyipa-aliases"
)

// requiredColumns must all be present in every data row. The alias
// column is special-cased: a row may omit it entirely.
var requiredColumns = []string{
	colGroup, colIPAName, colIPADesc, colUnicodeName, colUnicodeHex, colName,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads the tabular diacritic definitions into an ordered
// sequence of records, preserving input order.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader backed by the OS filesystem.
func NewLoader() *Loader {
	return &Loader{fs: afero.NewOsFs()}
}

// SetFS sets the filesystem for testing.
func (l *Loader) SetFS(fs afero.Fs) {
	l.fs = fs
}

// Load reads the definitions file at path. The file must have a header
// row naming the columns; data rows are passed through verbatim except
// that the alias field is split on spaces. The load fails on a missing
// or unreadable file, a missing required column or field, an invalid
// code point, or a duplicate function name.
func (l *Loader) Load(path string) ([]*Record, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, &ErrReadFile{Path: path, Err: err}
	}
	return Parse(data)
}

// Parse reads records from the raw bytes of a definitions table.
// A leading UTF-8 byte-order marker is stripped.
func Parse(data []byte) ([]*Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // rows may legitimately omit the alias field

	header, err := r.Read()
	if err == io.EOF {
		return nil, &ErrMissingColumn{Column: colGroup}
	} else if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, &ErrMissingColumn{Column: name}
		}
	}
	aliasCol, hasAliasCol := index[colAliases]

	var records []*Record
	seen := make(map[string]bool)
	for row := 1; ; row++ {
		fields, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		get := func(name string) (string, bool) {
			i, ok := index[name]
			if !ok || i >= len(fields) {
				return "", false
			}
			return fields[i], true
		}

		rec := &Record{}
		for _, want := range []struct {
			column string
			field  *string
		}{
			{colGroup, &rec.Group},
			{colIPAName, &rec.IPAName},
			{colIPADesc, &rec.IPADesc},
			{colUnicodeName, &rec.UnicodeName},
			{colUnicodeHex, &rec.UnicodeHex},
			{colName, &rec.Name},
		} {
			value, ok := get(want.column)
			if !ok {
				return nil, &ErrMissingField{Row: row, Column: want.column}
			}
			*want.field = value
		}

		// missing alias field means "no aliases", not a fault
		if hasAliasCol && aliasCol < len(fields) {
			rec.Aliases = strings.Fields(fields[aliasCol])
		}

		if _, err := rec.CombiningRune(); err != nil {
			return nil, &ErrBadCodePoint{Row: row, Name: rec.Name, Hex: rec.UnicodeHex}
		}
		if seen[rec.Name] {
			return nil, &ErrDuplicateName{Row: row, Name: rec.Name}
		}
		seen[rec.Name] = true

		records = append(records, rec)
	}

	return records, nil
}
