// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diacritics

import "fmt"

// ErrReadFile is returned when the definitions file is missing or unreadable.
type ErrReadFile struct {
	Path string
	Err  error
}

func (e *ErrReadFile) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ErrReadFile) Unwrap() error {
	return e.Err
}

// ErrWriteFile is returned when writing a generated file fails.
type ErrWriteFile struct {
	Op   string // mkdir, write
	Path string
	Err  error
}

func (e *ErrWriteFile) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrWriteFile) Unwrap() error {
	return e.Err
}

// ErrMissingColumn is returned when the header row lacks a required column.
type ErrMissingColumn struct {
	Column string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// ErrMissingField is returned when a data row is missing a required field.
// Row is 1-based and counts data rows, not the header.
type ErrMissingField struct {
	Row    int
	Column string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("row %d: missing required field %q", e.Row, e.Column)
}

// ErrBadCodePoint is returned when a record's hex code point does not
// decode to a valid Unicode scalar value.
type ErrBadCodePoint struct {
	Row  int
	Name string
	Hex  string
}

func (e *ErrBadCodePoint) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s: invalid code point %q", e.Row, e.Name, e.Hex)
	}
	return fmt.Sprintf("%s: invalid code point %q", e.Name, e.Hex)
}

// ErrDuplicateName is returned when two records share a generated
// function name.
type ErrDuplicateName struct {
	Row  int
	Name string
}

func (e *ErrDuplicateName) Error() string {
	return fmt.Sprintf("row %d: duplicate function name %q", e.Row, e.Name)
}
