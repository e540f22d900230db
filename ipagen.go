// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package ipagen implements the build-time generators for the TyIPA
// typesetting package. The generators read hand-maintained definition
// files (a CSV table of diacritics and the symbol source file) and
// regenerate the derived Typst sources from scratch on every run.
package ipagen

import (
	"fmt"
	"strings"
	"time"
)

// Disclaimer is the header written at the top of every generated file.
// It names the command that regenerates the file, the input the
// maintainer is expected to edit instead, and carries a generation
// timestamp plus a count of the definitions included.
type Disclaimer struct {
	Summary     string // one-line description of the generated file
	Command     string // e.g. "ipagen diacritics"
	Source      string // the hand-maintained input file
	CountLabel  string // e.g. "Definitions included"
	Count       int
	GeneratedAt time.Time
}

// String renders the disclaimer as Typst doc-comment lines followed by
// a blank line. The timestamp drops sub-second precision so that two
// runs in the same second are byte-identical.
func (d Disclaimer) String() string {
	var b strings.Builder
	b.WriteString("/// ")
	b.WriteString(d.Summary)
	b.WriteString("\n/// \n")
	b.WriteString("/// This file was auto-generated. Re-run the package's\n")
	_, _ = fmt.Fprintf(&b, "/// `%s` command if you have updated\n", d.Command)
	_, _ = fmt.Fprintf(&b, "/// the definitions in `%s`.\n", d.Source)
	b.WriteString("/// \n")
	_, _ = fmt.Fprintf(&b, "/// File generated on: %s\n", d.GeneratedAt.Format("2006-01-02T15:04:05"))
	_, _ = fmt.Fprintf(&b, "/// %s: %d\n", d.CountLabel, d.Count)
	b.WriteString("\n")
	return b.String()
}
