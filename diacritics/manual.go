// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diacritics

import (
	"fmt"
	"strings"
)

// ManualHeading returns the markup heading that opens a group of
// display cards in the generated manual listing.
func ManualHeading(group string) string {
	return fmt.Sprintf("\n== %s\n\n", titleCase(group))
}

// ManualCard returns the display card for one record: the function
// applied to placeholder glyphs, its call signature, the IPA name and
// description, the escape notation of the code point, the alias
// signatures if any, and for the tied shape a note about the required
// argument length.
func ManualCard(r *Record) string {
	typeSig := "str | symbol"
	symbol := fmt.Sprintf("ipa.diac.%s(ipa.sym.placeholder)", r.Name)
	notes := ""
	if r.IsTied() {
		typeSig = "str"
		symbol = fmt.Sprintf("ipa.diac.%s(ipa.sym.placeholder + ipa.sym.placeholder)", r.Name)
		notes = "  note: \"Expects an argument of length exactly 2.\",\n"
	}
	code := fmt.Sprintf("%s(base: %s)", r.Name, typeSig)

	aliases := ""
	if field := r.AliasField(); field != "" {
		aliases = fmt.Sprintf("  aliases: (\"%s(base: %s)\",),\n", field, typeSig)
	}

	var b strings.Builder
	b.WriteString("#display-diac(\n")
	_, _ = fmt.Fprintf(&b, "  %s,\n", symbol)
	_, _ = fmt.Fprintf(&b, "  \"%s\",\n", code)
	_, _ = fmt.Fprintf(&b, "  \"%s\",\n", r.IPAName)
	_, _ = fmt.Fprintf(&b, "  \"%s\",\n", r.IPADesc)
	_, _ = fmt.Fprintf(&b, "  escape: \"\\\\u{%s}\",\n", r.UnicodeHex)
	b.WriteString(aliases)
	b.WriteString(notes)
	b.WriteString(")\n")
	return b.String()
}
