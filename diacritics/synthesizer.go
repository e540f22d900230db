// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diacritics

import (
	"fmt"
	"strings"
	"unicode"
)

// Function synthesis produces Typst source text for one record. There
// are exactly two code shapes and they are fixed, so the synthesis is a
// pair of record-to-text formatters rather than a templating engine.
//
// The default shape appends the combining character after every
// grapheme cluster of the stringified argument. The tied shape joins
// exactly two clusters with the combining character and guards its
// argument with assertions that fire when the generated function is
// called, not when it is generated.

// SynthesizeFunction returns the source text of one accenting function:
// a structured doc comment followed by the function binding. The text
// ends with a blank line.
func SynthesizeFunction(r *Record) string {
	aliases := r.AliasField()
	if aliases == "" {
		aliases = "(none)"
	}

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "/// Apply the '%s' diacritic to `base`.\n", r.IPADesc)
	b.WriteString("/// \n")
	b.WriteString("/// Adds the following diacritic to `base`:\n")
	_, _ = fmt.Fprintf(&b, "/// / IPA name: %s\n", r.IPAName)
	_, _ = fmt.Fprintf(&b, "/// / IPA description: %s\n", r.IPADesc)
	_, _ = fmt.Fprintf(&b, "/// / Unicode name: %s\n", r.UnicodeName)
	_, _ = fmt.Fprintf(&b, "/// / Unicode hex: `0x%s`\n", r.UnicodeHex)
	_, _ = fmt.Fprintf(&b, "/// / TyIPA name: %s\n", r.Name)
	_, _ = fmt.Fprintf(&b, "/// / TyIPA alias(es): %s\n", aliases)
	b.WriteString("/// \n")
	b.WriteString("/// -> str\n")
	_, _ = fmt.Fprintf(&b, "#let %s(\n", r.Name)
	b.WriteString("  /// The character(s) to which the diacritic should be added.\n")
	b.WriteString("  /// -> str | symbol\n")
	b.WriteString("  base\n")
	b.WriteString(") = {\n")
	if r.IsTied() {
		b.WriteString("  assert(\n")
		b.WriteString("    type(base) == str,\n")
		_, _ = fmt.Fprintf(&b, "    message: \"%s() expects argument of type `str`, `\" + str(type(base)) + \"` given\"\n", r.Name)
		b.WriteString("  )\n")
		b.WriteString("  let parts = base.split(\"\")\n")
		b.WriteString("  assert(\n")
		b.WriteString("    parts.len() == 4,\n")
		_, _ = fmt.Fprintf(&b, "    message: \"%s() expects argument of length 2, \" + str(parts.len() - 2) + \" given\"\n", r.Name)
		b.WriteString("  )\n")
		_, _ = fmt.Fprintf(&b, "  parts.at(1) + \"\\u{%s}\" + parts.at(2)\n", r.UnicodeHex)
	} else {
		b.WriteString("  let modified = ()\n")
		b.WriteString("  for chr in str(base) {\n")
		_, _ = fmt.Fprintf(&b, "    modified.push(chr + \"\\u{%s}\")\n", r.UnicodeHex)
		b.WriteString("  }\n")
		b.WriteString("  modified.join(\"\")\n")
	}
	b.WriteString("}\n\n")
	return b.String()
}

// SynthesizeAlias returns the source text binding alias directly to the
// named function. The alias is the same function object, not a wrapper.
func SynthesizeAlias(name, alias string) string {
	return fmt.Sprintf("/// Alias for `%s`.\n#let %s = %s\n\n", name, alias, name)
}

// SectionComment returns the comment that opens a group of functions in
// the generated code file.
func SectionComment(group string) string {
	return fmt.Sprintf("/*** %s diacritics***/\n\n", capitalize(group))
}

// capitalize upper-cases the first character and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// titleCase upper-cases the first letter of every word and lower-cases
// the rest; any non-letter ends a word.
func titleCase(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		if !unicode.IsLetter(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
