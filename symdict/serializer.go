// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package symdict

import (
	"fmt"
	"strings"
)

// Serialize renders the table as a literal Typst dictionary bound to
// sym-dict, one entry per unique name in first-insertion order.
func Serialize(t *Table) string {
	var b strings.Builder
	b.WriteString("#let sym-dict = (\n")
	for _, name := range t.Names() {
		char, _ := t.Get(name)
		_, _ = fmt.Fprintf(&b, "  \"%s\": \"%s\",\n", name, char)
	}
	b.WriteString(")\n")
	return b.String()
}
