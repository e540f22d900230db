// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package symdict

// Table is an insertion-ordered mapping of symbol name to character.
// A name keeps the position of its first insertion; writing it again
// only replaces the value. This matches the key semantics of the
// dictionary the serializer emits, so duplicate definitions in the
// source produce byte-identical output across reimplementations.
type Table struct {
	names []string
	chars map[string]string
}

func NewTable() *Table {
	return &Table{chars: make(map[string]string)}
}

// Set records the character for name, appending the name on first use.
func (t *Table) Set(name, char string) {
	if _, ok := t.chars[name]; !ok {
		t.names = append(t.names, name)
	}
	t.chars[name] = char
}

// Get returns the character recorded for name.
func (t *Table) Get(name string) (string, bool) {
	char, ok := t.chars[name]
	return char, ok
}

// Names returns the symbol names in first-insertion order.
func (t *Table) Names() []string {
	return t.names
}

// Len returns the number of unique names in the table.
func (t *Table) Len() int {
	return len(t.names)
}
