// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diacritics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mdhender/ipagen/diacritics"
	"github.com/spf13/afero"
)

func fixedClock(s string) func() time.Time {
	ts, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func writeFixture(t *testing.T, fs afero.Fs, rows ...string) {
	t.Helper()
	input := header + strings.Join(rows, "\n") + "\n"
	if err := afero.WriteFile(fs, "src/_diacritics.csv", []byte(input), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func runGenerator(t *testing.T, fs afero.Fs, clock func() time.Time) int {
	t.Helper()
	g, err := diacritics.NewGenerator(diacritics.WithFS(fs), diacritics.WithClock(clock))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	n, err := g.Run("src/_diacritics.csv", "src/_diacritics.typ", "manual/_list-diacritics.typ")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return n
}

func TestGenerator_Run(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFixture(t, fs,
		"phonation,Voiceless,voiceless,COMBINING RING BELOW,0325,voiceless,vcl",
		"segmentation,Tie bar (above),affricate / double articulation,COMBINING DOUBLE INVERTED BREVE,0361,tied-above,",
	)

	n := runGenerator(t, fs, fixedClock("2026-08-25T12:00:00"))
	if got, want := n, 2; got != want {
		t.Fatalf("count = %d, want %d", got, want)
	}

	code, err := afero.ReadFile(fs, "src/_diacritics.typ")
	if err != nil {
		t.Fatalf("read code: %v", err)
	}
	for _, want := range []string{
		"/// Accenting functions for the diacritics of the IPA.\n",
		"/// `ipagen diacritics` command if you have updated\n",
		"/// File generated on: 2026-08-25T12:00:00\n",
		"/// Definitions included: 2\n",
		"/*** Phonation diacritics***/\n",
		"/*** Segmentation diacritics***/\n",
		"#let voiceless(",
		"#let vcl = voiceless",
		"#let tied-above(",
	} {
		if !strings.Contains(string(code), want) {
			t.Fatalf("code file missing %q", want)
		}
	}

	manual, err := afero.ReadFile(fs, "manual/_list-diacritics.typ")
	if err != nil {
		t.Fatalf("read manual: %v", err)
	}
	for _, want := range []string{
		"/// Display listing of TyIPA diacritic functions.\n",
		"#import \"../src/lib.typ\" as ipa\n",
		"#import \"./_display-layouts.typ\": display-diac\n",
		"\n== Phonation\n",
		"\n== Segmentation\n",
		"ipa.diac.tied-above(ipa.sym.placeholder + ipa.sym.placeholder),",
		"note: \"Expects an argument of length exactly 2.\",",
	} {
		if !strings.Contains(string(manual), want) {
			t.Fatalf("manual file missing %q", want)
		}
	}
}

func TestGenerator_SectionBreaksFollowInputOrder(t *testing.T) {
	// groups A, A, B, A produce three section comments: A, B, A
	fs := afero.NewMemMapFs()
	writeFixture(t, fs,
		"alpha,One,one,COMBINING RING BELOW,0325,one,",
		"alpha,Two,two,COMBINING RING ABOVE,030A,two,",
		"beta,Three,three,COMBINING ACUTE ACCENT,0301,three,",
		"alpha,Four,four,COMBINING GRAVE ACCENT,0300,four,",
	)

	runGenerator(t, fs, fixedClock("2026-08-25T12:00:00"))

	code, err := afero.ReadFile(fs, "src/_diacritics.typ")
	if err != nil {
		t.Fatalf("read code: %v", err)
	}

	var sections []string
	for _, line := range strings.Split(string(code), "\n") {
		if strings.HasPrefix(line, "/***") {
			sections = append(sections, line)
		}
	}
	want := []string{
		"/*** Alpha diacritics***/",
		"/*** Beta diacritics***/",
		"/*** Alpha diacritics***/",
	}
	if len(sections) != len(want) {
		t.Fatalf("sections = %v, want %v", sections, want)
	}
	for i := range want {
		if sections[i] != want[i] {
			t.Fatalf("sections[%d] = %q, want %q", i, sections[i], want[i])
		}
	}
}

func TestGenerator_RerunDiffersOnlyInTimestamp(t *testing.T) {
	rows := []string{
		"phonation,Voiceless,voiceless,COMBINING RING BELOW,0325,voiceless,vcl",
	}

	render := func(clock func() time.Time) string {
		fs := afero.NewMemMapFs()
		writeFixture(t, fs, rows...)
		runGenerator(t, fs, clock)
		code, err := afero.ReadFile(fs, "src/_diacritics.typ")
		if err != nil {
			t.Fatalf("read code: %v", err)
		}
		return string(code)
	}

	first := strings.Split(render(fixedClock("2026-08-25T12:00:00")), "\n")
	second := strings.Split(render(fixedClock("2026-08-26T08:30:00")), "\n")

	if len(first) != len(second) {
		t.Fatalf("line counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] == second[i] {
			continue
		}
		if !strings.HasPrefix(first[i], "/// File generated on: ") {
			t.Fatalf("line %d differs beyond the timestamp: %q vs %q", i, first[i], second[i])
		}
	}
}
