// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package diacritics

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdhender/ipagen"
	"github.com/spf13/afero"
)

// Generator runs the diacritic pipeline: load the definitions table
// once, then write the accenting functions file and the manual display
// listing. Each run regenerates both outputs from scratch.
type Generator struct {
	fs      afero.Fs
	now     func() time.Time
	verbose bool
}

type Option func(g *Generator) error

// WithFS sets the filesystem, for testing.
func WithFS(fs afero.Fs) Option {
	return func(g *Generator) error {
		g.fs = fs
		return nil
	}
}

// WithClock sets the timestamp source, for testing.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) error {
		g.now = now
		return nil
	}
}

func WithVerbose(flag bool) Option {
	return func(g *Generator) error {
		g.verbose = flag
		return nil
	}
}

func NewGenerator(options ...Option) (*Generator, error) {
	g := &Generator{
		fs:  afero.NewOsFs(),
		now: time.Now,
	}
	for _, option := range options {
		if err := option(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Run loads the definitions from csvPath and writes the generated
// functions to codePath and the manual listing to manualPath. It
// returns the number of definitions written. On error the outputs may
// be truncated or stale; a rerun overwrites them from scratch.
func (g *Generator) Run(csvPath, codePath, manualPath string) (int, error) {
	if g.verbose {
		log.Printf("diacritics: reading definitions from %s\n", csvPath)
	}

	loader := NewLoader()
	loader.SetFS(g.fs)
	records, err := loader.Load(csvPath)
	if err != nil {
		return 0, err
	}
	if g.verbose {
		log.Printf("diacritics: found %d diacritic definitions\n", len(records))
	}

	generatedAt := g.now()

	if err := g.write(codePath, g.renderCode(records, csvPath, generatedAt)); err != nil {
		return 0, err
	}
	if g.verbose {
		log.Printf("diacritics: wrote accenting functions to %s\n", codePath)
	}

	if err := g.write(manualPath, g.renderManual(records, csvPath, generatedAt)); err != nil {
		return 0, err
	}
	if g.verbose {
		log.Printf("diacritics: wrote display listing to %s\n", manualPath)
	}

	return len(records), nil
}

// renderCode produces the accenting functions file: disclaimer header,
// then one function per record with a section comment whenever the
// group changes from the previous record. Groups are not sorted, so
// interleaved groups produce repeated section comments.
func (g *Generator) renderCode(records []*Record, source string, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString(ipagen.Disclaimer{
		Summary:     "Accenting functions for the diacritics of the IPA.",
		Command:     "ipagen diacritics",
		Source:      source,
		CountLabel:  "Definitions included",
		Count:       len(records),
		GeneratedAt: generatedAt,
	}.String())

	lastSection := ""
	for _, r := range records {
		if r.Group != lastSection {
			lastSection = r.Group
			b.WriteString(SectionComment(r.Group))
		}
		b.WriteString(SynthesizeFunction(r))
		for _, alias := range r.Aliases {
			b.WriteString(SynthesizeAlias(r.Name, alias))
		}
	}
	return b.String()
}

// renderManual produces the manual display listing: disclaimer header,
// the two imports the cards rely on, then one card per record under
// headings that follow the same group-change rule as renderCode.
func (g *Generator) renderManual(records []*Record, source string, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString(ipagen.Disclaimer{
		Summary:     "Display listing of TyIPA diacritic functions.",
		Command:     "ipagen diacritics",
		Source:      source,
		CountLabel:  "Definitions included",
		Count:       len(records),
		GeneratedAt: generatedAt,
	}.String())
	b.WriteString("#import \"../src/lib.typ\" as ipa\n")
	b.WriteString("#import \"./_display-layouts.typ\": display-diac\n")
	b.WriteString("\n")

	lastSection := ""
	for _, r := range records {
		if r.Group != lastSection {
			lastSection = r.Group
			b.WriteString(ManualHeading(r.Group))
		}
		b.WriteString(ManualCard(r))
	}
	return b.String()
}

func (g *Generator) write(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := g.fs.MkdirAll(dir, 0755); err != nil {
			return &ErrWriteFile{Op: "mkdir", Path: dir, Err: err}
		}
	}
	if err := afero.WriteFile(g.fs, path, []byte(content), 0644); err != nil {
		return &ErrWriteFile{Op: "write", Path: path, Err: err}
	}
	return nil
}
