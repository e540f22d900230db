// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package symdict

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdhender/ipagen"
	"github.com/spf13/afero"
)

// Generator runs the symbol dictionary pipeline: scan the symbol
// source once, then write the dictionary file.
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

// Run scans srcPath and writes the generated dictionary to outPath.
// It returns the number of symbol definitions written.
func (g *Generator) Run(srcPath, outPath string) (int, error) {
	if g.verbose {
		log.Printf("symdict: reading symbols from %s\n", srcPath)
	}

	scanner := NewScanner()
	scanner.SetFS(g.fs)
	table, err := scanner.ScanFile(srcPath)
	if err != nil {
		return 0, err
	}
	if g.verbose {
		log.Printf("symdict: found %d symbol definitions\n", table.Len())
	}

	var b strings.Builder
	b.WriteString(ipagen.Disclaimer{
		Summary:     "Internal dictionary of known symbols.",
		Command:     "ipagen symdict",
		Source:      srcPath,
		CountLabel:  "Symbol definitions included",
		Count:       table.Len(),
		GeneratedAt: g.now(),
	}.String())
	b.WriteString(Serialize(table))

	if dir := filepath.Dir(outPath); dir != "." {
		if err := g.fs.MkdirAll(dir, 0755); err != nil {
			return 0, &ErrWriteFile{Op: "mkdir", Path: dir, Err: err}
		}
	}
	if err := afero.WriteFile(g.fs, outPath, []byte(b.String()), 0644); err != nil {
		return 0, &ErrWriteFile{Op: "write", Path: outPath, Err: err}
	}
	if g.verbose {
		log.Printf("symdict: wrote dictionary to %s\n", outPath)
	}

	return table.Len(), nil
}
