// Package batch drives a whole migration run: it walks the categorized
// source tree, hands each document to the processor, builds the category
// index and aggregates everything into a RunSummary.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/wikimigrate/internal/config"
	"git.home.luguber.info/inful/wikimigrate/internal/convert"
)

// Source is one document selected for processing, with the category its
// location assigns it.
type Source struct {
	Path     string
	Stem     string
	Category string
}

// Collect enumerates the documents a run would process: every
// extension-matching file directly inside each configured category directory
// (no recursion), then extension-matching files directly under the input
// root, minus the reserved denylist, under the default category. A missing
// category directory is a warning, never an error.
func Collect(cfg *config.Config, inputRoot string) ([]Source, []string, error) {
	var sources []Source
	var warnings []string

	for _, m := range cfg.Categories {
		dir := filepath.Join(inputRoot, m.Dir)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("category directory not found: %s", dir))
			continue
		}
		files, err := listDocs(dir, cfg.Extension)
		if err != nil {
			return nil, nil, err
		}
		for _, f := range files {
			sources = append(sources, Source{Path: f, Stem: convert.Stem(f), Category: m.Label})
		}
	}

	rootFiles, err := listDocs(inputRoot, cfg.Extension)
	if err != nil {
		return nil, nil, err
	}
	reserved := make(map[string]bool, len(cfg.Reserved))
	for _, name := range cfg.Reserved {
		reserved[name] = true
	}
	for _, f := range rootFiles {
		if reserved[filepath.Base(f)] {
			continue
		}
		sources = append(sources, Source{Path: f, Stem: convert.Stem(f), Category: cfg.DefaultCategory})
	}

	return sources, warnings, nil
}

// listDocs returns extension-matching regular files directly inside dir, in
// lexical order.
func listDocs(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
