// Package manifest snapshots a source documentation set for change
// detection: a content fingerprint per document and a deterministic hash
// over the whole set.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/wikimigrate/internal/batch"
	"git.home.luguber.info/inful/wikimigrate/internal/wikititle"
)

// Entry describes one source document as the converter would see it.
type Entry struct {
	Path         string `json:"path"`
	RelativePath string `json:"relative_path"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	Fingerprint  string `json:"fingerprint,omitempty"`
}

// Manifest is the serialized snapshot of a source set.
type Manifest struct {
	Files []Entry `json:"files"`
	Hash  string  `json:"hash"`
}

// Build reads every source document and produces the manifest. Unreadable
// files are included without a fingerprint rather than dropped, so the set
// hash still reflects their presence.
func Build(inputRoot string, sources []batch.Source, n *wikititle.Normalizer) *Manifest {
	entries := make([]Entry, 0, len(sources))
	for _, src := range sources {
		rel, err := filepath.Rel(inputRoot, src.Path)
		if err != nil {
			rel = src.Path
		}
		entry := Entry{
			Path:         src.Path,
			RelativePath: rel,
			Category:     src.Category,
			Title:        n.Normalize(src.Stem),
		}
		if content, err := os.ReadFile(src.Path); err == nil {
			entry.Fingerprint = mdfp.CalculateFingerprintFromParts("", string(content))
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].RelativePath < entries[j].RelativePath
	})

	return &Manifest{Files: entries, Hash: setHash(entries)}
}

// setHash computes a deterministic hash over the sorted entries. Same set,
// same hash; any content or membership change alters it.
func setHash(entries []Entry) string {
	if len(entries) == 0 {
		sum := sha256.Sum256([]byte("empty-source-set"))
		return hex.EncodeToString(sum[:])
	}
	h := sha256.New()
	for _, e := range entries {
		fmt.Fprintf(h, "%s|%s|%s|%s\n", e.RelativePath, e.Category, e.Title, e.Fingerprint)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ToJSON serializes the manifest.
func (m *Manifest) ToJSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
