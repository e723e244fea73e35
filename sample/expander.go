package sample

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Expander matches glob patterns against the files below one base directory,
// normally the directory containing the CSV being converted. The directory is
// scanned at most once per Expander; patterns without metacharacters never
// trigger a scan at all.
type Expander struct {
	base    string
	scanned bool
	files   []string
}

// NewExpander returns an Expander rooted at base.
func NewExpander(base string) *Expander {
	return &Expander{base: base}
}

// Expand returns the candidate files matching pattern, as "./"-prefixed
// slash-separated paths in lexicographic order. A pattern with no glob
// metacharacters is a literal path and is returned unchanged as the sole
// match. A pattern that fails to compile matches nothing.
func (e *Expander) Expand(pattern string) []string {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil
	}
	var matches []string
	for _, f := range e.candidates() {
		if g.Match(f) {
			matches = append(matches, f)
		}
	}
	return matches
}

// candidates lists every regular file below the base directory except CSV
// sheets, relative to the base and sorted. Unreadable subtrees are skipped.
func (e *Expander) candidates() []string {
	if e.scanned {
		return e.files
	}
	e.scanned = true
	filepath.WalkDir(e.base, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), ".csv") {
			return nil
		}
		rel, err := filepath.Rel(e.base, p)
		if err != nil {
			return nil
		}
		e.files = append(e.files, "./"+filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(e.files)
	return e.files
}
