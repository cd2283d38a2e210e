package lint

import (
	"sort"

	"github.com/eykd/fmlint/internal/domain"
)

// Entry holds the violations found in one document.
type Entry struct {
	Path       string
	Violations []string
	findings   []domain.Finding
}

// Report maps each invalid document to its violations. It is built once
// by Service.Run and not modified afterwards.
type Report struct {
	checked int
	entries []Entry
	index   map[string]int
}

// NewReport builds a Report from findings, grouping them by path. checked
// is the number of documents examined, valid ones included.
func NewReport(checked int, findings []domain.Finding) *Report {
	r := &Report{checked: checked, index: map[string]int{}}
	for _, f := range findings {
		i, ok := r.index[f.Path]
		if !ok {
			i = len(r.entries)
			r.index[f.Path] = i
			r.entries = append(r.entries, Entry{Path: f.Path})
		}
		r.entries[i].Violations = append(r.entries[i].Violations, f.Message)
		r.entries[i].findings = append(r.entries[i].findings, f)
	}

	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Path < r.entries[j].Path
	})
	for i, e := range r.entries {
		r.index[e.Path] = i
	}
	return r
}

// Valid reports whether no document had a violation.
func (r *Report) Valid() bool { return len(r.entries) == 0 }

// Len returns the number of invalid documents.
func (r *Report) Len() int { return len(r.entries) }

// Checked returns the number of documents examined.
func (r *Report) Checked() int { return r.checked }

// Entries returns the invalid documents sorted by path.
func (r *Report) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Violations returns the violations recorded for path, or nil if the
// document was valid or never checked.
func (r *Report) Violations(path string) []string {
	i, ok := r.index[path]
	if !ok {
		return nil
	}
	return append([]string(nil), r.entries[i].Violations...)
}

// Findings returns every violation with its kind, ordered by path.
func (r *Report) Findings() []domain.Finding {
	var out []domain.Finding
	for _, e := range r.entries {
		out = append(out, e.findings...)
	}
	return out
}
