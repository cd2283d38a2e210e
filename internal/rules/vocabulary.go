package rules

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultVocabulary is the closed set of category labels posts may be
// tagged with. It is not consulted by Check; membership is reported by
// the tags command only. Enforcing it would be a new rule.
var DefaultVocabulary = NewVocabulary(
	"Python",
	"Testing",
	"Config Files",
	"Data Analysis",
	"Development",
	"Docker",
	"Pandas",
	"PyMC",
	"Marketing",
	"Design Patterns",
	"Documentation",
	"GitHub Actions",
)

// Vocabulary is an immutable set of allowed tag labels.
type Vocabulary struct {
	labels map[string]bool
	folded map[string]string
}

// NewVocabulary builds a Vocabulary from labels. Labels are stored
// NFC-normalized.
func NewVocabulary(labels ...string) *Vocabulary {
	v := &Vocabulary{
		labels: make(map[string]bool, len(labels)),
		folded: make(map[string]string, len(labels)),
	}
	for _, l := range labels {
		l = norm.NFC.String(l)
		v.labels[l] = true
		v.folded[fold(l)] = l
	}
	return v
}

func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Contains reports whether tag is exactly one of the labels.
func (v *Vocabulary) Contains(tag string) bool {
	return v.labels[norm.NFC.String(tag)]
}

// Lookup returns the canonical label matching tag under case folding.
func (v *Vocabulary) Lookup(tag string) (string, bool) {
	l, ok := v.folded[fold(tag)]
	return l, ok
}

// Labels returns the labels in sorted order.
func (v *Vocabulary) Labels() []string {
	out := make([]string, 0, len(v.labels))
	for l := range v.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of labels.
func (v *Vocabulary) Len() int { return len(v.labels) }
