package lint

import (
	"context"
	"sort"

	"github.com/eykd/fmlint/internal/domain"
	"github.com/eykd/fmlint/internal/frontmatter"
)

// TagCount describes how often one tag label is used.
type TagCount struct {
	Tag   string
	Count int
	// Known reports whether Tag is exactly a vocabulary label.
	Known bool
	// Suggestion is the vocabulary label Tag matches under case folding,
	// set only when Known is false.
	Suggestion string
}

// TagUsage summarizes tag labels across the collection.
type TagUsage struct {
	Documents int
	Tags      []TagCount
}

// Unknown returns the tags that are not vocabulary labels.
func (u *TagUsage) Unknown() []TagCount {
	var out []TagCount
	for _, t := range u.Tags {
		if !t.Known {
			out = append(out, t)
		}
	}
	return out
}

// Tags counts tag labels across all documents with a tags list.
// Documents without readable metadata are skipped; this sweep is
// informational and never produces violations.
func (s *Service) Tags(ctx context.Context) (*TagUsage, error) {
	paths, err := s.finder.FindDocuments(ctx)
	if err != nil {
		return nil, err
	}

	perDoc := make([][]string, len(paths))
	err = s.each(ctx, paths, func(i int, path string) {
		perDoc[i] = s.documentTags(ctx, path)
	})
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, tags := range perDoc {
		for _, t := range tags {
			counts[t]++
		}
	}

	usage := &TagUsage{Documents: len(paths)}
	for tag, n := range counts {
		tc := TagCount{Tag: tag, Count: n, Known: s.vocab.Contains(tag)}
		if !tc.Known {
			if canonical, ok := s.vocab.Lookup(tag); ok {
				tc.Suggestion = canonical
			}
		}
		usage.Tags = append(usage.Tags, tc)
	}
	sort.Slice(usage.Tags, func(i, j int) bool {
		a, b := usage.Tags[i], usage.Tags[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Tag < b.Tag
	})
	return usage, nil
}

func (s *Service) documentTags(ctx context.Context, path string) []string {
	content, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		s.log.Debug().Err(err).Str("path", path).Msg("skipping unreadable document")
		return nil
	}
	block, err := frontmatter.Extract(content)
	if err != nil {
		return nil
	}
	v, _ := block.Get("tags")
	items, ok := v.Items()
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		if k := item.Kind(); k == domain.KindSequence || k == domain.KindMapping {
			continue
		}
		if t := item.Text(); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
