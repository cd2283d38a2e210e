// Package rules applies the metadata conventions to a parsed header block.
package rules

import "github.com/eykd/fmlint/internal/domain"

// Violation messages, one per rule.
const (
	MsgMissingFrontmatter = "Missing frontmatter"
	MsgMissingDescription = "Missing or empty 'description'"
	MsgMissingTags        = "Missing or empty 'tags'"
	MsgTagsNotList        = "'tags' must be a list"
	MsgTooFewTags         = "'tags' must have at least 2 items"
	MsgTooManyTags        = "'tags' must have at most 4 items"
	MsgInvalidComments    = "Missing or invalid 'comments: true'"
)

// Tag count bounds, inclusive.
const (
	MinTags = 2
	MaxTags = 4
)

// Rule inspects a block and returns a violation message, or "" if the
// block satisfies it.
type Rule func(b *domain.Block) string

// Default is the fixed rule set, in reporting order.
var Default = []Rule{
	CheckDescription,
	CheckTags,
	CheckComments,
}

// Check applies the default rules to block. A nil block means the
// document had no usable header and yields only MsgMissingFrontmatter.
// All other rules run independently and their violations accumulate.
func Check(block *domain.Block) []string {
	return CheckWith(block, Default)
}

// CheckWith is Check with an explicit rule set.
func CheckWith(block *domain.Block, rules []Rule) []string {
	if block == nil {
		return []string{MsgMissingFrontmatter}
	}

	var violations []string
	for _, rule := range rules {
		if msg := rule(block); msg != "" {
			violations = append(violations, msg)
		}
	}
	return violations
}

// CheckDescription requires a non-empty description.
func CheckDescription(b *domain.Block) string {
	v, ok := b.Get("description")
	if !ok || v.Empty() {
		return MsgMissingDescription
	}
	return ""
}

// CheckTags requires tags to be a list of MinTags to MaxTags items. Only
// the first failing condition is reported.
func CheckTags(b *domain.Block) string {
	v, ok := b.Get("tags")
	if !ok || v.Empty() {
		return MsgMissingTags
	}
	items, isList := v.Items()
	switch {
	case !isList:
		return MsgTagsNotList
	case len(items) < MinTags:
		return MsgTooFewTags
	case len(items) > MaxTags:
		return MsgTooManyTags
	}
	return ""
}

// CheckComments requires comments to be the boolean true.
func CheckComments(b *domain.Block) string {
	v, ok := b.Get("comments")
	if !ok || !v.IsTrue() {
		return MsgInvalidComments
	}
	return ""
}
