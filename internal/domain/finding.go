package domain

// Finding type constants identify the kind of issue found.
const (
	FindingMissingFrontmatter   = "missing_frontmatter"
	FindingMalformedFrontmatter = "malformed_frontmatter"
	FindingUnreadable           = "unreadable"
	FindingInvalidMetadata      = "invalid_metadata"
)

// Finding is one violation discovered in one document.
type Finding struct {
	Type    string
	Message string
	Path    string
}
