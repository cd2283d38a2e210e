// Package lint provides the application service that sweeps a document
// collection and aggregates metadata violations into a report.
package lint

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/eykd/fmlint/internal/domain"
	"github.com/eykd/fmlint/internal/frontmatter"
	"github.com/eykd/fmlint/internal/rules"
)

// ReadFailurePrefix starts the violation recorded for an unreadable document.
const ReadFailurePrefix = "Could not read file: "

// DocumentFinder abstracts discovering the documents to check.
type DocumentFinder interface {
	FindDocuments(ctx context.Context) ([]string, error)
}

// ContentReader abstracts reading one document's text.
type ContentReader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// Option configures a Service.
type Option func(*Service)

// WithJobs sets how many documents are checked at once. Values below 1
// mean sequential.
func WithJobs(n int) Option {
	return func(s *Service) {
		if n < 1 {
			n = 1
		}
		s.jobs = n
	}
}

// WithLogger sets the logger used for per-document diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithRules replaces the default rule set.
func WithRules(r []rules.Rule) Option {
	return func(s *Service) { s.rules = r }
}

// WithVocabulary sets the tag vocabulary consulted by Tags.
func WithVocabulary(v *rules.Vocabulary) Option {
	return func(s *Service) { s.vocab = v }
}

// Service checks every document the finder yields.
type Service struct {
	finder DocumentFinder
	reader ContentReader
	jobs   int
	log    zerolog.Logger
	rules  []rules.Rule
	vocab  *rules.Vocabulary
}

// NewService creates a Service with the given dependencies.
func NewService(finder DocumentFinder, reader ContentReader, opts ...Option) *Service {
	s := &Service{
		finder: finder,
		reader: reader,
		jobs:   1,
		log:    zerolog.Nop(),
		rules:  rules.Default,
		vocab:  rules.DefaultVocabulary,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run discovers all documents, checks each one and returns the report of
// documents with at least one violation. Only a discovery failure or
// context cancellation aborts the sweep.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	paths, err := s.finder.FindDocuments(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int("documents", len(paths)).Msg("discovered documents")

	results := make([][]domain.Finding, len(paths))
	err = s.each(ctx, paths, func(i int, path string) {
		results[i] = s.checkDocument(ctx, path)
	})
	if err != nil {
		return nil, err
	}

	var findings []domain.Finding
	for _, docFindings := range results {
		findings = append(findings, docFindings...)
	}
	return NewReport(len(paths), findings), nil
}

// each calls fn for every path, fanning out over s.jobs workers. fn must
// only write state owned by its index.
func (s *Service) each(ctx context.Context, paths []string, fn func(i int, path string)) error {
	if s.jobs <= 1 {
		for i, p := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i, p)
		}
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			fn(i, p)
			return nil
		})
	}
	return g.Wait()
}

// checkDocument reads, extracts and checks one document.
func (s *Service) checkDocument(ctx context.Context, path string) []domain.Finding {
	content, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("could not read document")
		return []domain.Finding{{
			Type:    domain.FindingUnreadable,
			Message: ReadFailurePrefix + err.Error(),
			Path:    path,
		}}
	}

	block, err := frontmatter.Extract(content)
	findingType := domain.FindingInvalidMetadata
	if err != nil {
		findingType = extractFindingType(err)
		s.log.Debug().Err(err).Str("path", path).Str("kind", findingType).Msg("no usable frontmatter")
	}

	violations := rules.CheckWith(block, s.rules)
	s.log.Debug().Str("path", path).Int("violations", len(violations)).Msg("checked document")

	findings := make([]domain.Finding, len(violations))
	for i, msg := range violations {
		findings[i] = domain.Finding{Type: findingType, Message: msg, Path: path}
	}
	return findings
}

func extractFindingType(err error) string {
	if errors.Is(err, frontmatter.ErrMalformed) {
		return domain.FindingMalformedFrontmatter
	}
	return domain.FindingMissingFrontmatter
}
