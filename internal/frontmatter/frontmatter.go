package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eykd/fmlint/internal/domain"
)

// ErrNoHeader is returned when a document does not open with a --- line.
var ErrNoHeader = errors.New("no frontmatter")

// ErrUnclosed is returned when the opening --- line has no closing partner.
var ErrUnclosed = errors.New("unclosed frontmatter")

// ErrMalformed is returned when the header block is not a YAML mapping.
var ErrMalformed = errors.New("malformed frontmatter")

// maxNodes bounds the number of values produced from one header so that
// alias expansion cannot balloon a small document.
const maxNodes = 10000

// ErrorKind classifies why extraction produced no usable metadata.
type ErrorKind int

const (
	// KindNoHeader means no bounded header region starts the document.
	KindNoHeader ErrorKind = iota
	// KindMalformed means a header was found but its content did not parse
	// to a mapping.
	KindMalformed
)

// String returns the finding-style name of the kind.
func (k ErrorKind) String() string {
	if k == KindMalformed {
		return "malformed"
	}
	return "no_header"
}

// ExtractError reports an extraction failure and its kind.
type ExtractError struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExtractError) Unwrap() error {
	return e.Err
}

// Is matches ErrNoHeader and ErrMalformed by kind.
func (e *ExtractError) Is(target error) bool {
	switch target {
	case ErrNoHeader:
		return e.Kind == KindNoHeader
	case ErrMalformed:
		return e.Kind == KindMalformed
	}
	return false
}

// isDelimiter reports whether line is --- with only trailing blanks.
func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == "---"
}

// Split separates a document into frontmatter and body components.
// Frontmatter is delimited by --- on its own line and must start at the
// first byte of the input.
func Split(input string) (string, string, error) {
	nl := strings.IndexByte(input, '\n')
	if nl < 0 {
		if isDelimiter(input) {
			return "", "", ErrUnclosed
		}
		return "", input, ErrNoHeader
	}
	if !isDelimiter(input[:nl]) {
		return "", input, ErrNoHeader
	}

	rest := input[nl+1:]
	pos := 0
	for pos < len(rest) {
		nlIdx := strings.IndexByte(rest[pos:], '\n')

		var line string
		var nextPos int
		if nlIdx < 0 {
			line = rest[pos:]
			nextPos = len(rest)
		} else {
			line = rest[pos : pos+nlIdx]
			nextPos = pos + nlIdx + 1
		}

		if isDelimiter(line) {
			return rest[:pos], rest[nextPos:], nil
		}

		pos = nextPos
	}

	return "", "", ErrUnclosed
}

// Extract locates the header block of input and parses it into a Block.
// A document without a header yields an *ExtractError of KindNoHeader;
// a header that is not a YAML mapping yields KindMalformed. An empty
// header yields an empty Block.
func Extract(input string) (*domain.Block, error) {
	fm, _, err := Split(input)
	if err != nil {
		return nil, &ExtractError{Kind: KindNoHeader, Err: err}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(fm), &doc); err != nil {
		return nil, &ExtractError{Kind: KindMalformed, Err: fmt.Errorf("parsing frontmatter: %w", err)}
	}
	if len(doc.Content) == 0 {
		return domain.NewBlock(), nil
	}

	root := resolve(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return domain.NewBlock(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ExtractError{
			Kind: KindMalformed,
			Err:  fmt.Errorf("%w: line %d: expected a mapping", ErrMalformed, root.Line),
		}
	}

	c := &converter{}
	block, err := c.mapping(root)
	if err != nil {
		return nil, &ExtractError{Kind: KindMalformed, Err: err}
	}
	return block, nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// converter turns a yaml.Node tree into domain values.
type converter struct {
	nodes int
}

// visit counts one unit of conversion work against maxNodes.
func (c *converter) visit() error {
	c.nodes++
	if c.nodes > maxNodes {
		return fmt.Errorf("%w: more than %d values", ErrMalformed, maxNodes)
	}
	return nil
}

func (c *converter) value(n *yaml.Node) (domain.Value, error) {
	if err := c.visit(); err != nil {
		return domain.Value{}, err
	}

	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return scalar(n), nil
	case yaml.SequenceNode:
		items := make([]domain.Value, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := c.value(child)
			if err != nil {
				return domain.Value{}, err
			}
			items = append(items, v)
		}
		return domain.Sequence(items...), nil
	case yaml.MappingNode:
		b, err := c.mapping(n)
		if err != nil {
			return domain.Value{}, err
		}
		return domain.Mapping(b), nil
	}
	return domain.Value{}, fmt.Errorf("%w: line %d: unsupported node", ErrMalformed, n.Line)
}

func (c *converter) mapping(n *yaml.Node) (*domain.Block, error) {
	if err := c.visit(); err != nil {
		return nil, err
	}
	b := domain.NewBlock()
	for i := 0; i < len(n.Content)-1; i += 2 {
		key := resolve(n.Content[i])
		val := n.Content[i+1]

		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: mapping key is not a scalar", ErrMalformed, key.Line)
		}
		if key.ShortTag() == "!!merge" {
			if err := c.merge(b, val); err != nil {
				return nil, err
			}
			continue
		}

		v, err := c.value(val)
		if err != nil {
			return nil, err
		}
		b.Set(key.Value, v)
	}
	return b, nil
}

// merge applies a << merge key. Keys already present in b win.
func (c *converter) merge(b *domain.Block, val *yaml.Node) error {
	val = resolve(val)
	sources := []*yaml.Node{val}
	if val.Kind == yaml.SequenceNode {
		sources = val.Content
	}
	for _, src := range sources {
		if err := c.visit(); err != nil {
			return err
		}
		src = resolve(src)
		if src.Kind != yaml.MappingNode {
			return fmt.Errorf("%w: line %d: merge value is not a mapping", ErrMalformed, src.Line)
		}
		merged, err := c.mapping(src)
		if err != nil {
			return err
		}
		for _, k := range merged.Keys() {
			if _, exists := b.Get(k); exists {
				continue
			}
			v, _ := merged.Get(k)
			b.Set(k, v)
		}
	}
	return nil
}

// scalar converts a resolved scalar node according to its YAML tag.
func scalar(n *yaml.Node) domain.Value {
	switch n.ShortTag() {
	case "!!null":
		return domain.Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return domain.Bool(b)
		}
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return domain.Number(n.Value, f)
		}
	}
	return domain.String(n.Value)
}
