package svg

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
)

// Namespace is the SVG XML namespace URI.
const Namespace = "http://www.w3.org/2000/svg"

// Document holds a parsed SVG file and its source.
type Document struct {
	Path   string
	Source []byte
	Tree   *etree.Document
}

// ParseError indicates that a source could not be parsed as XML.
// Callers treat an unparsable source as skipped, never as a lint finding.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Parse parses source as XML and returns a Document. The path is used
// only for diagnostics and may be empty for in-memory sources.
func Parse(path string, source []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(source); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if tree.Root() == nil {
		return nil, &ParseError{Path: path, Err: errors.New("document has no root element")}
	}
	return &Document{
		Path:   path,
		Source: source,
		Tree:   tree,
	}, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*Document, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return Parse(path, source)
}

// Root returns the document's root element.
func (d *Document) Root() *etree.Element {
	return d.Tree.Root()
}

// Find returns all elements matching the given etree path expression,
// evaluated from the document root.
func (d *Document) Find(path string) []*etree.Element {
	return d.Tree.FindElements(path)
}
