package rdfopts

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// URIPrefix is the namespace every canonical option URI starts with. The
// option's short name is appended without a separator.
const URIPrefix = "http://feature.librdf.org/raptor-"

var (
	// ErrURIConstruction wraps failures reported by a URIFactory.
	ErrURIConstruction = errors.New("rdfopts: uri construction failed")
	// ErrInvalidOption indicates an identity outside the catalog.
	ErrInvalidOption = errors.New("rdfopts: invalid option")
)

// URI is the subset of a URI value the registry relies on.
type URI interface {
	String() string
}

// URIFactory builds URI values. Implementations must be safe for concurrent
// use.
type URIFactory interface {
	NewURI(uri string) (URI, error)
	NewURIFromLocalName(base URI, localName string) (URI, error)
}

// NewURLFactory returns a URIFactory backed by net/url.
func NewURLFactory() URIFactory {
	return urlFactory{}
}

type urlFactory struct{}

func (urlFactory) NewURI(uri string) (URI, error) {
	if uri == "" {
		return nil, fmt.Errorf("uri must not be empty")
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func (f urlFactory) NewURIFromLocalName(base URI, localName string) (URI, error) {
	if base == nil {
		return nil, fmt.Errorf("base uri is nil")
	}
	return f.NewURI(base.String() + localName)
}

// CanonicalURI returns the canonical URI string of id without going through
// a URIFactory.
func CanonicalURI(id ID) (string, bool) {
	d, ok := Lookup(id)
	if !ok {
		return "", false
	}
	return d.URI(), true
}

// OptionFromURIString maps a canonical option URI back to its identity. Any
// string that does not begin with URIPrefix, or whose remainder is not an
// exact option name, yields InvalidID.
func OptionFromURIString(uri string) ID {
	name, ok := strings.CutPrefix(uri, URIPrefix)
	if !ok {
		return InvalidID
	}
	return LookupName(name)
}

// OptionURI builds the canonical URI of id using the world's URIFactory.
func (w *World) OptionURI(id ID) (URI, error) {
	d, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOption, id)
	}
	return w.buildURI(d)
}

// OptionFromURI maps uri back to an option identity, or InvalidID.
func (w *World) OptionFromURI(uri URI) ID {
	if uri == nil {
		return InvalidID
	}
	return OptionFromURIString(uri.String())
}

func (w *World) buildURI(d Descriptor) (URI, error) {
	factory := w.uriFactory()
	base, err := factory.NewURI(URIPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: base %q: %w", ErrURIConstruction, URIPrefix, err)
	}
	uri, err := factory.NewURIFromLocalName(base, d.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrURIConstruction, d.Name, err)
	}
	return uri, nil
}
