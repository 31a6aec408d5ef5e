package rdfopts

import (
	"errors"
	"testing"
)

type failingFactory struct{ err error }

func (f failingFactory) NewURI(string) (URI, error) { return nil, f.err }

func (f failingFactory) NewURIFromLocalName(URI, string) (URI, error) { return nil, f.err }

func TestOptionURIRoundTrip(t *testing.T) {
	world := NewWorld()
	for id := ID(0); id <= OptionLast; id++ {
		uri, err := world.OptionURI(id)
		if err != nil {
			t.Fatalf("OptionURI(%s): %v", id, err)
		}
		d, _ := Lookup(id)
		if uri.String() != URIPrefix+d.Name {
			t.Fatalf("unexpected uri %q for %s", uri.String(), d.Name)
		}
		if got := world.OptionFromURI(uri); got != id {
			t.Fatalf("OptionFromURI(%q) = %d, want %d", uri, got, id)
		}
	}
}

func TestOptionFromURIStringRejectsNearMisses(t *testing.T) {
	cases := []string{
		"",
		URIPrefix,
		URIPrefix + "scan",
		URIPrefix + "scanForRDFx",
		URIPrefix + "ScanForRDF",
		"http://feature.librdf.org/raptor_scanForRDF",
		"https://feature.librdf.org/raptor-scanForRDF",
		"scanForRDF",
		"http://feature.librdf.org/raptor-",
	}
	for _, uri := range cases {
		if got := OptionFromURIString(uri); got != InvalidID {
			t.Fatalf("OptionFromURIString(%q) = %d, want InvalidID", uri, got)
		}
	}
	for i := 0; i < len(URIPrefix); i++ {
		truncated := URIPrefix[:i]
		for _, uri := range []string{truncated, truncated + "scanForRDF"} {
			if got := OptionFromURIString(uri); got != InvalidID {
				t.Fatalf("OptionFromURIString(%q) = %d, want InvalidID", uri, got)
			}
		}
	}
	if got := NewWorld().OptionFromURI(nil); got != InvalidID {
		t.Fatalf("nil uri should decode to InvalidID, got %d", got)
	}
}

func TestCanonicalURI(t *testing.T) {
	uri, ok := CanonicalURI(OptionScanning)
	if !ok || uri != "http://feature.librdf.org/raptor-scanForRDF" {
		t.Fatalf("unexpected canonical uri %q %v", uri, ok)
	}
	if _, ok := CanonicalURI(ID(Count())); ok {
		t.Fatalf("out of range identity has no uri")
	}
}

func TestOptionURIErrors(t *testing.T) {
	if _, err := NewWorld().OptionURI(InvalidID); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}

	boom := errors.New("out of memory")
	world := NewWorld(WithURIFactory(failingFactory{err: boom}))
	_, err := world.OptionURI(OptionNoNet)
	if !errors.Is(err, ErrURIConstruction) || !errors.Is(err, boom) {
		t.Fatalf("expected construction error wrapping the factory error, got %v", err)
	}
}
