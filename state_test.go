package rdfopts

import (
	"net/url"
	"testing"
)

func TestStateInitResetsValues(t *testing.T) {
	s := NewState(AreaParser)
	if s.Area() != AreaParser {
		t.Fatalf("unexpected area %s", s.Area())
	}
	if !s.SetValue(OptionWWWTimeout, Value{Integer: 30}) {
		t.Fatalf("set failed")
	}
	s.Init(AreaSerializer)
	if s.Area() != AreaSerializer {
		t.Fatalf("Init must retag the area")
	}
	for id := ID(0); id <= OptionLast; id++ {
		v, ok := s.Value(id)
		if !ok || !v.IsZero() {
			t.Fatalf("value %s not reset: %+v", id, v)
		}
	}
}

func TestStateRejectsUnknownIdentities(t *testing.T) {
	s := NewState(AreaParser)
	if s.SetValue(ID(Count()), Value{Integer: 1}) {
		t.Fatalf("out of range set must fail")
	}
	if _, ok := s.Value(InvalidID); ok {
		t.Fatalf("out of range get must fail")
	}
}

func TestCopyStateKeepsDestinationArea(t *testing.T) {
	from := NewState(AreaParser)
	base, _ := url.Parse("http://example.org/feed")
	from.SetValue(OptionWWWTimeout, Value{Integer: 12})
	from.SetValue(OptionWWWHTTPUserAgent, Value{String: "crawler"})
	from.SetValue(OptionAtomEntryURI, Value{URI: base})

	to := NewState(AreaSerializer)
	to.SetValue(OptionRelativeURIs, Value{Integer: 1})
	CopyState(to, from)

	if to.Area() != AreaSerializer {
		t.Fatalf("destination area changed to %s", to.Area())
	}
	if v, _ := to.Value(OptionWWWTimeout); v.Integer != 12 {
		t.Fatalf("integer not copied: %+v", v)
	}
	if v, _ := to.Value(OptionWWWHTTPUserAgent); v.String != "crawler" {
		t.Fatalf("string not copied: %+v", v)
	}
	if v, _ := to.Value(OptionAtomEntryURI); v.URI == nil || v.URI.String() != base.String() {
		t.Fatalf("uri not copied: %+v", v)
	}
	if v, _ := to.Value(OptionRelativeURIs); !v.IsZero() {
		t.Fatalf("destination values must be replaced wholesale: %+v", v)
	}

	from.SetValue(OptionWWWTimeout, Value{Integer: 99})
	if v, _ := to.Value(OptionWWWTimeout); v.Integer != 12 {
		t.Fatalf("copies must not alias the source")
	}

	CopyState(nil, from)
	CopyState(to, nil)
}
