package rdfopts

import (
	"errors"
	"testing"
)

func TestResolveScanForRDF(t *testing.T) {
	world := NewWorld()
	info, ok, err := world.EnumerateParserOptions(OptionScanning, FieldAll)
	if err != nil || !ok {
		t.Fatalf("expected success, got ok=%v err=%v", ok, err)
	}
	if info.Name != "scanForRDF" {
		t.Fatalf("unexpected name %q", info.Name)
	}
	if info.URI == nil || info.URI.String() != "http://feature.librdf.org/raptor-scanForRDF" {
		t.Fatalf("unexpected uri %v", info.URI)
	}
	if info.Label != "RDF/XML parser scans for rdf:RDF in XML content" {
		t.Fatalf("unexpected label %q", info.Label)
	}
	if ResultCode(ok, err) != 0 {
		t.Fatalf("success must map to 0")
	}
}

func TestResolveFieldSelection(t *testing.T) {
	info, ok, err := NewWorld().Resolve(OptionNoNet, AreaXMLReader, FieldName)
	if err != nil || !ok {
		t.Fatalf("expected success, got ok=%v err=%v", ok, err)
	}
	if info.ID != OptionNoNet || info.Name != "noNet" {
		t.Fatalf("unexpected info %+v", info)
	}
	if info.URI != nil || info.Label != "" {
		t.Fatalf("unrequested fields must stay empty: %+v", info)
	}
}

func TestResolveNotApplicable(t *testing.T) {
	world := NewWorld()
	if _, ok, err := world.EnumerateXMLWriterOptions(OptionRelativeURIs, FieldAll); ok || err != nil {
		t.Fatalf("relativeURIs is not an xml writer option: ok=%v err=%v", ok, err)
	}
	info, ok, err := world.EnumerateSerializerOptions(OptionRelativeURIs, FieldAll)
	if !ok || err != nil || info.Name != "relativeURIs" {
		t.Fatalf("relativeURIs is a serializer option: %+v ok=%v err=%v", info, ok, err)
	}

	for _, id := range []ID{InvalidID, ID(Count())} {
		_, ok, err := world.EnumerateParserOptions(id, FieldAll)
		if ok || err != nil {
			t.Fatalf("unknown id %d must be not-applicable, got ok=%v err=%v", id, ok, err)
		}
		if ResultCode(ok, err) <= 0 {
			t.Fatalf("not-applicable must map to a positive code")
		}
	}
}

func TestResolveFailureIsDistinct(t *testing.T) {
	boom := errors.New("allocation failed")
	world := NewWorld(WithURIFactory(failingFactory{err: boom}))

	_, ok, err := world.EnumerateParserOptions(OptionScanning, FieldName|FieldURI)
	if ok || !errors.Is(err, ErrURIConstruction) {
		t.Fatalf("expected construction failure, got ok=%v err=%v", ok, err)
	}
	if ResultCode(ok, err) >= 0 {
		t.Fatalf("failure must map to a negative code")
	}

	// Without the URI field the factory is never consulted.
	if _, ok, err := world.EnumerateParserOptions(OptionScanning, FieldName); !ok || err != nil {
		t.Fatalf("expected success without uri, got ok=%v err=%v", ok, err)
	}
	// Not-applicable wins over a failing factory.
	if _, ok, err := world.EnumerateTurtleWriterOptions(OptionScanning, FieldAll); ok || err != nil {
		t.Fatalf("expected not-applicable, got ok=%v err=%v", ok, err)
	}
}

func TestEnumerateArea(t *testing.T) {
	infos, err := NewWorld().Enumerate(AreaTurtleWriter, FieldName)
	if err != nil {
		t.Fatalf("enumerate: %v", err)
	}
	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
	}
	want := []string{"autoIndent", "autoEmpty", "indentWidth"}
	if len(names) != len(want) {
		t.Fatalf("unexpected turtle writer options %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected turtle writer options %v", names)
		}
	}

	world := NewWorld(WithURIFactory(failingFactory{err: errors.New("boom")}))
	if _, err := world.Enumerate(AreaParser, FieldAll); !errors.Is(err, ErrURIConstruction) {
		t.Fatalf("expected enumerate to stop at the first failure, got %v", err)
	}
}
