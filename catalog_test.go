package rdfopts

import (
	"strings"
	"testing"
)

func TestCatalogIdentitiesAreDense(t *testing.T) {
	if Count() != 34 {
		t.Fatalf("expected 34 options, got %d", Count())
	}
	for id := ID(0); int(id) < Count(); id++ {
		d, ok := Lookup(id)
		if !ok {
			t.Fatalf("lookup %d failed", id)
		}
		if d.ID != id {
			t.Fatalf("descriptor at %d reports id %d", id, d.ID)
		}
		if d.Area == AreaNone {
			t.Fatalf("%s has no area", d.Name)
		}
		if d.Label == "" {
			t.Fatalf("%s has no label", d.Name)
		}
		if LookupName(d.Name) != id {
			t.Fatalf("name %q does not map back to %d", d.Name, id)
		}
	}
	if OptionLast != ID(Count()-1) {
		t.Fatalf("OptionLast = %d, want %d", OptionLast, Count()-1)
	}
}

func TestCatalogLookupBounds(t *testing.T) {
	for _, id := range []ID{InvalidID, -7, ID(Count()), ID(Count() + 10)} {
		if _, ok := Lookup(id); ok {
			t.Fatalf("lookup %d should fail", id)
		}
		if ValueTypeOf(id) != ValueTypeInvalid {
			t.Fatalf("ValueTypeOf(%d) should be invalid", id)
		}
		if AreaOf(id) != AreaNone {
			t.Fatalf("AreaOf(%d) should be none", id)
		}
		if IsNumeric(id) {
			t.Fatalf("IsNumeric(%d) should be false", id)
		}
		if IsValidForArea(id, areaAll) {
			t.Fatalf("IsValidForArea(%d) should be false", id)
		}
		if !strings.HasPrefix(id.String(), "option(") {
			t.Fatalf("unexpected string for invalid id: %q", id.String())
		}
	}
}

func TestCatalogValueTypes(t *testing.T) {
	cases := map[ID]ValueType{
		OptionScanning:          ValueTypeBool,
		OptionWriterIndentWidth: ValueTypeInt,
		OptionWWWTimeout:        ValueTypeInt,
		OptionResourceBorder:    ValueTypeString,
		OptionAtomEntryURI:      ValueTypeURI,
	}
	for id, want := range cases {
		if got := ValueTypeOf(id); got != want {
			t.Fatalf("ValueTypeOf(%s) = %s, want %s", id, got, want)
		}
	}
	if !IsNumeric(OptionNoNet) || !IsNumeric(OptionWWWTimeout) {
		t.Fatalf("bool and int options must be numeric")
	}
	if IsNumeric(OptionJSONCallback) || IsNumeric(OptionAtomEntryURI) {
		t.Fatalf("string and uri options must not be numeric")
	}
}

func TestCatalogAreas(t *testing.T) {
	if !IsValidForArea(OptionRelativeURIs, AreaSerializer) {
		t.Fatalf("relativeURIs applies to serializers")
	}
	if IsValidForArea(OptionRelativeURIs, AreaXMLWriter) {
		t.Fatalf("relativeURIs does not apply to the XML writer")
	}
	if !IsValidForArea(OptionNoNet, AreaXMLReader) || !IsValidForArea(OptionNoNet, AreaParser) {
		t.Fatalf("noNet applies to parsers and the XML reader")
	}
	if !IsValidForArea(OptionWriterXMLVersion, AreaSerializer|AreaTurtleWriter) {
		t.Fatalf("a multi-bit query area matches any shared bit")
	}
}

func TestDescriptorsReturnsCopy(t *testing.T) {
	all := Descriptors()
	all[0].Name = "mutated"
	if d, _ := Lookup(0); d.Name != "scanForRDF" {
		t.Fatalf("catalog mutated through Descriptors(): %q", d.Name)
	}
}

func TestCheckCatalogRejectsBrokenTables(t *testing.T) {
	good := Descriptors()

	dup := append([]Descriptor(nil), good...)
	dup[1].Name = dup[0].Name
	if err := checkCatalog(dup); err == nil {
		t.Fatalf("expected duplicate name error")
	}

	gap := append([]Descriptor(nil), good...)
	gap[3].ID = 7
	if err := checkCatalog(gap); err == nil {
		t.Fatalf("expected identity/index mismatch error")
	}

	noArea := append([]Descriptor(nil), good...)
	noArea[2].Area = AreaNone
	if err := checkCatalog(noArea); err == nil {
		t.Fatalf("expected empty area error")
	}

	badType := append([]Descriptor(nil), good...)
	badType[4].ValueType = ValueTypeInvalid
	if err := checkCatalog(badType); err == nil {
		t.Fatalf("expected invalid value type error")
	}
}

func TestValueTypeLabels(t *testing.T) {
	want := []string{"boolean", "integer", "string", "uri"}
	for i, label := range want {
		got, ok := ValueTypeLabel(ValueType(i))
		if !ok || got != label {
			t.Fatalf("ValueTypeLabel(%d) = %q %v, want %q", i, got, ok, label)
		}
	}
	if _, ok := ValueTypeLabel(ValueTypeLast + 1); ok {
		t.Fatalf("label past the last type must fail")
	}
	if _, ok := ValueTypeLabel(ValueTypeInvalid); ok {
		t.Fatalf("label for the invalid type must fail")
	}
	if ValueTypeOf(ID(Count())) != ValueTypeInvalid {
		t.Fatalf("ValueTypeOf(Count()) must be invalid")
	}
}
