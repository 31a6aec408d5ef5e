package rdfopts

import "fmt"

// Descriptor is the immutable metadata for one option.
type Descriptor struct {
	ID        ID
	Area      Area
	ValueType ValueType
	Name      string
	Label     string
}

// URI returns the canonical URI string for the descriptor.
func (d Descriptor) URI() string {
	return URIPrefix + d.Name
}

var descriptors = [optionCount]Descriptor{
	{OptionScanning, AreaParser, ValueTypeBool,
		"scanForRDF", "RDF/XML parser scans for rdf:RDF in XML content"},
	{OptionAllowNonNSAttributes, AreaParser, ValueTypeBool,
		"allowNonNsAttributes", "RDF/XML parser allows bare 'name' rather than namespaced 'rdf:name'"},
	{OptionAllowOtherParseTypes, AreaParser, ValueTypeBool,
		"allowOtherParsetypes", "RDF/XML parser allows user-defined rdf:parseType values"},
	{OptionAllowBagID, AreaParser, ValueTypeBool,
		"allowBagID", "RDF/XML parser allows rdf:bagID"},
	{OptionAllowRDFTypeRDFList, AreaParser, ValueTypeBool,
		"allowRDFtypeRDFlist", "RDF/XML parser generates the collection rdf:type rdf:List triple"},
	{OptionNormalizeLanguage, AreaParser | AreaXMLReader, ValueTypeBool,
		"normalizeLanguage", "RDF/XML parser normalizes xml:lang values to lowercase"},
	{OptionNonNFCFatal, AreaParser, ValueTypeBool,
		"nonNFCfatal", "RDF/XML parser makes non-NFC literals a fatal error"},
	{OptionWarnOtherParseTypes, AreaParser, ValueTypeBool,
		"warnOtherParseTypes", "RDF/XML parser warns about unknown rdf:parseType values"},
	{OptionCheckRDFID, AreaParser, ValueTypeBool,
		"checkRdfID", "RDF/XML parser checks rdf:ID values for duplicates"},
	{OptionRelativeURIs, AreaSerializer, ValueTypeBool,
		"relativeURIs", "Serializers write relative URIs wherever possible."},
	{OptionWriterAutoIndent, AreaXMLWriter | AreaTurtleWriter, ValueTypeBool,
		"autoIndent", "Turtle and XML Writer automatically indent elements."},
	{OptionWriterAutoEmpty, AreaXMLWriter | AreaTurtleWriter, ValueTypeBool,
		"autoEmpty", "Turtle and XML Writer automatically detect and abbreviate empty elements."},
	{OptionWriterIndentWidth, AreaXMLWriter | AreaTurtleWriter, ValueTypeInt,
		"indentWidth", "Turtle and XML Writer use as number of spaces to indent."},
	{OptionWriterXMLVersion, AreaSerializer | AreaXMLWriter, ValueTypeInt,
		"xmlVersion", "Serializers and XML Writer use as XML version to write."},
	{OptionWriterXMLDeclaration, AreaSerializer | AreaXMLWriter, ValueTypeBool,
		"xmlDeclaration", "Serializers and XML Writer write XML declaration."},
	{OptionNoNet, AreaParser | AreaXMLReader, ValueTypeBool,
		"noNet", "Parsers and SAX2 XML Parser deny network requests."},
	{OptionResourceBorder, AreaSerializer, ValueTypeString,
		"resourceBorder", "DOT serializer resource border color"},
	{OptionLiteralBorder, AreaSerializer, ValueTypeString,
		"literalBorder", "DOT serializer literal border color"},
	{OptionBNodeBorder, AreaSerializer, ValueTypeString,
		"bnodeBorder", "DOT serializer blank node border color"},
	{OptionResourceFill, AreaSerializer, ValueTypeString,
		"resourceFill", "DOT serializer resource fill color"},
	{OptionLiteralFill, AreaSerializer, ValueTypeString,
		"literalFill", "DOT serializer literal fill color"},
	{OptionBNodeFill, AreaSerializer, ValueTypeString,
		"bnodeFill", "DOT serializer blank node fill color"},
	{OptionHTMLTagSoup, AreaParser, ValueTypeBool,
		"htmlTagSoup", "GRDDL parser uses a lax HTML parser"},
	{OptionMicroformats, AreaParser, ValueTypeBool,
		"microformats", "GRDDL parser looks for microformats"},
	{OptionHTMLLink, AreaParser, ValueTypeBool,
		"htmlLink", `GRDDL parser looks for <link type="application/rdf+xml">`},
	{OptionWWWTimeout, AreaParser, ValueTypeInt,
		"wwwTimeout", "Parser WWW request retrieval timeout"},
	{OptionWriteBaseURI, AreaSerializer, ValueTypeBool,
		"writeBaseURI", "Serializers write a base URI directive @base / xml:base"},
	{OptionWWWHTTPCacheControl, AreaParser, ValueTypeString,
		"wwwHttpCacheControl", "Parser WWW request HTTP Cache-Control: header value"},
	{OptionWWWHTTPUserAgent, AreaParser, ValueTypeString,
		"wwwHttpUserAgent", "Parser WWW request HTTP User-Agent: header value"},
	{OptionJSONCallback, AreaSerializer, ValueTypeString,
		"jsonCallback", "JSON serializer callback function name"},
	{OptionJSONExtraData, AreaSerializer, ValueTypeString,
		"jsonExtraData", "JSON serializer callback data parameter"},
	{OptionRSSTriples, AreaSerializer, ValueTypeString,
		"rssTriples", "Atom and RSS serializers write extra RDF triples"},
	{OptionAtomEntryURI, AreaSerializer, ValueTypeURI,
		"atomEntryUri", "Atom serializer writes an atom:entry with this URI (otherwise atom:feed)"},
	{OptionPrefixElements, AreaSerializer, ValueTypeBool,
		"prefixElements", "Atom and RSS serializers write namespace-prefixed elements"},
}

func init() {
	if err := checkCatalog(descriptors[:]); err != nil {
		panic(err)
	}
}

// checkCatalog verifies the table invariants: identities equal their index,
// area masks are non-zero, value types are defined, names are non-empty and
// unique.
func checkCatalog(table []Descriptor) error {
	seen := make(map[string]ID, len(table))
	for i, d := range table {
		if int(d.ID) != i {
			return fmt.Errorf("rdfopts: descriptor %q has id %d at index %d", d.Name, d.ID, i)
		}
		if d.Area == AreaNone {
			return fmt.Errorf("rdfopts: descriptor %q has an empty area mask", d.Name)
		}
		if _, ok := ValueTypeLabel(d.ValueType); !ok {
			return fmt.Errorf("rdfopts: descriptor %q has invalid value type %d", d.Name, d.ValueType)
		}
		if d.Name == "" {
			return fmt.Errorf("rdfopts: descriptor %d has an empty name", i)
		}
		if prev, ok := seen[d.Name]; ok {
			return fmt.Errorf("rdfopts: descriptor name %q used by %d and %d", d.Name, prev, i)
		}
		seen[d.Name] = d.ID
	}
	return nil
}

// Lookup returns the descriptor for id.
func Lookup(id ID) (Descriptor, bool) {
	if !id.Valid() {
		return Descriptor{}, false
	}
	return descriptors[id], true
}

// Descriptors returns a copy of the catalog in identity order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, optionCount)
	copy(out, descriptors[:])
	return out
}

// LookupName returns the identity of the option with the exact short name,
// or InvalidID.
func LookupName(name string) ID {
	if name == "" {
		return InvalidID
	}
	for i := range descriptors {
		if descriptors[i].Name == name {
			return descriptors[i].ID
		}
	}
	return InvalidID
}

// ValueTypeOf returns the declared value type of id, or ValueTypeInvalid.
//
// OptionWriterIndentWidth reports ValueTypeInt. Older raptor tables declared
// it boolean even though it holds a number of spaces.
func ValueTypeOf(id ID) ValueType {
	if !id.Valid() {
		return ValueTypeInvalid
	}
	return descriptors[id].ValueType
}

// IsNumeric reports whether id holds a boolean or integer value. Callers use
// it to pick between the integer and the string accessors.
func IsNumeric(id ID) bool {
	return ValueTypeOf(id).Numeric()
}

// AreaOf returns the area mask of id, or AreaNone.
func AreaOf(id ID) Area {
	if !id.Valid() {
		return AreaNone
	}
	return descriptors[id].Area
}

// IsValidForArea reports whether id is defined and applies to area.
func IsValidForArea(id ID, area Area) bool {
	return AreaOf(id).Intersects(area)
}
