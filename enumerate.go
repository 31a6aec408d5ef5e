package rdfopts

// Field selects which parts of an option Resolve fills in.
type Field uint8

const (
	FieldName Field = 1 << iota
	FieldURI
	FieldLabel

	FieldAll = FieldName | FieldURI | FieldLabel
)

// Info is the resolved view of an option. Only the fields requested from
// Resolve are populated; ID is always set on success.
type Info struct {
	ID    ID
	Name  string
	URI   URI
	Label string
}

// Resolve looks up id and reports it only when its area mask intersects area.
//
// The result is three-way:
//   - (info, true, nil): the option applies to area.
//   - (Info{}, false, nil): the identity is unknown or does not apply to area.
//   - (Info{}, false, err): the URI could not be constructed.
func (w *World) Resolve(id ID, area Area, fields Field) (Info, bool, error) {
	d, ok := Lookup(id)
	if !ok || !d.Area.Intersects(area) {
		return Info{}, false, nil
	}
	info := Info{ID: d.ID}
	if fields&FieldName != 0 {
		info.Name = d.Name
	}
	if fields&FieldURI != 0 {
		uri, err := w.buildURI(d)
		if err != nil {
			return Info{}, false, err
		}
		info.URI = uri
	}
	if fields&FieldLabel != 0 {
		info.Label = d.Label
	}
	return info, true, nil
}

// EnumerateParserOptions resolves id for the generic parser area.
func (w *World) EnumerateParserOptions(id ID, fields Field) (Info, bool, error) {
	return w.Resolve(id, AreaParser, fields)
}

// EnumerateSerializerOptions resolves id for the serializer area.
func (w *World) EnumerateSerializerOptions(id ID, fields Field) (Info, bool, error) {
	return w.Resolve(id, AreaSerializer, fields)
}

// EnumerateXMLReaderOptions resolves id for the XML event reader area.
func (w *World) EnumerateXMLReaderOptions(id ID, fields Field) (Info, bool, error) {
	return w.Resolve(id, AreaXMLReader, fields)
}

// EnumerateTurtleWriterOptions resolves id for the Turtle writer area.
func (w *World) EnumerateTurtleWriterOptions(id ID, fields Field) (Info, bool, error) {
	return w.Resolve(id, AreaTurtleWriter, fields)
}

// EnumerateXMLWriterOptions resolves id for the XML writer area.
func (w *World) EnumerateXMLWriterOptions(id ID, fields Field) (Info, bool, error) {
	return w.Resolve(id, AreaXMLWriter, fields)
}

// Enumerate resolves every option applicable to area, in identity order. It
// stops at the first hard failure.
func (w *World) Enumerate(area Area, fields Field) ([]Info, error) {
	var out []Info
	for id := ID(0); id <= OptionLast; id++ {
		info, ok, err := w.Resolve(id, area, fields)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, info)
		}
	}
	return out, nil
}

// ResultCode maps a Resolve outcome onto the integer convention used by
// external protocols: 0 on success, negative on failure, positive when the
// option is unknown or not applicable.
func ResultCode(ok bool, err error) int {
	switch {
	case err != nil:
		return -1
	case ok:
		return 0
	default:
		return 1
	}
}
