package rdfopts

import "fmt"

// FieldDescriptor is one entry of the built-in descriptor schema.
type FieldDescriptor struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	URI   string   `json:"uri"`
	Type  string   `json:"type"`
	Label string   `json:"label"`
	Areas []string `json:"areas"`
}

// DefaultSchemaGenerator returns the built-in descriptor-based schema generator.
func DefaultSchemaGenerator() SchemaGenerator {
	return descriptorGenerator{}
}

type descriptorGenerator struct{}

func (descriptorGenerator) Generate(area Area, descriptors []Descriptor) (SchemaDocument, error) {
	fields := make([]FieldDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		fields = append(fields, FieldDescriptor{
			ID:    int(d.ID),
			Name:  d.Name,
			URI:   d.URI(),
			Type:  d.ValueType.String(),
			Label: d.Label,
			Areas: d.Area.Names(),
		})
	}
	return SchemaDocument{
		Format:   SchemaFormatDescriptors,
		Area:     area,
		Document: fields,
	}, nil
}

// Schema describes the options applicable to area using the configured
// generator. AreaNone describes the whole catalog.
func (w *World) Schema(area Area) (SchemaDocument, error) {
	var selected []Descriptor
	for _, d := range Descriptors() {
		if area == AreaNone || d.Area.Intersects(area) {
			selected = append(selected, d)
		}
	}
	doc, err := w.schemaGenerator().Generate(area, selected)
	if err != nil {
		return SchemaDocument{}, fmt.Errorf("rdfopts: schema for %s: %w", area, err)
	}
	return doc, nil
}
