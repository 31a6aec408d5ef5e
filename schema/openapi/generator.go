// Package openapi renders option descriptors as an OpenAPI 3 document with
// one component schema per area.
package openapi

import (
	"fmt"
	"sort"

	rdfopts "github.com/goliatone/go-rdf-options"
)

type generator struct {
	config generatorConfig
}

// NewGenerator constructs an OpenAPI-compatible schema generator.
func NewGenerator(opts ...GeneratorOption) rdfopts.SchemaGenerator {
	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return generator{config: cfg}
}

// Option returns an rdfopts.Option that installs the OpenAPI generator on a
// World.
func Option(opts ...GeneratorOption) rdfopts.Option {
	return rdfopts.WithSchemaGenerator(NewGenerator(opts...))
}

var componentNames = map[rdfopts.Area]string{
	rdfopts.AreaParser:       "ParserOptions",
	rdfopts.AreaSerializer:   "SerializerOptions",
	rdfopts.AreaTurtleWriter: "TurtleWriterOptions",
	rdfopts.AreaXMLWriter:    "XMLWriterOptions",
	rdfopts.AreaXMLReader:    "XMLReaderOptions",
}

// ComponentName returns the component schema name used for a single area.
func ComponentName(area rdfopts.Area) (string, bool) {
	name, ok := componentNames[area]
	return name, ok
}

func (g generator) Generate(area rdfopts.Area, descriptors []rdfopts.Descriptor) (rdfopts.SchemaDocument, error) {
	flags := area.Flags()
	if area == rdfopts.AreaNone {
		for _, d := range descriptors {
			flags = mergeFlags(flags, d.Area.Flags())
		}
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })

	schemas := map[string]any{}
	paths := map[string]any{}
	for _, flag := range flags {
		name, ok := componentNames[flag]
		if !ok {
			return rdfopts.SchemaDocument{}, fmt.Errorf("openapi: no component for area %s", flag)
		}
		properties := map[string]any{}
		for _, d := range descriptors {
			if !d.Area.Intersects(flag) {
				continue
			}
			property, err := propertySchema(d)
			if err != nil {
				return rdfopts.SchemaDocument{}, err
			}
			properties[d.Name] = property
		}
		schemas[name] = map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           properties,
		}
		paths[g.config.pathPrefix+"/"+flag.String()] = map[string]any{
			g.config.method: g.operation(flag, name),
		}
	}

	document := map[string]any{
		"openapi": g.config.openAPIVersion,
		"info":    g.info(),
		"paths":   paths,
		"components": map[string]any{
			"schemas": schemas,
		},
	}
	return rdfopts.SchemaDocument{
		Format:   rdfopts.SchemaFormatOpenAPI,
		Area:     area,
		Document: document,
	}, nil
}

func propertySchema(d rdfopts.Descriptor) (map[string]any, error) {
	property := map[string]any{
		"description":  d.Label,
		"x-option-uri": d.URI(),
		"x-option-id":  int(d.ID),
	}
	switch d.ValueType {
	case rdfopts.ValueTypeBool:
		property["type"] = "boolean"
	case rdfopts.ValueTypeInt:
		property["type"] = "integer"
	case rdfopts.ValueTypeString:
		property["type"] = "string"
	case rdfopts.ValueTypeURI:
		property["type"] = "string"
		property["format"] = "uri"
	default:
		return nil, fmt.Errorf("openapi: option %s has invalid value type", d.Name)
	}
	return property, nil
}

func (g generator) info() map[string]any {
	info := map[string]any{
		"title":   g.config.info.Title,
		"version": g.config.info.Version,
	}
	if g.config.info.Description != "" {
		info["description"] = g.config.info.Description
	}
	return info
}

func (g generator) operation(flag rdfopts.Area, component string) map[string]any {
	statuses := make([]string, 0, len(g.config.responses))
	for status := range g.config.responses {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	responses := make(map[string]any, len(statuses))
	for _, status := range statuses {
		responses[status] = map[string]any{
			"description": g.config.responses[status].Description,
		}
	}
	return map[string]any{
		"operationId": fmt.Sprintf("%s:%s/%s", g.config.method, g.config.pathPrefix, flag),
		"requestBody": map[string]any{
			"required": true,
			"content": map[string]any{
				g.config.contentType: map[string]any{
					"schema": map[string]any{
						"$ref": "#/components/schemas/" + component,
					},
				},
			},
		},
		"responses": responses,
	}
}

func mergeFlags(into, flags []rdfopts.Area) []rdfopts.Area {
	for _, flag := range flags {
		seen := false
		for _, existing := range into {
			if existing == flag {
				seen = true
				break
			}
		}
		if !seen {
			into = append(into, flag)
		}
	}
	return into
}
