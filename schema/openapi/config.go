package openapi

import "strings"

type generatorConfig struct {
	openAPIVersion string
	info           openapiInfo
	pathPrefix     string
	method         string
	contentType    string
	responses      map[string]responseConfig
}

type openapiInfo struct {
	Title       string
	Version     string
	Description string
}

type responseConfig struct {
	Description string
}

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		openAPIVersion: "3.0.3",
		info: openapiInfo{
			Title:   "RDF Options",
			Version: "1.0.0",
		},
		pathPrefix:  "/settings",
		method:      "put",
		contentType: "application/json",
		responses: map[string]responseConfig{
			"204": {Description: "Applied"},
			"422": {Description: "Invalid option value"},
		},
	}
}

// GeneratorOption configures the OpenAPI generator behaviour.
type GeneratorOption func(*generatorConfig)

// WithOpenAPIVersion overrides the OpenAPI version string (default: 3.0.3).
func WithOpenAPIVersion(version string) GeneratorOption {
	return func(cfg *generatorConfig) {
		if version == "" {
			return
		}
		cfg.openAPIVersion = version
	}
}

// InfoOption configures optional fields on the OpenAPI info section.
type InfoOption func(*openapiInfo)

// WithInfoDescription sets the optional description field for the info section.
func WithInfoDescription(description string) InfoOption {
	return func(info *openapiInfo) {
		info.Description = description
	}
}

// WithInfo configures the OpenAPI info block. Empty strings retain the
// existing values.
func WithInfo(title, version string, opts ...InfoOption) GeneratorOption {
	return func(cfg *generatorConfig) {
		if title != "" {
			cfg.info.Title = title
		}
		if version != "" {
			cfg.info.Version = version
		}
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.info)
			}
		}
	}
}

// WithSettingsPath sets the path prefix and method of the per-area settings
// operations, e.g. "PUT /settings/parser".
func WithSettingsPath(prefix, method string) GeneratorOption {
	return func(cfg *generatorConfig) {
		if prefix = strings.TrimRight(strings.TrimSpace(prefix), "/"); prefix != "" {
			cfg.pathPrefix = prefix
		}
		if method = strings.ToLower(strings.TrimSpace(method)); method != "" {
			cfg.method = method
		}
	}
}

// WithContentType sets the request body content type.
func WithContentType(contentType string) GeneratorOption {
	return func(cfg *generatorConfig) {
		if contentType == "" {
			return
		}
		cfg.contentType = contentType
	}
}

// WithResponse registers or overrides the response for a status code.
func WithResponse(status, description string) GeneratorOption {
	return func(cfg *generatorConfig) {
		if status == "" {
			return
		}
		if cfg.responses == nil {
			cfg.responses = map[string]responseConfig{}
		}
		resp := cfg.responses[status]
		if description != "" {
			resp.Description = description
		}
		cfg.responses[status] = resp
	}
}
