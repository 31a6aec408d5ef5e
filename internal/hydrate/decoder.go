// Package hydrate decodes settings documents (JSON or YAML) into flat
// key/value payloads ready to be applied to an option state.
package hydrate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names the encoding of a settings document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat guesses the format from a file name. Anything that is not
// .json is treated as YAML, which is a superset of JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Context carries identifiers tied to the document being decoded.
type Context struct {
	Source string
	Area   string
}

// PreHook lets callers rewrite the decoded payload before post-hooks run.
type PreHook func(Context, map[string]any) (map[string]any, error)

// PostHook validates the final payload.
type PostHook func(Context, map[string]any) error

// DecoderOption configures a Decoder instance.
type DecoderOption func(*Decoder)

// Decoder turns settings documents into payload maps.
type Decoder struct {
	preHooks  []PreHook
	postHooks []PostHook
	nested    bool
}

// WithPreHook applies hook after decoding and before post-hooks.
func WithPreHook(hook PreHook) DecoderOption {
	return func(d *Decoder) {
		d.preHooks = append(d.preHooks, hook)
	}
}

// WithPostHook applies hook once the payload is final.
func WithPostHook(hook PostHook) DecoderOption {
	return func(d *Decoder) {
		d.postHooks = append(d.postHooks, hook)
	}
}

// WithNestedValues keeps map and list values instead of rejecting them.
func WithNestedValues() DecoderOption {
	return func(d *Decoder) {
		d.nested = true
	}
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Decode parses data according to format. The document root must be a
// mapping; numbers from JSON are kept as json.Number and YAML scalars keep
// their native Go types.
func (d *Decoder) Decode(ctx Context, format Format, data []byte) (map[string]any, error) {
	payload, err := decodeDocument(format, data)
	if err != nil {
		return nil, fmt.Errorf("hydrate: decode %s: %w", describeSource(ctx), err)
	}
	if payload == nil {
		payload = map[string]any{}
	}

	for _, hook := range d.preHooks {
		if hook == nil {
			continue
		}
		next, err := hook(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("hydrate: pre-hook for %s failed: %w", describeSource(ctx), err)
		}
		if next != nil {
			payload = next
		}
	}

	if !d.nested {
		for key, value := range payload {
			switch value.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("hydrate: %s: key %q holds a nested value", describeSource(ctx), key)
			}
		}
	}

	for _, hook := range d.postHooks {
		if hook == nil {
			continue
		}
		if err := hook(ctx, payload); err != nil {
			return nil, fmt.Errorf("hydrate: post-hook for %s failed: %w", describeSource(ctx), err)
		}
	}
	return payload, nil
}

func decodeDocument(format Format, data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var out map[string]any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&out); err != nil {
			return nil, err
		}
	case FormatYAML, "":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return out, nil
}

func describeSource(ctx Context) string {
	if ctx.Source == "" {
		return "document"
	}
	return fmt.Sprintf("%q", ctx.Source)
}
