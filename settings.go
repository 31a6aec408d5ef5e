package rdfopts

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-rdf-options/internal/hydrate"
	"github.com/goliatone/go-rdf-options/pkg/activity"
)

var (
	// ErrNotApplicable indicates an option that does not apply to the
	// settings' area.
	ErrNotApplicable = errors.New("rdfopts: option not applicable to area")
	// ErrTypeMismatch indicates an accessor used against the wrong value type.
	ErrTypeMismatch = errors.New("rdfopts: option value type mismatch")
	// ErrInvalidValue indicates a value that cannot be converted to the
	// option's declared type.
	ErrInvalidValue = errors.New("rdfopts: invalid option value")
)

// DocumentFormat names the encoding of a settings document.
type DocumentFormat = hydrate.Format

const (
	DocumentJSON = hydrate.FormatJSON
	DocumentYAML = hydrate.FormatYAML
)

// DetectDocumentFormat guesses a settings document format from its file name.
func DetectDocumentFormat(path string) DocumentFormat {
	return hydrate.DetectFormat(path)
}

// Settings is the typed accessor layer over a State. It checks identities,
// area applicability and value types before storing, and reports every change
// to the World's activity hooks. Settings is not safe for concurrent use.
type Settings struct {
	world    *World
	state    State
	objectID string
	actorID  string
}

// SettingsOption configures a Settings instance.
type SettingsOption func(*Settings)

// WithObjectID names the owning object in emitted events.
func WithObjectID(id string) SettingsOption {
	return func(s *Settings) {
		s.objectID = strings.TrimSpace(id)
	}
}

// WithActorID records who changes the settings in emitted events.
func WithActorID(id string) SettingsOption {
	return func(s *Settings) {
		s.actorID = strings.TrimSpace(id)
	}
}

// NewSettings creates settings for an object of the given area.
func (w *World) NewSettings(area Area, opts ...SettingsOption) *Settings {
	s := &Settings{world: w}
	s.state.Init(area)
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Area returns the area the settings were created for.
func (s *Settings) Area() Area {
	return s.state.Area()
}

// State exposes the underlying store.
func (s *Settings) State() *State {
	return &s.state
}

func (s *Settings) descriptor(id ID) (Descriptor, error) {
	d, ok := Lookup(id)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %d", ErrInvalidOption, id)
	}
	if !d.Area.Intersects(s.state.Area()) {
		return Descriptor{}, fmt.Errorf("%w: %s is %s, settings are %s", ErrNotApplicable, d.Name, d.Area, s.state.Area())
	}
	return d, nil
}

// SetInt stores an integer or boolean option. Booleans store 1 for any
// non-zero input.
func (s *Settings) SetInt(ctx context.Context, id ID, value int) error {
	d, err := s.descriptor(id)
	if err != nil {
		return err
	}
	v, err := valueFromInt(d, value)
	if err != nil {
		return err
	}
	return s.store(ctx, d, v)
}

// SetBool stores a boolean option.
func (s *Settings) SetBool(ctx context.Context, id ID, value bool) error {
	d, err := s.descriptor(id)
	if err != nil {
		return err
	}
	if d.ValueType != ValueTypeBool {
		return fmt.Errorf("%w: %s is %s", ErrTypeMismatch, d.Name, d.ValueType)
	}
	return s.store(ctx, d, Value{Integer: boolToInt(value)})
}

// SetString stores any option from its string form. String options keep the
// text, URI options parse it with the World's URIFactory and numeric options
// parse it as an integer or boolean.
func (s *Settings) SetString(ctx context.Context, id ID, value string) error {
	d, err := s.descriptor(id)
	if err != nil {
		return err
	}
	v, err := s.valueFromString(d, value)
	if err != nil {
		return err
	}
	return s.store(ctx, d, v)
}

// Int returns the value of an integer or boolean option.
func (s *Settings) Int(id ID) (int, error) {
	d, err := s.descriptor(id)
	if err != nil {
		return 0, err
	}
	if !d.ValueType.Numeric() {
		return 0, fmt.Errorf("%w: %s is %s", ErrTypeMismatch, d.Name, d.ValueType)
	}
	return s.state.values[id].Integer, nil
}

// Bool returns the value of a boolean option.
func (s *Settings) Bool(id ID) (bool, error) {
	d, err := s.descriptor(id)
	if err != nil {
		return false, err
	}
	if d.ValueType != ValueTypeBool {
		return false, fmt.Errorf("%w: %s is %s", ErrTypeMismatch, d.Name, d.ValueType)
	}
	return s.state.values[id].Integer != 0, nil
}

// StringValue returns the value of a string option, or the string form of a
// URI option ("" when unset).
func (s *Settings) StringValue(id ID) (string, error) {
	d, err := s.descriptor(id)
	if err != nil {
		return "", err
	}
	switch d.ValueType {
	case ValueTypeString:
		return s.state.values[id].String, nil
	case ValueTypeURI:
		if uri := s.state.values[id].URI; uri != nil {
			return uri.String(), nil
		}
		return "", nil
	default:
		return "", fmt.Errorf("%w: %s is %s", ErrTypeMismatch, d.Name, d.ValueType)
	}
}

// URIValue returns the value of a URI option; nil when unset.
func (s *Settings) URIValue(id ID) (URI, error) {
	d, err := s.descriptor(id)
	if err != nil {
		return nil, err
	}
	if d.ValueType != ValueTypeURI {
		return nil, fmt.Errorf("%w: %s is %s", ErrTypeMismatch, d.Name, d.ValueType)
	}
	return s.state.values[id].URI, nil
}

// Snapshot returns the typed values of every option applicable to the
// settings' area, keyed by short name.
func (s *Settings) Snapshot() map[string]any {
	out := map[string]any{}
	for i := range descriptors {
		d := descriptors[i]
		if !d.Area.Intersects(s.state.Area()) {
			continue
		}
		out[d.Name] = typedValue(d, s.state.values[d.ID])
	}
	return out
}

// Clone returns new settings with the same area and a copy of every value.
func (s *Settings) Clone(ctx context.Context) (*Settings, error) {
	clone := &Settings{world: s.world, objectID: s.objectID, actorID: s.actorID}
	clone.state.Init(s.state.Area())
	CopyState(&clone.state, &s.state)
	return clone, s.world.emit(ctx, activity.BuildStateCopiedEvent(s.eventInput()))
}

// CopyFrom replaces every value with the values held by other. The area of s
// is left unchanged.
func (s *Settings) CopyFrom(ctx context.Context, other *Settings) error {
	if other == nil {
		return fmt.Errorf("rdfopts: copy source is nil")
	}
	CopyState(&s.state, &other.state)
	return s.world.emit(ctx, activity.BuildStateCopiedEvent(s.eventInput()))
}

// Apply sets options from a payload keyed by short name or canonical URI. The
// payload is validated as a whole before anything is stored.
func (s *Settings) Apply(ctx context.Context, payload map[string]any) error {
	return s.apply(ctx, "", payload)
}

// ApplyDocument decodes a JSON or YAML settings document and applies it.
func (s *Settings) ApplyDocument(ctx context.Context, source string, format DocumentFormat, data []byte) error {
	decoder := hydrate.NewDecoder()
	payload, err := decoder.Decode(hydrate.Context{Source: source, Area: s.state.Area().String()}, format, data)
	if err != nil {
		return err
	}
	return s.apply(ctx, source, payload)
}

func (s *Settings) apply(ctx context.Context, source string, payload map[string]any) error {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	staged := s.state
	names := make([]string, 0, len(keys))
	var errs []error
	for _, key := range keys {
		id := resolveKey(key)
		d, err := s.descriptor(id)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", key, err))
			continue
		}
		v, err := s.valueFromAny(d, payload[key])
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", key, err))
			continue
		}
		staged.values[id] = v
		names = append(names, d.Name)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	CopyState(&s.state, &staged)
	input := s.eventInput()
	input.Source = source
	input.NewValue = names
	return s.world.emit(ctx, activity.BuildDocumentAppliedEvent(input))
}

func (s *Settings) store(ctx context.Context, d Descriptor, v Value) error {
	old := s.state.values[d.ID]
	s.state.SetValue(d.ID, v)

	input := s.eventInput()
	input.Option = d.Name
	input.OptionURI = d.URI()
	input.OldValue = typedValue(d, old)
	input.NewValue = typedValue(d, v)
	return s.world.emit(ctx, activity.BuildOptionSetEvent(input))
}

func (s *Settings) eventInput() activity.OptionEventInput {
	return activity.OptionEventInput{
		ActorID:  s.actorID,
		ObjectID: s.objectID,
		Area:     s.state.Area().String(),
	}
}

func resolveKey(key string) ID {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, URIPrefix) {
		return OptionFromURIString(key)
	}
	return LookupName(key)
}

func valueFromInt(d Descriptor, value int) (Value, error) {
	switch d.ValueType {
	case ValueTypeBool:
		return Value{Integer: boolToInt(value != 0)}, nil
	case ValueTypeInt:
		return Value{Integer: value}, nil
	default:
		return Value{}, fmt.Errorf("%w: %s is %s", ErrTypeMismatch, d.Name, d.ValueType)
	}
}

func (s *Settings) valueFromString(d Descriptor, value string) (Value, error) {
	switch d.ValueType {
	case ValueTypeBool:
		b, err := parseBool(value)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %q is not a boolean", ErrInvalidValue, d.Name, value)
		}
		return Value{Integer: boolToInt(b)}, nil
	case ValueTypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidValue, d.Name, value)
		}
		return Value{Integer: n}, nil
	case ValueTypeString:
		return Value{String: value}, nil
	case ValueTypeURI:
		if value == "" {
			return Value{}, nil
		}
		uri, err := s.world.uriFactory().NewURI(value)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %w", ErrURIConstruction, d.Name, err)
		}
		return Value{URI: uri}, nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrInvalidOption, d.Name)
	}
}

func (s *Settings) valueFromAny(d Descriptor, raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Value{}, nil
	case bool:
		if d.ValueType != ValueTypeBool {
			return Value{}, fmt.Errorf("%w: %s is %s", ErrTypeMismatch, d.Name, d.ValueType)
		}
		return Value{Integer: boolToInt(typed)}, nil
	case int:
		return valueFromInt(d, typed)
	case int64:
		return valueFromInt(d, int(typed))
	case uint64:
		if typed > math.MaxInt {
			return Value{}, fmt.Errorf("%w: %s: %d overflows int", ErrInvalidValue, d.Name, typed)
		}
		return valueFromInt(d, int(typed))
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) || typed != math.Trunc(typed) {
			return Value{}, fmt.Errorf("%w: %s: %v is not an integer", ErrInvalidValue, d.Name, typed)
		}
		// float64(math.MaxInt) rounds up to 2^63, so compare against -MinInt.
		if typed < math.MinInt || typed >= -math.MinInt {
			return Value{}, fmt.Errorf("%w: %s: %v overflows int", ErrInvalidValue, d.Name, typed)
		}
		return valueFromInt(d, int(typed))
	case json.Number:
		n, err := typed.Int64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s: %s is not an integer", ErrInvalidValue, d.Name, typed)
		}
		return valueFromInt(d, int(n))
	case string:
		return s.valueFromString(d, typed)
	case fmt.Stringer:
		return s.valueFromString(d, typed.String())
	default:
		return Value{}, fmt.Errorf("%w: %s: unsupported %T", ErrInvalidValue, d.Name, raw)
	}
}

func typedValue(d Descriptor, v Value) any {
	switch d.ValueType {
	case ValueTypeBool:
		return v.Integer != 0
	case ValueTypeInt:
		return v.Integer
	case ValueTypeString:
		return v.String
	case ValueTypeURI:
		if v.URI == nil {
			return ""
		}
		return v.URI.String()
	default:
		return nil
	}
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(value))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
