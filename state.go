package rdfopts

// Value holds one stored option value. Boolean and integer options use
// Integer; string options use String; URI options use URI.
type Value struct {
	Integer int
	String  string
	URI     URI
}

// IsZero reports whether v holds the default value.
func (v Value) IsZero() bool {
	return v.Integer == 0 && v.String == "" && v.URI == nil
}

// State is the per-object option store owned by one parser, serializer,
// reader or writer. It keeps a slot for every option, including the ones that
// do not apply to its area, so copies are uniform.
//
// State does not check values against the declared value type; the Settings
// accessors do that. State is not safe for concurrent use.
type State struct {
	area   Area
	values [optionCount]Value
}

// NewState returns a State tagged with area and zero values.
func NewState(area Area) *State {
	s := &State{}
	s.Init(area)
	return s
}

// Init tags s with area and resets every value.
func (s *State) Init(area Area) {
	s.area = area
	s.values = [optionCount]Value{}
}

// Area returns the area the state was initialised with.
func (s *State) Area() Area {
	return s.area
}

// Value returns the stored value for id.
func (s *State) Value(id ID) (Value, bool) {
	if !id.Valid() {
		return Value{}, false
	}
	return s.values[id], true
}

// SetValue stores v for id without type checking. It reports false and leaves
// s untouched when id is outside the catalog.
func (s *State) SetValue(id ID, v Value) bool {
	if !id.Valid() {
		return false
	}
	s.values[id] = v
	return true
}

// CopyState copies every value from one state into another. The destination
// keeps its own area, even when it differs from the source's.
func CopyState(to, from *State) {
	if to == nil || from == nil {
		return
	}
	to.values = from.values
}
