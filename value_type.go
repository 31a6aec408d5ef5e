package rdfopts

// ValueType is the declared type of an option value.
type ValueType int

const (
	// ValueTypeInvalid is returned for identities outside the catalog.
	ValueTypeInvalid ValueType = -1

	ValueTypeBool ValueType = iota - 1
	ValueTypeInt
	ValueTypeString
	ValueTypeURI

	ValueTypeLast = ValueTypeURI
)

var valueTypeLabels = [ValueTypeLast + 1]string{
	"boolean",
	"integer",
	"string",
	"uri",
}

// ValueTypeLabel returns the human readable label for t. The boolean is false
// when t is not one of the four defined value types.
func ValueTypeLabel(t ValueType) (string, bool) {
	if t < 0 || t > ValueTypeLast {
		return "", false
	}
	return valueTypeLabels[t], true
}

func (t ValueType) String() string {
	if label, ok := ValueTypeLabel(t); ok {
		return label
	}
	return "invalid"
}

// Numeric reports whether values of this type are held as integers.
func (t ValueType) Numeric() bool {
	return t == ValueTypeBool || t == ValueTypeInt
}
