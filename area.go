package rdfopts

import (
	"errors"
	"fmt"
	"strings"
)

// Area is a set of subsystems an option applies to. Each bit names one
// subsystem; an option may carry several bits.
type Area uint8

const (
	AreaNone Area = 0

	AreaParser       Area = 1 << 0
	AreaSerializer   Area = 1 << 1
	AreaTurtleWriter Area = 1 << 2
	AreaXMLWriter    Area = 1 << 3
	// AreaXMLReader is the SAX2 style XML event reader.
	AreaXMLReader Area = 1 << 4

	areaAll = AreaParser | AreaSerializer | AreaTurtleWriter | AreaXMLWriter | AreaXMLReader
)

// ErrUnknownArea is returned by ParseArea for unrecognised names.
var ErrUnknownArea = errors.New("rdfopts: unknown area")

var areaFlags = []struct {
	flag    Area
	name    string
	aliases []string
}{
	{AreaParser, "parser", nil},
	{AreaSerializer, "serializer", nil},
	{AreaTurtleWriter, "turtle-writer", []string{"turtle_writer", "turtlewriter"}},
	{AreaXMLWriter, "xml-writer", []string{"xml_writer", "xmlwriter"}},
	{AreaXMLReader, "xml-reader", []string{"xml_reader", "xmlreader", "sax2"}},
}

// Intersects reports whether a and other share at least one subsystem.
func (a Area) Intersects(other Area) bool {
	return a&other != 0
}

// Has reports whether every bit of flag is present in a.
func (a Area) Has(flag Area) bool {
	return flag != 0 && a&flag == flag
}

// Flags splits a into its single-bit components in declaration order.
func (a Area) Flags() []Area {
	var out []Area
	for _, entry := range areaFlags {
		if a&entry.flag != 0 {
			out = append(out, entry.flag)
		}
	}
	return out
}

// Names returns the names of every subsystem in a.
func (a Area) Names() []string {
	var out []string
	for _, entry := range areaFlags {
		if a&entry.flag != 0 {
			out = append(out, entry.name)
		}
	}
	return out
}

func (a Area) String() string {
	if a == AreaNone {
		return "none"
	}
	names := a.Names()
	if extra := a &^ areaAll; extra != 0 {
		names = append(names, fmt.Sprintf("0x%02x", uint8(extra)))
	}
	return strings.Join(names, " ")
}

// ParseArea converts a comma or space separated list of area names into an
// Area. Matching is case-insensitive.
func ParseArea(value string) (Area, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '|' || r == '\t'
	})
	var area Area
	for _, field := range fields {
		flag, ok := lookupAreaName(strings.ToLower(field))
		if !ok {
			return AreaNone, fmt.Errorf("%w: %q", ErrUnknownArea, field)
		}
		area |= flag
	}
	return area, nil
}

func lookupAreaName(name string) (Area, bool) {
	for _, entry := range areaFlags {
		if entry.name == name {
			return entry.flag, true
		}
		for _, alias := range entry.aliases {
			if alias == name {
				return entry.flag, true
			}
		}
	}
	return AreaNone, false
}
