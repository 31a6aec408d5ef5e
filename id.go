package rdfopts

import "strconv"

// ID identifies one option. The value doubles as the option's index in the
// catalog, so identities are dense (0..Count()-1). New options are appended;
// existing identities never change.
type ID int

// InvalidID is returned by lookups that do not match any option.
const InvalidID ID = -1

const (
	OptionScanning ID = iota
	OptionAllowNonNSAttributes
	OptionAllowOtherParseTypes
	OptionAllowBagID
	OptionAllowRDFTypeRDFList
	OptionNormalizeLanguage
	OptionNonNFCFatal
	OptionWarnOtherParseTypes
	OptionCheckRDFID
	OptionRelativeURIs
	OptionWriterAutoIndent
	OptionWriterAutoEmpty
	OptionWriterIndentWidth
	OptionWriterXMLVersion
	OptionWriterXMLDeclaration
	OptionNoNet
	OptionResourceBorder
	OptionLiteralBorder
	OptionBNodeBorder
	OptionResourceFill
	OptionLiteralFill
	OptionBNodeFill
	OptionHTMLTagSoup
	OptionMicroformats
	OptionHTMLLink
	OptionWWWTimeout
	OptionWriteBaseURI
	OptionWWWHTTPCacheControl
	OptionWWWHTTPUserAgent
	OptionJSONCallback
	OptionJSONExtraData
	OptionRSSTriples
	OptionAtomEntryURI
	OptionPrefixElements

	// OptionLast is the highest defined identity.
	OptionLast = OptionPrefixElements
)

const optionCount = int(OptionLast) + 1

// Count returns the number of defined options.
func Count() int {
	return optionCount
}

// Valid reports whether id names a defined option.
func (id ID) Valid() bool {
	return id >= 0 && int(id) < optionCount
}

// String returns the option's short name, or a numeric placeholder for
// identities outside the catalog.
func (id ID) String() string {
	if !id.Valid() {
		return "option(" + strconv.Itoa(int(id)) + ")"
	}
	return descriptors[id].Name
}
