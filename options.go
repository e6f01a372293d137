package rtfmerge

// Options controls how bare string inputs are interpreted by New and Add.
type Options int

const (
	// OptNone leaves string interpretation at the default
	// (StringsAsFilenames is forced on after construction).
	OptNone Options = 0

	// StringsAsFilenames treats string inputs as paths to RTF files.
	StringsAsFilenames Options = 1

	// StringsAsData treats string inputs as literal document data.
	StringsAsData Options = 2

	// stringsMask covers the string-interpretation bits.
	stringsMask Options = 3
)

// normalize resolves the string-interpretation bits to exactly one:
// neither set forces StringsAsFilenames, both set resolves to
// StringsAsData.
func (o Options) normalize() Options {
	switch o & stringsMask {
	case StringsAsFilenames, StringsAsData:
		return o
	case 0:
		return o | StringsAsFilenames
	default:
		return (o &^ stringsMask) | StringsAsData
	}
}

// stringsAsData reports whether string inputs carry literal document data.
func (o Options) stringsAsData() bool {
	return o&StringsAsData != 0
}
