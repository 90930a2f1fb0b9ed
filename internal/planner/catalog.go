package planner

// The catalogs below must match what the generator writes in per-file mode.
// Nothing verifies this at plan time; a stale entry shows up later as a
// missing file in a downstream build step.

// Output layout
const (
	// SourceExt is the extension of every generated source file.
	SourceExt = ".swift"

	// BuiltinDir is the subdirectory holding builtin-type sources.
	BuiltinDir = "generated-builtin"

	// GeneralDir is the subdirectory holding all other generated sources.
	GeneralDir = "generated"

	// CombinedPrefix prefixes each combined-mode output file.
	CombinedPrefix = "SwiftGodot"

	// CombinedAlphabet has one letter per combined-mode output file.
	CombinedAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// BuiltinNames returns a copy of the builtin output catalog.
func BuiltinNames() []string {
	return append([]string(nil), builtinNames[:]...)
}

// GeneralNames returns a copy of the general output catalog.
func GeneralNames() []string {
	return append([]string(nil), generalNames[:]...)
}

// CombinedNames returns the combined-mode file names, one per letter.
func CombinedNames() []string {
	names := make([]string, 0, len(CombinedAlphabet))
	for _, letter := range CombinedAlphabet {
		names = append(names, CombinedPrefix+string(letter)+SourceExt)
	}
	return names
}
