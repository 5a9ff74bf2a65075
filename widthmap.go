package precis

import "golang.org/x/text/width"

// widthFolder maps fullwidth and halfwidth code points (Decomposition_Type
// = Wide | Narrow) to their singleton compatibility decomposition, leaving
// every other code point unchanged — the exact contract of spec.md §4.4.
// Adapted from the teacher's East_Asian_Width handling (formerly
// uax11.WidthCategory/consultEAWTables, which classified width categories
// from a hand-maintained unicode.RangeTable): PRECIS does not need the six
// UAX#11 width categories, only the fold itself, so golang.org/x/text/width
// — already part of the teacher's golang.org/x/text dependency — replaces
// the category tables entirely.
var widthFolder = width.Fold

// widthMap returns s with every fullwidth/halfwidth code point replaced by
// its compatibility decomposition. Pure function; preserves length in code
// points.
func widthMap(s string) string {
	return widthFolder.String(s)
}
