package precis

import "sort"

// runeRange is a closed interval [Lo, Hi] of code points, the unit every
// curated PRECIS table is built from. Tables are sorted, non-overlapping
// and monotonically increasing by Lo (spec.md §3, invariant 4).
type runeRange struct {
	Lo, Hi rune
}

// rangeTable is a sorted, non-overlapping sequence of runeRanges, looked up
// by binary search. It plays the same role as a unicode.RangeTable but is
// hand-maintained here rather than generated from the UCD, since the
// build-time UCD generator is an out-of-scope external collaborator
// (spec.md §1); its would-be output — sorted, tagged ranges — is supplied
// directly as Go literals, following the same layout
// `uax11.consultEAWTables`/`ucdparse.RangeTableCollector` produce for the
// teacher's East_Asian_Width tables.
type rangeTable []runeRange

// contains reports whether r falls within any range of the table.
// Binary search for the first range whose Hi is >= r, then a check of
// that range's Lo; O(log N), O(1) space.
func (t rangeTable) contains(r rune) bool {
	i := sort.Search(len(t), func(i int) bool { return t[i].Hi >= r })
	return i < len(t) && t[i].Lo <= r
}

// propertyRange tags a range with the derived property recorded for it,
// used by tables whose entries carry a property rather than plain
// membership (the Exceptions and BackwardCompatible tables of RFC 8264
// Appendices A and B).
type propertyRange struct {
	Lo, Hi rune
	Prop   Category
}

// propertyTable is a sorted sequence of propertyRanges, queried with its
// own binary search independent of rangeTable.contains because each hit
// must also yield the tagged property, not just a boolean.
type propertyTable []propertyRange

// lookup returns the recorded property for r and true if r is covered by
// the table, or (0, false) otherwise.
func (t propertyTable) lookup(r rune) (Category, bool) {
	i := sort.Search(len(t), func(i int) bool { return t[i].Hi >= r })
	if i < len(t) && t[i].Lo <= r {
		return t[i].Prop, true
	}
	return 0, false
}

// sorted reports whether a rangeTable satisfies the sortedness and
// non-overlap invariant; used by tests guarding against a maintenance
// mistake in the literal table data.
func (t rangeTable) sorted() bool {
	for i := 1; i < len(t); i++ {
		if t[i-1].Hi >= t[i].Lo {
			return false
		}
	}
	return true
}

func (t propertyTable) sorted() bool {
	for i := 1; i < len(t); i++ {
		if t[i-1].Hi >= t[i].Lo {
			return false
		}
	}
	return true
}
