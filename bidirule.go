package precis

import "golang.org/x/text/unicode/bidi"

// bidiState names the states of the linear state machine spec.md §4.11
// describes for RFC 5893 §2 validation. No backtracking: one left-to-right
// pass classifies every code point; the end-of-label check then looks back
// from the end past any trailing NSM run.
type bidiState int8

const (
	bidiStart bidiState = iota
	bidiScanLTR
	bidiScanRTL
	bidiTrailer
)

// classOf returns the Bidi_Class of r via golang.org/x/text/unicode/bidi,
// the same table the teacher's own bidi package consults
// (bidi/resolver.go) for the full UAX#9 algorithm; RFC 5893 needs only the
// per-rune class, not a reordering engine.
func classOf(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

// CheckBidi validates s against the six rules of RFC 5893 §2 directly,
// independent of a Profile. Exported for callers building a custom
// profile via NewProfile who want to apply the bidi rule themselves —
// NewProfile's own WithBidiRule option calls this same check internally.
// s must be non-empty; callers validate emptiness separately.
func CheckBidi(s string) error {
	return checkBidi(s)
}

// checkBidi is the unexported implementation CheckBidi and Profile.Prepare
// / Profile.Enforce share.
func checkBidi(s string) error {
	runes := []rune(s)

	state := bidiStart
	first := classOf(runes[0])
	var rtl bool
	switch first {
	case bidi.L:
		rtl = false
	case bidi.R, bidi.AL:
		rtl = true
	default:
		// Rule 1: the first character must be L, R, or AL.
		return &DirectionError{Rule: 1}
	}
	if rtl {
		state = bidiScanRTL
		return scanRTL(runes, state)
	}
	state = bidiScanLTR
	return scanLTR(runes, state)
}

// scanRTL implements rules 2, 3 and 4 for an RTL label.
func scanRTL(runes []rune, _ bidiState) error {
	var hasEN, hasAN bool
	for _, r := range runes {
		switch c := classOf(r); c {
		case bidi.R, bidi.AL, bidi.AN, bidi.EN, bidi.ES, bidi.CS, bidi.ET, bidi.ON, bidi.BN, bidi.NSM:
			if c == bidi.EN {
				hasEN = true
			}
			if c == bidi.AN {
				hasAN = true
			}
		default:
			// Rule 2: only these classes are allowed in an RTL label.
			return &DirectionError{Rule: 2}
		}
	}
	// Rule 4: EN and AN must not both be present.
	if hasEN && hasAN {
		return &DirectionError{Rule: 4}
	}
	// Rule 3: trailer of trailing NSM, then a class-checked final character.
	i := trailerStart(runes, bidiTrailer)
	if i < 0 {
		return &DirectionError{Rule: 3}
	}
	switch classOf(runes[i]) {
	case bidi.R, bidi.AL, bidi.EN, bidi.AN:
		return nil
	default:
		return &DirectionError{Rule: 3}
	}
}

// scanLTR implements rules 5 and 6 for an LTR label.
func scanLTR(runes []rune, _ bidiState) error {
	for _, r := range runes {
		switch classOf(r) {
		case bidi.L, bidi.EN, bidi.ES, bidi.CS, bidi.ET, bidi.ON, bidi.BN, bidi.NSM:
			// Rule 5: only these classes are allowed in an LTR label.
		default:
			return &DirectionError{Rule: 5}
		}
	}
	i := trailerStart(runes, bidiTrailer)
	if i < 0 {
		return &DirectionError{Rule: 6}
	}
	switch classOf(runes[i]) {
	case bidi.L, bidi.EN:
		return nil
	default:
		return &DirectionError{Rule: 6}
	}
}

// trailerStart walks backward over any run of trailing NSM code points and
// returns the index of the code point they trail, or -1 if the label is
// made entirely of NSM.
func trailerStart(runes []rune, _ bidiState) int {
	i := len(runes) - 1
	for i >= 0 && classOf(runes[i]) == bidi.NSM {
		i--
	}
	return i
}
