/*
Package nicknames implements the PRECIS Nickname profile of RFC 8266, for
display names such as chat room nicknames. Nickname maps Unicode spaces to
ASCII SPACE, collapses runs of spaces, trims the result, and normalizes
with NFKC — it never applies case folding or the bidi rule in Enforce, so
two differently-cased nicknames enforce to different strings. Comparison
equivalence is instead achieved by Compare, which layers an additional
case fold and a second NFKC pass on top of both enforced operands, per
RFC 8266 §2.4.
*/
package nicknames

import (
	"sync"

	"github.com/npillmayer/precis"
)

var (
	once     sync.Once
	nickname *precis.Profile
)

func setup() {
	nickname = precis.NewProfile(precis.Freeform,
		precis.WithName("Nickname"),
		precis.WithAdditionalMapping(precis.MapSpacesToASCII),
		precis.WithAdditionalMapping(precis.CollapseSpaces),
		precis.WithAdditionalMapping(precis.TrimSpaces),
		precis.WithNFKC(),
	)
	precis.Register(nickname)
}

// Nickname returns the shared Nickname profile, initializing it on first
// call.
func Nickname() *precis.Profile {
	once.Do(setup)
	return nickname
}

// Prepare runs Nickname.Prepare.
func Prepare(s string) (string, error) { return Nickname().Prepare(s) }

// Enforce runs Nickname.Enforce.
func Enforce(s string) (string, error) { return Nickname().Enforce(s) }

// Compare enforces both operands, as Profile.Compare does, but then —
// per RFC 8266 §2.4 — additionally case-folds and re-applies NFKC to each
// result before the final byte comparison. This is an explicit deviation
// from the generic Profile.Compare (which only enforces and compares):
// the RFC requires it specifically for Nickname, not for the other three
// catalogue profiles (spec.md §4.10, Open Question).
func Compare(a, b string) (bool, error) {
	ea, err := Enforce(a)
	if err != nil {
		return false, err
	}
	eb, err := Enforce(b)
	if err != nil {
		return false, err
	}
	return precis.FoldAndNFKC(ea) == precis.FoldAndNFKC(eb), nil
}
