/*
Package usernames implements the two PRECIS username profiles of RFC 8265:
UsernameCaseMapped and UsernameCasePreserved. Both use the Identifier
string class; UsernameCaseMapped additionally folds case, so that "Alice"
and "alice" enforce to the same canonical form while
UsernameCasePreserved keeps them distinct.

Usage

Call one of the package-level functions directly — they are backed by a
lazily initialized, process-wide shared profile instance and are safe for
concurrent use (spec.md §5, §6's "fast invocation" surface):

	out, err := usernames.EnforceCaseMapped("Alice") // => "alice", nil

Advanced callers who want the underlying *precis.Profile (e.g. to pass to
their own code that accepts a precis.Profile) can use CaseMapped() and
CasePreserved(), which return the same lazily initialized instances the
package-level functions use.
*/
package usernames

import (
	"sync"

	"github.com/npillmayer/precis"
)

var (
	once          sync.Once
	caseMapped    *precis.Profile
	casePreserved *precis.Profile
)

func setup() {
	caseMapped = precis.NewProfile(precis.Identifier,
		precis.WithName("UsernameCaseMapped"),
		precis.WithWidthMapping(),
		precis.WithCaseMapping(),
		precis.WithNFC(),
		precis.WithBidiRule(),
	)
	casePreserved = precis.NewProfile(precis.Identifier,
		precis.WithName("UsernameCasePreserved"),
		precis.WithWidthMapping(),
		precis.WithNFC(),
		precis.WithBidiRule(),
	)
	precis.Register(caseMapped)
	precis.Register(casePreserved)
}

// CaseMapped returns the shared UsernameCaseMapped profile, initializing
// it on first call.
func CaseMapped() *precis.Profile {
	once.Do(setup)
	return caseMapped
}

// CasePreserved returns the shared UsernameCasePreserved profile,
// initializing it on first call.
func CasePreserved() *precis.Profile {
	once.Do(setup)
	return casePreserved
}

// PrepareCaseMapped runs UsernameCaseMapped.Prepare.
func PrepareCaseMapped(s string) (string, error) { return CaseMapped().Prepare(s) }

// EnforceCaseMapped runs UsernameCaseMapped.Enforce.
func EnforceCaseMapped(s string) (string, error) { return CaseMapped().Enforce(s) }

// CompareCaseMapped runs UsernameCaseMapped.Compare.
func CompareCaseMapped(a, b string) (bool, error) { return CaseMapped().Compare(a, b) }

// PreparePreserved runs UsernameCasePreserved.Prepare.
func PreparePreserved(s string) (string, error) { return CasePreserved().Prepare(s) }

// EnforcePreserved runs UsernameCasePreserved.Enforce.
func EnforcePreserved(s string) (string, error) { return CasePreserved().Enforce(s) }

// ComparePreserved runs UsernameCasePreserved.Compare.
func ComparePreserved(a, b string) (bool, error) { return CasePreserved().Compare(a, b) }
