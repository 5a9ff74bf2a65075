/*
Package passwords implements the PRECIS OpaqueString profile of RFC 8265,
intended for passwords and other opaque secrets. OpaqueString uses the
permissive Freeform string class: it maps every Unicode space to the ASCII
SPACE and normalizes to NFC, but applies no case folding, no width
mapping, and no directionality check — a password's visual rendering does
not need to be spoof-resistant the way an identifier's does.

Non-goal: this package does not provide constant-time comparison.
Comparing password-equivalence by enforcing both operands and comparing
ordinary Go strings leaks timing information about where the first
differing byte is, by design of Go's string equality operator; callers
needing constant-time comparison of the enforced secrets must do so
themselves, e.g. with crypto/subtle.
*/
package passwords

import (
	"sync"

	"github.com/npillmayer/precis"
)

var (
	once   sync.Once
	opaque *precis.Profile
)

func setup() {
	opaque = precis.NewProfile(precis.Freeform,
		precis.WithName("OpaqueString"),
		precis.WithAdditionalMapping(precis.MapSpacesToASCII),
		precis.WithNFC(),
	)
	precis.Register(opaque)
}

// OpaqueString returns the shared OpaqueString profile, initializing it
// on first call.
func OpaqueString() *precis.Profile {
	once.Do(setup)
	return opaque
}

// Prepare runs OpaqueString.Prepare.
func Prepare(s string) (string, error) { return OpaqueString().Prepare(s) }

// Enforce runs OpaqueString.Enforce.
func Enforce(s string) (string, error) { return OpaqueString().Enforce(s) }

// Compare runs OpaqueString.Compare. Not constant-time; see the package
// doc comment.
func Compare(a, b string) (bool, error) { return OpaqueString().Compare(a, b) }
