package precis

import "golang.org/x/text/cases"

// caseFolder implements RFC 8265's B.2 "toCaseFold" mapping: unconditional
// full case folding, language-independent, with no locale tailoring. This
// is a known limitation inherited from RFC 8265 (spec.md §4.5), not a bug
// to be fixed here — locale-sensitive case mapping is an explicit
// spec.md Non-goal.
var caseFolder = cases.Fold()

// toLower applies unconditional full case folding to s.
func toLower(s string) string {
	return caseFolder.String(s)
}
