package precis

import "golang.org/x/text/unicode/norm"

// nfc returns the canonical composition (Normalization Form C) of s, per
// Unicode Standard Annex #15.
func nfc(s string) string {
	return norm.NFC.String(s)
}

// nfkc returns the compatibility composition (Normalization Form KC) of s.
func nfkc(s string) string {
	return norm.NFKC.String(s)
}
