package precis

import "strings"

// mapStep is one step of a profile's ordered transformation pipeline.
// Pipelines thread a copy-on-write discipline: a step that finds nothing
// to change returns its input string unchanged (the borrow), promoting to
// a pooled builder only once it must actually mutate (spec.md §9 design
// note, §5).
type mapStep func(string) string

// MapSpacesToASCII replaces every Unicode space (General_Category = Zs)
// with the ASCII SPACE (0x20), used by OpaqueString and Nickname
// (spec.md §4.10). Exported so the profile-family sub-packages can pass
// it to precis.WithAdditionalMapping when building their profiles.
func MapSpacesToASCII(s string) string {
	changed := false
	for _, r := range s {
		if r != ' ' && isSpace(r) {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}
	b := getBuilder()
	defer putBuilder(b)
	for _, r := range s {
		if isSpace(r) {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseSpaces collapses any run of consecutive ASCII SPACE characters
// into a single SPACE, used by Nickname.
func CollapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	b := getBuilder()
	defer putBuilder(b)
	prevSpace := false
	for _, r := range s {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TrimSpaces trims leading and trailing ASCII SPACE, used by Nickname.
func TrimSpaces(s string) string {
	trimmed := strings.Trim(s, " ")
	if trimmed == s {
		return s
	}
	return trimmed
}

// FoldAndNFKC case-folds s and re-applies NFKC normalization. RFC 8266
// §2.4 requires Nickname.Compare to apply this on top of Enforce's own
// output before the final byte comparison; exported so the nicknames
// package can call it without reimplementing case folding + NFKC.
func FoldAndNFKC(s string) string {
	return nfkc(toLower(s))
}
