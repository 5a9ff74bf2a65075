package precis

// virama lists the combining class "Virama" code points RFC 5892 Appendix
// A.2 keys off of for ZERO WIDTH JOINER, for the scripts most commonly
// seen in identifiers. Not exhaustive.
var virama = rangeTable{
	{0x094D, 0x094D}, // DEVANAGARI SIGN VIRAMA
	{0x09CD, 0x09CD}, // BENGALI SIGN VIRAMA
	{0x0A4D, 0x0A4D}, // GURMUKHI SIGN VIRAMA
	{0x0ACD, 0x0ACD}, // GUJARATI SIGN VIRAMA
	{0x0B4D, 0x0B4D}, // ORIYA SIGN VIRAMA
	{0x0BCD, 0x0BCD}, // TAMIL SIGN VIRAMA
	{0x0C4D, 0x0C4D}, // TELUGU SIGN VIRAMA
	{0x0CCD, 0x0CCD}, // KANNADA SIGN VIRAMA
	{0x0D4D, 0x0D4D}, // MALAYALAM SIGN VIRAMA
	{0x0DCA, 0x0DCA}, // SINHALA SIGN AL-LAKUNA
	{0x0E3A, 0x0E3A}, // THAI CHARACTER PHINTHU
	{0x0F84, 0x0F84}, // TIBETAN MARK HALANTA
	{0x1039, 0x103A}, // MYANMAR SIGN VIRAMA / ASAT
	{0x17D2, 0x17D2}, // KHMER SIGN COENG
}

// CheckContextJ implements RFC 5892 Appendix A.1/A.2 for the join control
// at position i of runes, independent of a Profile. Exported for callers
// building a custom profile via NewProfile who want to apply the CONTEXTJ
// rule themselves — the profile-layer validator (validateForProfile)
// calls this same check internally for every ContextJ code point it
// encounters.
func CheckContextJ(runes []rune, i int) bool {
	return checkContextJ(runes, i)
}

// checkContextJ is the unexported implementation CheckContextJ and
// validateForProfile share: allowed only where the join control at
// position i of runes is surrounded by appropriate Joining_Type context.
func checkContextJ(runes []rune, i int) bool {
	switch runes[i] {
	case 0x200D: // ZERO WIDTH JOINER: preceding character must be Virama.
		return i > 0 && virama.contains(runes[i-1])
	case 0x200C: // ZERO WIDTH NON-JOINER
		if i > 0 && virama.contains(runes[i-1]) {
			return true
		}
		return joiningContextOK(runes, i)
	default:
		return false
	}
}

// joiningContextOK approximates RFC 5892's regular-expression test for
// ZWNJ: skipping Transparent code points, the nearest character before
// the ZWNJ must be Left/Dual-joining and the nearest character after must
// be Right/Dual-joining.
func joiningContextOK(runes []rune, i int) bool {
	before := -1
	for j := i - 1; j >= 0; j-- {
		if transparent.contains(runes[j]) {
			continue
		}
		before = j
		break
	}
	after := -1
	for j := i + 1; j < len(runes); j++ {
		if transparent.contains(runes[j]) {
			continue
		}
		after = j
		break
	}
	if before < 0 || after < 0 {
		return false
	}
	return joiningDual.contains(runes[before]) && joiningDual.contains(runes[after])
}
