package precis

// derive implements the RFC 8264 §8 precedence algorithm: the category of
// cp under class is the first matching rule in this ordered list. The
// function is total (every rule-set ends in rule 16, "otherwise
// Disallowed") and deterministic — same (class, cp) always yields the
// same Category.
func derive(class ClassTag, cp rune) Category {
	// 1. Noncharacters are always disallowed.
	if noncharacter(cp) {
		return Disallowed
	}
	// 2. Explicitly enumerated exceptions (RFC 8264 Appendix A).
	if prop, ok := exceptions.lookup(cp); ok {
		return prop
	}
	// 3. BackwardCompatible table (RFC 8264 Appendix B); empty today.
	if prop, ok := backwardCompatible.lookup(cp); ok {
		return prop
	}
	// 4. Unassigned code points.
	if isUnassigned(cp) {
		return Unassigned
	}
	// 5. ASCII 0x21..0x7E.
	if ascii7(cp) {
		return PValid
	}
	// 6. Join controls (U+200C, U+200D).
	if joinControls.contains(cp) {
		return ContextJ
	}
	// 7. Old Hangul jamo.
	if oldHangulJamo.contains(cp) {
		return Disallowed
	}
	// 8. PrecisIgnorableProperties.
	if precisIgnorable.contains(cp) {
		return Disallowed
	}
	// 9. Controls.
	if isControl(cp) {
		return Disallowed
	}
	// 10. Compatibility decomposition: differs by class.
	if hasCompat(cp) {
		return classSpecific(class)
	}
	// 11. Letter/digit.
	if letterDigit(cp) {
		return PValid
	}
	// 12. OtherLetterDigits: differs by class.
	if otherLetterDigit(cp) {
		return classSpecific(class)
	}
	// 13. Space: differs by class.
	if isSpace(cp) {
		return classSpecific(class)
	}
	// 14. Symbol: differs by class.
	if isSymbol(cp) {
		return classSpecific(class)
	}
	// 15. Punctuation: differs by class.
	if isPunctuation(cp) {
		return classSpecific(class)
	}
	// 16. Otherwise.
	return Disallowed
}

// classSpecific resolves the rules whose outcome depends on the string
// class (rules 10, 12, 13, 14, 15): Freeform allows, Identifier disallows
// by class.
func classSpecific(class ClassTag) Category {
	if class == FreeformClassTag {
		return PValid
	}
	return SpecClassDis
}
