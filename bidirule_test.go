package precis

import (
	"errors"
	"testing"
)

func TestCheckBidiAllowsPureLTR(t *testing.T) {
	if err := checkBidi("alice42"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckBidiAllowsPureRTL(t *testing.T) {
	// HEBREW LETTERS ALEF, BET, GIMEL: R throughout, satisfies rule 3.
	s := string([]rune{0x05D0, 0x05D1, 0x05D2})
	if err := checkBidi(s); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// Any string beginning with a codepoint of Bidi_Class R and ending with a
// codepoint of Bidi_Class L is rejected under RFC 5893, per spec.md §8
// scenario 10.
func TestCheckBidiRejectsRTLStartLTREnd(t *testing.T) {
	s := string([]rune{0x05D0, 'a'})
	err := checkBidi(s)
	var dirErr *DirectionError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected *DirectionError, got %v", err)
	}
	if !errors.Is(err, ErrBadDirection) {
		t.Errorf("expected errors.Is match against ErrBadDirection")
	}
}

func TestCheckBidiRejectsFirstCharacterWrongClass(t *testing.T) {
	// DIGIT ONE has Bidi_Class EN, not L/R/AL.
	err := checkBidi("1")
	var dirErr *DirectionError
	if !errors.As(err, &dirErr) || dirErr.Rule != 1 {
		t.Fatalf("expected DirectionError{Rule:1}, got %v", err)
	}
}

// CheckBidi is the exported entry point independent of a Profile; it must
// behave identically to the internal checkBidi it wraps.
func TestExportedCheckBidi(t *testing.T) {
	if err := CheckBidi("alice42"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	s := string([]rune{0x05D0, 'a'})
	if err := CheckBidi(s); !errors.Is(err, ErrBadDirection) {
		t.Errorf("expected ErrBadDirection, got %v", err)
	}
}
