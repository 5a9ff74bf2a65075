package usernames

import (
	"errors"
	"testing"

	"github.com/npillmayer/precis"
)

func TestEnforceCaseMappedLowercases(t *testing.T) {
	got, err := EnforceCaseMapped("Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Errorf("EnforceCaseMapped(Alice) = %q, want %q", got, "alice")
	}
}

func TestEnforcePreservedKeepsCase(t *testing.T) {
	got, err := EnforcePreserved("Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Alice" {
		t.Errorf("EnforcePreserved(Alice) = %q, want %q", got, "Alice")
	}
}

func TestCompareCaseMappedFoldsCase(t *testing.T) {
	eq, err := CompareCaseMapped("Alice", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eq {
		t.Errorf("expected Alice == alice under UsernameCaseMapped")
	}
}

func TestComparePreservedDistinguishesCase(t *testing.T) {
	eq, err := ComparePreserved("Alice", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eq {
		t.Errorf("expected Alice != alice under UsernameCasePreserved")
	}
}

func TestUsernameRejectsSpace(t *testing.T) {
	if _, err := EnforceCaseMapped("al ice"); err == nil {
		t.Errorf("expected error for space in an Identifier-class username")
	}
}

func TestUsernameRejectsEmpty(t *testing.T) {
	if _, err := EnforceCaseMapped(""); !errors.Is(err, precis.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestUsernameRejectsMixedDirection(t *testing.T) {
	s := string([]rune{0x05D0, 'a'})
	if _, err := EnforceCaseMapped(s); !errors.Is(err, precis.ErrBadDirection) {
		t.Errorf("expected ErrBadDirection, got %v", err)
	}
}

func TestUsernameProfilesAreRegistered(t *testing.T) {
	// Force lazy setup.
	_ = CaseMapped()
	_ = CasePreserved()
	if _, err := precis.ByName("UsernameCaseMapped"); err != nil {
		t.Errorf("UsernameCaseMapped not registered: %v", err)
	}
	if _, err := precis.ByName("UsernameCasePreserved"); err != nil {
		t.Errorf("UsernameCasePreserved not registered: %v", err)
	}
}

func TestUsernameWidthMapping(t *testing.T) {
	got, err := EnforceCaseMapped(string(rune(0xFF21))) // FULLWIDTH LATIN CAPITAL LETTER A
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a" {
		t.Errorf("EnforceCaseMapped(fullwidth A) = %q, want %q", got, "a")
	}
}
