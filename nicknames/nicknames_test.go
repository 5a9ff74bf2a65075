package nicknames

import (
	"errors"
	"testing"

	"github.com/npillmayer/precis"
)

// Nickname.enforce("   Guybrush     Threepwood  ") =>
// "Guybrush Threepwood", per spec.md §8.
func TestEnforceCollapsesAndTrims(t *testing.T) {
	got, err := Enforce("   Guybrush     Threepwood  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Guybrush Threepwood" {
		t.Errorf("Enforce(...) = %q, want %q", got, "Guybrush Threepwood")
	}
}

func TestEnforceRejectsAllSpaces(t *testing.T) {
	if _, err := Enforce("     "); !errors.Is(err, precis.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput after trimming to nothing, got %v", err)
	}
}

func TestEnforcePreservesCase(t *testing.T) {
	got, err := Enforce("Guybrush")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Guybrush" {
		t.Errorf("Enforce(Guybrush) = %q, want unchanged case", got)
	}
}

// RFC 8266 §2.4: Compare additionally case-folds, so differently-cased
// nicknames still compare equal despite Enforce not folding case.
func TestCompareFoldsCaseDespiteEnforceNot(t *testing.T) {
	eq, err := Compare("Guybrush Threepwood", "guybrush threepwood")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eq {
		t.Errorf("expected case-insensitive Compare per RFC 8266 section 2.4")
	}
}

func TestCompareDistinguishesDifferentNicknames(t *testing.T) {
	eq, err := Compare("Guybrush", "Elaine")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eq {
		t.Errorf("expected different nicknames to compare unequal")
	}
}

func TestNicknameRegistered(t *testing.T) {
	_ = Nickname()
	if _, err := precis.ByName("Nickname"); err != nil {
		t.Errorf("Nickname not registered: %v", err)
	}
}
