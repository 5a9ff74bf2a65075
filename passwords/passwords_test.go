package passwords

import (
	"errors"
	"testing"

	"github.com/npillmayer/precis"
)

func TestEnforcePreservesCase(t *testing.T) {
	got, err := Enforce("CorrectHorseBatteryStaple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "CorrectHorseBatteryStaple" {
		t.Errorf("Enforce(...) = %q, want unchanged case", got)
	}
}

func TestEnforceMapsSpacesToASCII(t *testing.T) {
	in := "correct" + string(rune(0x00A0)) + "horse" // NO-BREAK SPACE
	got, err := Enforce(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "correct horse" {
		t.Errorf("Enforce(%q) = %q, want %q", in, got, "correct horse")
	}
}

func TestEnforceRejectsEmpty(t *testing.T) {
	if _, err := Enforce(""); !errors.Is(err, precis.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCompareOpaqueString(t *testing.T) {
	eq, err := Compare("hunter2", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eq {
		t.Errorf("expected identical passwords to compare equal")
	}
	eq2, err := Compare("hunter2", "hunter3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eq2 {
		t.Errorf("expected differing passwords to compare unequal")
	}
}

func TestOpaqueStringAllowsPunctuationAndSymbols(t *testing.T) {
	if _, err := Enforce("p@ssw0rd!#$"); err != nil {
		t.Errorf("unexpected error for punctuation/symbols: %v", err)
	}
}

func TestOpaqueStringRegistered(t *testing.T) {
	_ = OpaqueString()
	if _, err := precis.ByName("OpaqueString"); err != nil {
		t.Errorf("OpaqueString not registered: %v", err)
	}
}
