package precis

// Profile is an immutable descriptor binding a PRECIS string class to an
// ordered sequence of transformation steps (spec.md §3, "Profile"). The
// four catalogue profiles of RFC 8265/8266 (see the usernames, passwords
// and nicknames sub-packages) are each built from one; advanced callers
// may compose their own with NewProfile, mirroring the original Rust
// implementation's generic `Profile::new(...)` constructor
// (`_examples/original_source/precis-core/src/profile.rs`), which
// spec.md's distillation collapsed into four fixed catalogue entries.
type Profile struct {
	name      string
	class     ClassTag
	steps     []mapStep
	normalize mapStep
	bidi      bool
}

// Name identifies the profile, e.g. for the profile registry (registry.go).
func (p *Profile) Name() string { return p.name }

// Class returns the string class the profile validates against.
func (p *Profile) Class() StringClass { return classFor(p.class) }

// ProfileOption configures a Profile under construction by NewProfile.
type ProfileOption func(*Profile)

// WithName sets the profile's name, used as its key in the registry;
// optional.
func WithName(name string) ProfileOption {
	return func(p *Profile) { p.name = name }
}

// WithWidthMapping adds the fullwidth/halfwidth folding step (spec.md
// §4.4) to the pipeline, in the position it is added.
func WithWidthMapping() ProfileOption {
	return func(p *Profile) { p.steps = append(p.steps, widthMap) }
}

// WithCaseMapping adds unconditional case folding (spec.md §4.5).
func WithCaseMapping() ProfileOption {
	return func(p *Profile) { p.steps = append(p.steps, toLower) }
}

// WithAdditionalMapping adds a profile-specific mapping step, such as the
// space-to-ASCII, collapse, and trim steps OpaqueString and Nickname need
// (spec.md §4.10).
func WithAdditionalMapping(step func(string) string) ProfileOption {
	return func(p *Profile) { p.steps = append(p.steps, step) }
}

// WithNFC selects Unicode Normalization Form C as the profile's
// normalization step.
func WithNFC() ProfileOption {
	return func(p *Profile) { p.normalize = nfc }
}

// WithNFKC selects Unicode Normalization Form KC.
func WithNFKC() ProfileOption {
	return func(p *Profile) { p.normalize = nfkc }
}

// WithBidiRule enables the RFC 5893 §2 directionality check after
// normalization (spec.md §4.7). Directionality is opt-in per profile,
// not hardwired to a single catalogue entry — only UsernameCaseMapped and
// UsernameCasePreserved enable it (spec.md §4.10).
func WithBidiRule() ProfileOption {
	return func(p *Profile) { p.bidi = true }
}

// NewProfile builds a Profile from a string class and an ordered list of
// options. Options are applied in the order given, so the mapping steps
// (width, case and additional mappings) run in that order; the
// normalization chosen by WithNFC or WithNFKC always runs after all of
// them, wherever it appears in the list.
func NewProfile(class StringClass, opts ...ProfileOption) *Profile {
	p := &Profile{class: class.Tag()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prepare classifies every code point of s under the profile's string
// class, applying context rules, and returns s unchanged on success
// (spec.md §4.9). It rejects empty input, disallowed code points,
// unassigned code points, and context-rule violations, and — where the
// profile mandates the bidi rule — directionality violations; it does
// not apply any transformation step (that is Enforce's job).
func (p *Profile) Prepare(s string) (string, error) {
	if err := validateForProfile(p.class, s); err != nil {
		return "", err
	}
	if p.bidi {
		if err := checkBidi(s); err != nil {
			return "", err
		}
	}
	return s, nil
}

// Enforce applies the profile's ordered transformation pipeline and
// returns the canonical form. Every enforce implies a final class
// validation (and, if enabled, the bidi check); Enforce is idempotent
// (spec.md invariant 5): enforcing its own output returns the same
// string unchanged.
func (p *Profile) Enforce(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}
	for _, step := range p.steps {
		s = step(s)
	}
	if p.normalize != nil {
		s = p.normalize(s)
	}
	if s == "" {
		return "", ErrEmptyInput
	}
	if err := validateForProfile(p.class, s); err != nil {
		return "", err
	}
	if p.bidi {
		if err := checkBidi(s); err != nil {
			return "", err
		}
	}
	return s, nil
}

// Compare enforces both operands and reports whether the results are
// byte-identical. If either enforcement fails, Compare fails; a
// successful Compare returning false is not an error (spec.md §4.9).
func (p *Profile) Compare(a, b string) (bool, error) {
	ea, err := p.Enforce(a)
	if err != nil {
		return false, err
	}
	eb, err := p.Enforce(b)
	if err != nil {
		return false, err
	}
	return ea == eb, nil
}

// validateForProfile classifies every code point of s under class,
// applying the CONTEXTJ context rule (spec.md §4.8) in addition to the
// plain acceptance test StringClass.Allows performs; ContextO is always
// rejected, since RFC 8264 defines no profile in this module that permits
// it.
func validateForProfile(class ClassTag, s string) error {
	if s == "" {
		return ErrEmptyInput
	}
	runes := []rune(s)
	for i, r := range runes {
		switch cat := derive(class, r); cat {
		case PValid, SpecClassPval:
			continue
		case ContextJ:
			if !checkContextJ(runes, i) {
				T().P("class", class.String()).Debugf("codepoint %U failed CONTEXTJ context check", r)
				return &CodepointError{Cp: r, Reason: ReasonContextViolation}
			}
		case ContextO:
			T().P("class", class.String()).Debugf("codepoint %U is CONTEXTO, not permitted by any profile here", r)
			return &CodepointError{Cp: r, Reason: ReasonContextViolation}
		case Unassigned:
			T().P("class", class.String()).Debugf("codepoint %U is unassigned", r)
			return &CodepointError{Cp: r, Reason: ReasonUnassigned}
		case SpecClassDis:
			T().P("class", class.String()).Debugf("codepoint %U disallowed under %s", r, class)
			return &CodepointError{Cp: r, Reason: ReasonSpecClass}
		default: // Disallowed
			T().P("class", class.String()).Debugf("codepoint %U disallowed", r)
			return &CodepointError{Cp: r, Reason: ReasonDisallowed}
		}
	}
	return nil
}
