/*
Package precis prepares, enforces and compares internationalized strings
according to the PRECIS framework.

Description

PRECIS — Preparation, Enforcement, and Comparison of Internationalized
Strings — is defined by RFC 8264 and specialized by RFC 8265 (usernames and
passwords) and RFC 8266 (nicknames). The framework exists because comparing
Unicode strings byte-for-byte is usually not what users expect: two visually
identical strings can be encoded differently, contain invisible formatting
characters, or mix scripts in ways that enable spoofing. PRECIS defines a
small number of profiles, each pinning down exactly which code points are
allowed and how a string is canonicalized before comparison.

At the core of every profile sits a code point classifier (see derive.go and
category.go) that assigns each Unicode code point one of seven "derived
properties" following the precedence rules of RFC 8264 §8. Two "string
classes" are built on top of the classifier: Identifier, a strict class
meant for machine-facing names, and Freeform, a permissive superset meant
for human-facing text. Profiles combine a string class with an ordered
sequence of transformations — width mapping, case folding, Unicode
normalization, and (for identifiers) a directionality check — to arrive at
canonical form.

Contents

Base package precis provides the classifier, the two string classes, the
transformation primitives (width mapping, case folding, normalization, the
bidi rule) and the generic Profile pipeline that combines them. It is in no
way mandatory to build a profile through NewProfile: the four catalogue
profiles required by RFC 8265/8266 live in their own sub-packages —
usernames, passwords and nicknames — each a thin, RFC-specific composition
of the primitives exposed here.

Every profile exposes three operations:

  Prepare(s)  — validate s against the profile's string class, unchanged
  Enforce(s)  — apply the profile's canonicalization pipeline
  Compare(a,b) — Enforce both operands and compare the results

Classification is total: every scalar value in 0x0000..0x10FFFF (excluding
surrogates) resolves to exactly one of PValid, SpecClassPval, ContextJ,
ContextO, Disallowed, SpecClassDis or Unassigned. Tables backing this
classification are read-only package-level data, built once at package
initialization, and are safe for concurrent use.

BSD License

Copyright (c) 2017–24, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package precis

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer, in the same style as the teacher's own
// per-package TC()/tracer() accessors. validateForProfile (profile.go)
// traces every codepoint rejection at Debug level, since a rejected
// identifier or password is ordinary classification detail worth seeing
// in a trace, not a bug worth escalating.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
