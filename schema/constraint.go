// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Constraint identifies a value-level check applied to an already-typed
// string. Checks are pure and carry no state; the engines wrap a failed
// check with the failure kind and field path.
type Constraint int

const (
	// NonEmpty requires at least one character.
	NonEmpty Constraint = iota

	// DateTime requires an ISO-8601 UTC timestamp with seconds
	// precision and a trailing Z, e.g. 2019-01-29T18:30:22Z. Offsets
	// and fractional seconds are rejected.
	DateTime

	// ElementID requires the SPDXRef- prefix followed by at least one
	// character.
	ElementID

	// DocumentID requires the DocumentRef- prefix followed by at least
	// one character.
	DocumentID

	// ElementRef requires a reference to an element: an ElementID, or a
	// cross-document DocumentRef-<id>:SPDXRef-<id> form. Syntax only;
	// whether the referenced element exists is never checked.
	ElementRef

	// ElementRefOrNone is ElementRef, or the literal NOASSERTION or
	// NONE.
	ElementRefOrNone

	// HexChecksum requires one or more hexadecimal digits. Digest
	// length is deliberately not checked against the algorithm.
	HexChecksum

	// Creator requires the "Person: ", "Organization: ", or "Tool: "
	// prefix with a non-blank remainder.
	Creator

	// Locator requires a non-empty string with no whitespace.
	Locator

	// URI is Locator plus a scheme separator. Kept deliberately loose;
	// placeholder namespaces such as
	// https://[CreatorWebsite]/[DocumentName]-[UUID] must pass.
	URI

	// DownloadLocation is URI, or the literal NOASSERTION or NONE.
	DownloadLocation
)

const dateTimeLayout = "2006-01-02T15:04:05Z"

const (
	noAssertion = "NOASSERTION"
	none        = "NONE"
)

var creatorPrefixes = []string{"Person: ", "Organization: ", "Tool: "}

// Check reports whether s satisfies c. The returned error is a bare
// reason suitable for embedding in a structured failure.
func Check(c Constraint, s string) error {
	switch c {
	case NonEmpty:
		if s == "" {
			return errors.New("must not be empty")
		}
	case DateTime:
		// Parse alone admits fractional seconds, so pin the length too.
		if len(s) != len(dateTimeLayout) {
			return fmt.Errorf("must be a UTC timestamp like %s", dateTimeLayout)
		}
		if _, err := time.Parse(dateTimeLayout, s); err != nil {
			return fmt.Errorf("must be a UTC timestamp like %s", dateTimeLayout)
		}
	case ElementID:
		return checkPrefixed(s, "SPDXRef-")
	case DocumentID:
		return checkPrefixed(s, "DocumentRef-")
	case ElementRef:
		return checkElementRef(s)
	case ElementRefOrNone:
		if s == noAssertion || s == none {
			return nil
		}
		if err := checkElementRef(s); err != nil {
			return fmt.Errorf("%v, %s, or %s", err, noAssertion, none)
		}
	case HexChecksum:
		if s == "" {
			return errors.New("must not be empty")
		}
		for _, r := range s {
			if !isHexDigit(r) {
				return errors.New("must contain only hexadecimal digits")
			}
		}
	case Creator:
		for _, prefix := range creatorPrefixes {
			if rest, ok := strings.CutPrefix(s, prefix); ok {
				if strings.TrimSpace(rest) == "" {
					return fmt.Errorf("nothing follows %q", strings.TrimSpace(prefix))
				}
				return nil
			}
		}
		return errors.New(`must start with "Person: ", "Organization: ", or "Tool: "`)
	case Locator:
		return checkLocator(s)
	case URI:
		return checkURI(s)
	case DownloadLocation:
		if s == noAssertion || s == none {
			return nil
		}
		if err := checkURI(s); err != nil {
			return fmt.Errorf("%v, %s, or %s", err, noAssertion, none)
		}
	default:
		panic(fmt.Sprintf("schema: unknown constraint %d", c))
	}
	return nil
}

func checkPrefixed(s, prefix string) error {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok || rest == "" {
		return fmt.Errorf("must start with %q followed by an identifier", prefix)
	}
	return nil
}

func checkElementRef(s string) error {
	if rest, ok := strings.CutPrefix(s, "DocumentRef-"); ok {
		docID, ref, found := strings.Cut(rest, ":")
		if !found || docID == "" || checkPrefixed(ref, "SPDXRef-") != nil {
			return errors.New(`cross-document references must look like "DocumentRef-<id>:SPDXRef-<id>"`)
		}
		return nil
	}
	if err := checkPrefixed(s, "SPDXRef-"); err != nil {
		return errors.New(`must be an "SPDXRef-" identifier or a "DocumentRef-<id>:SPDXRef-<id>" reference`)
	}
	return nil
}

func checkLocator(s string) error {
	if s == "" {
		return errors.New("must not be empty")
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return errors.New("must not contain whitespace")
		}
	}
	return nil
}

func checkURI(s string) error {
	if err := checkLocator(s); err != nil {
		return err
	}
	if !strings.Contains(s, ":") {
		return errors.New("must contain a URI scheme")
	}
	return nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return true
	}
	return false
}
