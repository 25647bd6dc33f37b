// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "strings"

// Enum is a named closed set of string members with their original wire
// casing. Lookup is exact: no normalization, no synonyms, and unknown
// values are never passed through. Each schema version owns its own sets,
// so versions can add or remove members independently.
type Enum struct {
	name    string
	ordered []string
	members map[string]struct{}
}

// NewEnum builds an enumeration from its members in registration order.
func NewEnum(name string, members ...string) *Enum {
	e := &Enum{
		name:    name,
		ordered: members,
		members: make(map[string]struct{}, len(members)),
	}
	for _, m := range members {
		e.members[m] = struct{}{}
	}
	return e
}

// Name returns the enumeration's name, e.g. "ChecksumAlgorithm".
func (e *Enum) Name() string { return e.name }

// Members returns the member strings in registration order.
func (e *Enum) Members() []string {
	out := make([]string, len(e.ordered))
	copy(out, e.ordered)
	return out
}

// Resolve returns the registered member equal to raw, or false when raw
// is not a member.
func (e *Enum) Resolve(raw string) (string, bool) {
	if _, ok := e.members[raw]; ok {
		return raw, true
	}
	return "", false
}

func (e *Enum) list() string { return strings.Join(e.ordered, ", ") }
