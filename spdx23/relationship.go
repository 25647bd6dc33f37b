// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import (
	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/schema"
)

// Relationship states how one element relates to another. References are
// weak: both ends are checked for syntax, never for existence, so
// relationships may point at elements defined in other documents.
type Relationship struct {
	Element string
	Comment spdx.Opt[string]
	Related string
	Type    RelationshipType
}

var relationshipDef = &schema.Def{
	Name: "Relationship",
	New:  func() any { return new(Relationship) },
	Fields: []schema.Field{
		{
			Name: "Element", Alias: "spdxElementId", Required: true,
			Value: schema.Constrained(schema.ElementRef),
			Set:   func(e, v any) { e.(*Relationship).Element = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Relationship).Element, true },
		},
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Relationship).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Relationship).Comment) },
		},
		{
			Name: "Related", Alias: "relatedSpdxElement", Required: true,
			Value: schema.Constrained(schema.ElementRefOrNone),
			Set:   func(e, v any) { e.(*Relationship).Related = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Relationship).Related, true },
		},
		{
			Name: "Type", Alias: "relationshipType", Required: true,
			Value: schema.EnumOf(relationshipTypes),
			Set:   func(e, v any) { e.(*Relationship).Type = RelationshipType(v.(string)) },
			Get:   func(e any) (any, bool) { return string(e.(*Relationship).Type), true },
		},
	},
}
