// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import (
	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/schema"
)

// SnippetPointer marks one end of a snippet range inside a file, by byte
// offset or by line number.
type SnippetPointer struct {
	Reference  string
	Offset     spdx.Opt[int]
	LineNumber spdx.Opt[int]
}

var snippetPointerDef = &schema.Def{
	Name: "SnippetPointer",
	New:  func() any { return new(SnippetPointer) },
	Fields: []schema.Field{
		{
			Name: "Reference", Alias: "reference", Required: true,
			Value: schema.Constrained(schema.ElementRef),
			Set:   func(e, v any) { e.(*SnippetPointer).Reference = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*SnippetPointer).Reference, true },
		},
		{
			Name: "Offset", Alias: "offset",
			Value: schema.Int(),
			Set:   func(e, v any) { e.(*SnippetPointer).Offset = optInt(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*SnippetPointer).Offset) },
		},
		{
			Name: "LineNumber", Alias: "lineNumber",
			Value: schema.Int(),
			Set:   func(e, v any) { e.(*SnippetPointer).LineNumber = optInt(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*SnippetPointer).LineNumber) },
		},
	},
}

// SnippetRange is a start/end pointer pair delimiting a snippet.
type SnippetRange struct {
	End   *SnippetPointer
	Start *SnippetPointer
}

var snippetRangeDef = &schema.Def{
	Name: "SnippetRange",
	New:  func() any { return new(SnippetRange) },
	Fields: []schema.Field{
		{
			Name: "End", Alias: "endPointer", Required: true,
			Value: schema.Nested(snippetPointerDef),
			Set:   func(e, v any) { e.(*SnippetRange).End = v.(*SnippetPointer) },
			Get: func(e any) (any, bool) {
				r := e.(*SnippetRange)
				return r.End, r.End != nil
			},
		},
		{
			Name: "Start", Alias: "startPointer", Required: true,
			Value: schema.Nested(snippetPointerDef),
			Set:   func(e, v any) { e.(*SnippetRange).Start = v.(*SnippetPointer) },
			Get: func(e any) (any, bool) {
				r := e.(*SnippetRange)
				return r.Start, r.Start != nil
			},
		},
	},
}

// Snippet describes a region of a file with its own licensing or
// provenance facts.
type Snippet struct {
	SPDXID                string
	Annotations           []Annotation
	AttributionTexts      []string
	Comment               spdx.Opt[string]
	CopyrightText         spdx.Opt[string]
	LicenseComments       spdx.Opt[string]
	LicenseConcluded      spdx.Opt[string]
	LicenseInfoInSnippets []string
	Name                  string
	Ranges                []SnippetRange
	FromFile              string
}

var snippetDef = &schema.Def{
	Name: "Snippet",
	New:  func() any { return new(Snippet) },
	Fields: []schema.Field{
		{
			Name: "SPDXID", Required: true,
			Value: schema.Constrained(schema.ElementID),
			Set:   func(e, v any) { e.(*Snippet).SPDXID = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Snippet).SPDXID, true },
		},
		{
			Name: "Annotations", Alias: "annotations",
			Value: schema.SeqOf(schema.Nested(annotationDef)),
			Set: func(e, v any) {
				s := e.(*Snippet)
				s.Annotations = entitySlice[Annotation](v)
				stampAnnotated(s.Annotations, s.SPDXID)
			},
			Get: func(e any) (any, bool) { return fromEntities(e.(*Snippet).Annotations) },
		},
		{
			Name: "AttributionTexts", Alias: "attributionTexts",
			Value: schema.SeqOf(schema.String()),
			Set:   func(e, v any) { e.(*Snippet).AttributionTexts = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*Snippet).AttributionTexts) },
		},
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Snippet).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Snippet).Comment) },
		},
		{
			Name: "CopyrightText", Alias: "copyrightText",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Snippet).CopyrightText = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Snippet).CopyrightText) },
		},
		{
			Name: "LicenseComments", Alias: "licenseComments",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Snippet).LicenseComments = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Snippet).LicenseComments) },
		},
		{
			Name: "LicenseConcluded", Alias: "licenseConcluded",
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Snippet).LicenseConcluded = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Snippet).LicenseConcluded) },
		},
		{
			Name: "LicenseInfoInSnippets", Alias: "licenseInfoInSnippets",
			Value: schema.SeqOf(schema.Constrained(schema.NonEmpty)),
			Set:   func(e, v any) { e.(*Snippet).LicenseInfoInSnippets = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*Snippet).LicenseInfoInSnippets) },
		},
		{
			Name: "Name", Alias: "name", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Snippet).Name = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Snippet).Name, true },
		},
		{
			Name: "Ranges", Alias: "ranges", Required: true,
			Value: schema.SeqMin(schema.Nested(snippetRangeDef), 1),
			Set:   func(e, v any) { e.(*Snippet).Ranges = entitySlice[SnippetRange](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*Snippet).Ranges) },
		},
		{
			Name: "FromFile", Alias: "snippetFromFile", Required: true,
			Value: schema.Constrained(schema.ElementRef),
			Set:   func(e, v any) { e.(*Snippet).FromFile = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Snippet).FromFile, true },
		},
	},
}
