// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import "github.com/dacolabs/spdx/schema"

// Annotation is a comment attached to an element by a person, an
// organization, or a tool.
type Annotation struct {
	AnnotationDate string
	AnnotationType AnnotationType
	Annotator      string
	Comment        string

	// Annotated is the SPDXID of the element the annotation is attached
	// to. It never appears on the JSON wire: placement inside a
	// document, package, file, or snippet implies it, and parse stamps
	// it from the containing element.
	Annotated string
}

var annotationDef = &schema.Def{
	Name: "Annotation",
	New:  func() any { return new(Annotation) },
	Fields: []schema.Field{
		{
			Name: "AnnotationDate", Alias: "annotationDate", Required: true,
			Value: schema.Constrained(schema.DateTime),
			Set:   func(e, v any) { e.(*Annotation).AnnotationDate = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Annotation).AnnotationDate, true },
		},
		{
			Name: "AnnotationType", Alias: "annotationType", Required: true,
			Value: schema.EnumOf(annotationTypes),
			Set:   func(e, v any) { e.(*Annotation).AnnotationType = AnnotationType(v.(string)) },
			Get:   func(e any) (any, bool) { return string(e.(*Annotation).AnnotationType), true },
		},
		{
			Name: "Annotator", Alias: "annotator", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Annotation).Annotator = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Annotation).Annotator, true },
		},
		{
			Name: "Comment", Alias: "comment", Required: true,
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Annotation).Comment = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Annotation).Comment, true },
		},
	},
}

// stampAnnotated records the containing element's SPDXID on each
// annotation. Called by the Set closures of every annotations field; the
// container's SPDXID is always declared before its annotations, so it has
// been parsed by the time this runs.
func stampAnnotated(annotations []Annotation, spdxID string) {
	for i := range annotations {
		annotations[i].Annotated = spdxID
	}
}
