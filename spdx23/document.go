// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import (
	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/schema"
)

// CreationInfo records who produced the document and when.
type CreationInfo struct {
	Comment            spdx.Opt[string]
	Created            string
	Creators           []string
	LicenseListVersion spdx.Opt[string]
}

var creationInfoDef = &schema.Def{
	Name: "CreationInfo",
	New:  func() any { return new(CreationInfo) },
	Fields: []schema.Field{
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*CreationInfo).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*CreationInfo).Comment) },
		},
		{
			Name: "Created", Alias: "created", Required: true,
			Value: schema.Constrained(schema.DateTime),
			Set:   func(e, v any) { e.(*CreationInfo).Created = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*CreationInfo).Created, true },
		},
		{
			Name: "Creators", Alias: "creators", Required: true,
			Value: schema.SeqMin(schema.Constrained(schema.Creator), 1),
			Set:   func(e, v any) { e.(*CreationInfo).Creators = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*CreationInfo).Creators) },
		},
		{
			Name: "LicenseListVersion", Alias: "licenseListVersion",
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*CreationInfo).LicenseListVersion = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*CreationInfo).LicenseListVersion) },
		},
	},
}

// ExternalDocumentRef makes another SPDX document addressable from this
// one under a DocumentRef- identifier.
type ExternalDocumentRef struct {
	Checksum   *Checksum
	DocumentID string
	URI        string
}

var externalDocumentRefDef = &schema.Def{
	Name: "ExternalDocumentRef",
	New:  func() any { return new(ExternalDocumentRef) },
	Fields: []schema.Field{
		{
			Name: "Checksum", Alias: "checksum", Required: true,
			Value: schema.Nested(checksumDef),
			Set:   func(e, v any) { e.(*ExternalDocumentRef).Checksum = v.(*Checksum) },
			Get: func(e any) (any, bool) {
				r := e.(*ExternalDocumentRef)
				return r.Checksum, r.Checksum != nil
			},
		},
		{
			Name: "DocumentID", Alias: "externalDocumentId", Required: true,
			Value: schema.Constrained(schema.DocumentID),
			Set:   func(e, v any) { e.(*ExternalDocumentRef).DocumentID = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*ExternalDocumentRef).DocumentID, true },
		},
		{
			Name: "URI", Alias: "spdxDocument", Required: true,
			Value: schema.Constrained(schema.URI),
			Set:   func(e, v any) { e.(*ExternalDocumentRef).URI = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*ExternalDocumentRef).URI, true },
		},
	},
}

// Reviewed is the deprecated 1.x review block, still accepted and
// re-emitted for fidelity with older producers.
type Reviewed struct {
	Comment    spdx.Opt[string]
	ReviewDate string
	Reviewer   spdx.Opt[string]
}

var reviewedDef = &schema.Def{
	Name: "Reviewed",
	New:  func() any { return new(Reviewed) },
	Fields: []schema.Field{
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Reviewed).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Reviewed).Comment) },
		},
		{
			Name: "ReviewDate", Alias: "reviewDate", Required: true,
			Value: schema.Constrained(schema.DateTime),
			Set:   func(e, v any) { e.(*Reviewed).ReviewDate = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Reviewed).ReviewDate, true },
		},
		{
			Name: "Reviewer", Alias: "reviewer",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Reviewed).Reviewer = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Reviewed).Reviewer) },
		},
	},
}

// Document is the root of an SPDX 2.3 document.
type Document struct {
	SPDXID                  string
	Annotations             []Annotation
	Comment                 spdx.Opt[string]
	CreationInfo            *CreationInfo
	DataLicense             string
	ExternalDocumentRefs    []ExternalDocumentRef
	ExtractedLicensingInfos []ExtractedLicensingInfo
	Name                    string
	Revieweds               []Reviewed
	SPDXVersion             string
	DocumentNamespace       spdx.Opt[string]
	DocumentDescribes       []string
	Packages                []Package
	Files                   []File
	Snippets                []Snippet
	Relationships           []Relationship
}

var documentDef = &schema.Def{
	Name: "Document",
	New:  func() any { return new(Document) },
	Fields: []schema.Field{
		{
			Name: "SPDXID", Required: true,
			Value: schema.Constrained(schema.ElementID),
			Set:   func(e, v any) { e.(*Document).SPDXID = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Document).SPDXID, true },
		},
		{
			Name: "Annotations", Alias: "annotations",
			Value: schema.SeqOf(schema.Nested(annotationDef)),
			Set: func(e, v any) {
				d := e.(*Document)
				d.Annotations = entitySlice[Annotation](v)
				stampAnnotated(d.Annotations, d.SPDXID)
			},
			Get: func(e any) (any, bool) { return fromEntities(e.(*Document).Annotations) },
		},
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Document).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Document).Comment) },
		},
		{
			Name: "CreationInfo", Alias: "creationInfo", Required: true,
			Value: schema.Nested(creationInfoDef),
			Set:   func(e, v any) { e.(*Document).CreationInfo = v.(*CreationInfo) },
			Get: func(e any) (any, bool) {
				d := e.(*Document)
				return d.CreationInfo, d.CreationInfo != nil
			},
		},
		{
			Name: "DataLicense", Alias: "dataLicense", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Document).DataLicense = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Document).DataLicense, true },
		},
		{
			Name: "ExternalDocumentRefs", Alias: "externalDocumentRefs",
			Value: schema.SeqOf(schema.Nested(externalDocumentRefDef)),
			Set: func(e, v any) {
				e.(*Document).ExternalDocumentRefs = entitySlice[ExternalDocumentRef](v)
			},
			Get: func(e any) (any, bool) { return fromEntities(e.(*Document).ExternalDocumentRefs) },
		},
		{
			Name: "ExtractedLicensingInfos", Alias: "hasExtractedLicensingInfos",
			Value: schema.SeqOf(schema.Nested(extractedLicensingInfoDef)),
			Set: func(e, v any) {
				e.(*Document).ExtractedLicensingInfos = entitySlice[ExtractedLicensingInfo](v)
			},
			Get: func(e any) (any, bool) { return fromEntities(e.(*Document).ExtractedLicensingInfos) },
		},
		{
			Name: "Name", Alias: "name", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Document).Name = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Document).Name, true },
		},
		{
			Name: "Revieweds", Alias: "revieweds",
			Value: schema.SeqOf(schema.Nested(reviewedDef)),
			Set:   func(e, v any) { e.(*Document).Revieweds = entitySlice[Reviewed](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*Document).Revieweds) },
		},
		{
			Name: "SPDXVersion", Alias: "spdxVersion", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Document).SPDXVersion = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Document).SPDXVersion, true },
		},
		{
			Name: "DocumentNamespace", Alias: "documentNamespace",
			Value: schema.Constrained(schema.URI),
			Set:   func(e, v any) { e.(*Document).DocumentNamespace = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Document).DocumentNamespace) },
		},
		{
			Name: "DocumentDescribes", Alias: "documentDescribes",
			Value: schema.SeqOf(schema.Constrained(schema.ElementID)),
			Set:   func(e, v any) { e.(*Document).DocumentDescribes = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*Document).DocumentDescribes) },
		},
		{
			Name: "Packages", Alias: "packages",
			Value: schema.SeqOf(schema.Nested(packageDef)),
			Set:   func(e, v any) { e.(*Document).Packages = entitySlice[Package](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*Document).Packages) },
		},
		{
			Name: "Files", Alias: "files",
			Value: schema.SeqOf(schema.Nested(fileDef)),
			Set:   func(e, v any) { e.(*Document).Files = entitySlice[File](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*Document).Files) },
		},
		{
			Name: "Snippets", Alias: "snippets",
			Value: schema.SeqOf(schema.Nested(snippetDef)),
			Set:   func(e, v any) { e.(*Document).Snippets = entitySlice[Snippet](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*Document).Snippets) },
		},
		{
			Name: "Relationships", Alias: "relationships",
			Value: schema.SeqOf(schema.Nested(relationshipDef)),
			Set:   func(e, v any) { e.(*Document).Relationships = entitySlice[Relationship](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*Document).Relationships) },
		},
	},
}
