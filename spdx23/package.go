// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import (
	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/schema"
)

// PackageVerificationCode is the digest over a package's file contents
// that lets independently built packages be compared.
type PackageVerificationCode struct {
	ExcludedFiles []string
	Value         string
}

var verificationCodeDef = &schema.Def{
	Name: "PackageVerificationCode",
	New:  func() any { return new(PackageVerificationCode) },
	Fields: []schema.Field{
		{
			Name: "ExcludedFiles", Alias: "packageVerificationCodeExcludedFiles",
			Value: schema.SeqOf(schema.String()),
			Set:   func(e, v any) { e.(*PackageVerificationCode).ExcludedFiles = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*PackageVerificationCode).ExcludedFiles) },
		},
		{
			Name: "Value", Alias: "packageVerificationCodeValue", Required: true,
			Value: schema.Constrained(schema.HexChecksum),
			Set:   func(e, v any) { e.(*PackageVerificationCode).Value = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*PackageVerificationCode).Value, true },
		},
	},
}

// ExternalRef points from a package at knowledge in an external
// repository: a package manager coordinate, a CPE, a PURL, and so on.
type ExternalRef struct {
	Comment  spdx.Opt[string]
	Category ReferenceCategory
	Locator  string
	RefType  string
}

var externalRefDef = &schema.Def{
	Name: "ExternalRef",
	New:  func() any { return new(ExternalRef) },
	Fields: []schema.Field{
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*ExternalRef).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*ExternalRef).Comment) },
		},
		{
			Name: "Category", Alias: "referenceCategory", Required: true,
			Value: schema.EnumOf(referenceCategories),
			Set:   func(e, v any) { e.(*ExternalRef).Category = ReferenceCategory(v.(string)) },
			Get:   func(e any) (any, bool) { return string(e.(*ExternalRef).Category), true },
		},
		{
			Name: "Locator", Alias: "referenceLocator", Required: true,
			Value: schema.Constrained(schema.Locator),
			Set:   func(e, v any) { e.(*ExternalRef).Locator = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*ExternalRef).Locator, true },
		},
		{
			Name: "RefType", Alias: "referenceType", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*ExternalRef).RefType = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*ExternalRef).RefType, true },
		},
	},
}

// Package describes a single distributable unit of software.
type Package struct {
	SPDXID               string
	Annotations          []Annotation
	AttributionTexts     []string
	BuiltDate            spdx.Opt[string]
	Checksums            []Checksum
	Comment              spdx.Opt[string]
	CopyrightText        spdx.Opt[string]
	Description          spdx.Opt[string]
	DownloadLocation     string
	ExternalRefs         []ExternalRef
	FilesAnalyzed        spdx.Opt[bool]
	HasFiles             []string
	Homepage             spdx.Opt[string]
	LicenseComments      spdx.Opt[string]
	LicenseConcluded     spdx.Opt[string]
	LicenseDeclared      spdx.Opt[string]
	LicenseInfoFromFiles []string
	Name                 string
	Originator           spdx.Opt[string]
	PackageFileName      spdx.Opt[string]
	VerificationCode     *PackageVerificationCode
	PrimaryPurpose       spdx.Opt[PackagePurpose]
	ReleaseDate          spdx.Opt[string]
	SourceInfo           spdx.Opt[string]
	Summary              spdx.Opt[string]
	Supplier             spdx.Opt[string]
	ValidUntilDate       spdx.Opt[string]
	VersionInfo          spdx.Opt[string]
}

var packageDef = &schema.Def{
	Name: "Package",
	New:  func() any { return new(Package) },
	Fields: []schema.Field{
		{
			Name: "SPDXID", Required: true,
			Value: schema.Constrained(schema.ElementID),
			Set:   func(e, v any) { e.(*Package).SPDXID = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Package).SPDXID, true },
		},
		{
			Name: "Annotations", Alias: "annotations",
			Value: schema.SeqOf(schema.Nested(annotationDef)),
			Set: func(e, v any) {
				p := e.(*Package)
				p.Annotations = entitySlice[Annotation](v)
				stampAnnotated(p.Annotations, p.SPDXID)
			},
			Get: func(e any) (any, bool) { return fromEntities(e.(*Package).Annotations) },
		},
		{
			Name: "AttributionTexts", Alias: "attributionTexts",
			Value: schema.SeqOf(schema.String()),
			Set:   func(e, v any) { e.(*Package).AttributionTexts = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*Package).AttributionTexts) },
		},
		{
			Name: "BuiltDate", Alias: "builtDate",
			Value: schema.Constrained(schema.DateTime),
			Set:   func(e, v any) { e.(*Package).BuiltDate = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).BuiltDate) },
		},
		{
			Name: "Checksums", Alias: "checksums",
			Value: schema.SeqOf(schema.Nested(checksumDef)),
			Set:   func(e, v any) { e.(*Package).Checksums = entitySlice[Checksum](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*Package).Checksums) },
		},
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).Comment) },
		},
		{
			Name: "CopyrightText", Alias: "copyrightText",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).CopyrightText = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).CopyrightText) },
		},
		{
			Name: "Description", Alias: "description",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).Description = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).Description) },
		},
		{
			Name: "DownloadLocation", Alias: "downloadLocation", Required: true,
			Value: schema.Constrained(schema.DownloadLocation),
			Set:   func(e, v any) { e.(*Package).DownloadLocation = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Package).DownloadLocation, true },
		},
		{
			Name: "ExternalRefs", Alias: "externalRefs",
			Value: schema.SeqOf(schema.Nested(externalRefDef)),
			Set:   func(e, v any) { e.(*Package).ExternalRefs = entitySlice[ExternalRef](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*Package).ExternalRefs) },
		},
		{
			Name: "FilesAnalyzed", Alias: "filesAnalyzed",
			Value: schema.Bool(),
			Set:   func(e, v any) { e.(*Package).FilesAnalyzed = optBool(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).FilesAnalyzed) },
		},
		{
			Name: "HasFiles", Alias: "hasFiles",
			Value: schema.SeqOf(schema.Constrained(schema.ElementID)),
			Set:   func(e, v any) { e.(*Package).HasFiles = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*Package).HasFiles) },
		},
		{
			Name: "Homepage", Alias: "homepage",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).Homepage = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).Homepage) },
		},
		{
			Name: "LicenseComments", Alias: "licenseComments",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).LicenseComments = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).LicenseComments) },
		},
		{
			Name: "LicenseConcluded", Alias: "licenseConcluded",
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Package).LicenseConcluded = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).LicenseConcluded) },
		},
		{
			Name: "LicenseDeclared", Alias: "licenseDeclared",
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Package).LicenseDeclared = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).LicenseDeclared) },
		},
		{
			Name: "LicenseInfoFromFiles", Alias: "licenseInfoFromFiles",
			Value: schema.SeqOf(schema.Constrained(schema.NonEmpty)),
			Set:   func(e, v any) { e.(*Package).LicenseInfoFromFiles = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*Package).LicenseInfoFromFiles) },
		},
		{
			Name: "Name", Alias: "name", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Package).Name = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Package).Name, true },
		},
		{
			Name: "Originator", Alias: "originator",
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Package).Originator = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).Originator) },
		},
		{
			Name: "PackageFileName", Alias: "packageFileName",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).PackageFileName = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).PackageFileName) },
		},
		{
			Name: "VerificationCode", Alias: "packageVerificationCode",
			Value: schema.Nested(verificationCodeDef),
			Set:   func(e, v any) { e.(*Package).VerificationCode = v.(*PackageVerificationCode) },
			Get: func(e any) (any, bool) {
				p := e.(*Package)
				return p.VerificationCode, p.VerificationCode != nil
			},
		},
		{
			Name: "PrimaryPurpose", Alias: "primaryPackagePurpose",
			Value: schema.EnumOf(packagePurposes),
			Set:   func(e, v any) { e.(*Package).PrimaryPurpose = optEnum[PackagePurpose](v) },
			Get:   func(e any) (any, bool) { return fromOptEnum(e.(*Package).PrimaryPurpose) },
		},
		{
			Name: "ReleaseDate", Alias: "releaseDate",
			Value: schema.Constrained(schema.DateTime),
			Set:   func(e, v any) { e.(*Package).ReleaseDate = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).ReleaseDate) },
		},
		{
			Name: "SourceInfo", Alias: "sourceInfo",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).SourceInfo = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).SourceInfo) },
		},
		{
			Name: "Summary", Alias: "summary",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).Summary = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).Summary) },
		},
		{
			Name: "Supplier", Alias: "supplier",
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*Package).Supplier = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).Supplier) },
		},
		{
			Name: "ValidUntilDate", Alias: "validUntilDate",
			Value: schema.Constrained(schema.DateTime),
			Set:   func(e, v any) { e.(*Package).ValidUntilDate = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).ValidUntilDate) },
		},
		{
			Name: "VersionInfo", Alias: "versionInfo",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*Package).VersionInfo = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*Package).VersionInfo) },
		},
	},
}
