// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import (
	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/schema"
)

// Checksum binds content to a digest under a named algorithm.
type Checksum struct {
	Algorithm ChecksumAlgorithm
	Value     string
}

var checksumDef = &schema.Def{
	Name: "Checksum",
	New:  func() any { return new(Checksum) },
	Fields: []schema.Field{
		{
			Name: "Algorithm", Alias: "algorithm", Required: true,
			Value: schema.EnumOf(checksumAlgorithms),
			Set:   func(e, v any) { e.(*Checksum).Algorithm = ChecksumAlgorithm(v.(string)) },
			Get:   func(e any) (any, bool) { return string(e.(*Checksum).Algorithm), true },
		},
		{
			Name: "Value", Alias: "checksumValue", Required: true,
			Value: schema.Constrained(schema.HexChecksum),
			Set:   func(e, v any) { e.(*Checksum).Value = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*Checksum).Value, true },
		},
	},
}

// File describes a single file listed in the document.
type File struct {
	SPDXID             string
	Annotations        []Annotation
	ArtifactOfs        []map[string]any
	AttributionTexts   []string
	Checksums          []Checksum
	Comment            spdx.Opt[string]
	CopyrightText      spdx.Opt[string]
	FileContributors   []string
	FileDependencies   []string
	FileName           string
	FileTypes          []FileType
	LicenseComments    spdx.Opt[string]
	LicenseConcluded   spdx.Opt[string]
	LicenseInfoInFiles []string
	NoticeText         spdx.Opt[string]
}

var fileDef = &schema.Def{
	Name: "File",
	New:  func() any { return new(File) },
	Fields: []schema.Field{
		{
			Name: "SPDXID", Required: true,
			Value: schema.Constrained(schema.ElementID),
			Set:   func(e, v any) { e.(*File).SPDXID = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*File).SPDXID, true },
		},
		{
			Name: "Annotations", Alias: "annotations",
			Value: schema.SeqOf(schema.Nested(annotationDef)),
			Set: func(e, v any) {
				f := e.(*File)
				f.Annotations = entitySlice[Annotation](v)
				stampAnnotated(f.Annotations, f.SPDXID)
			},
			Get: func(e any) (any, bool) { return fromEntities(e.(*File).Annotations) },
		},
		{
			Name: "ArtifactOfs", Alias: "artifactOfs",
			Value: schema.SeqOf(schema.AnyObject()),
			Set:   func(e, v any) { e.(*File).ArtifactOfs = objSlice(v) },
			Get:   func(e any) (any, bool) { return fromObjs(e.(*File).ArtifactOfs) },
		},
		{
			Name: "AttributionTexts", Alias: "attributionTexts",
			Value: schema.SeqOf(schema.String()),
			Set:   func(e, v any) { e.(*File).AttributionTexts = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*File).AttributionTexts) },
		},
		{
			Name: "Checksums", Alias: "checksums", Required: true,
			Value: schema.SeqMin(schema.Nested(checksumDef), 1),
			Set:   func(e, v any) { e.(*File).Checksums = entitySlice[Checksum](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*File).Checksums) },
		},
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*File).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*File).Comment) },
		},
		{
			Name: "CopyrightText", Alias: "copyrightText",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*File).CopyrightText = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*File).CopyrightText) },
		},
		{
			Name: "FileContributors", Alias: "fileContributors",
			Value: schema.SeqOf(schema.String()),
			Set:   func(e, v any) { e.(*File).FileContributors = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*File).FileContributors) },
		},
		{
			Name: "FileDependencies", Alias: "fileDependencies",
			Value: schema.SeqOf(schema.Constrained(schema.ElementID)),
			Set:   func(e, v any) { e.(*File).FileDependencies = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*File).FileDependencies) },
		},
		{
			Name: "FileName", Alias: "fileName", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*File).FileName = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*File).FileName, true },
		},
		{
			Name: "FileTypes", Alias: "fileTypes",
			Value: schema.SeqOf(schema.EnumOf(fileTypes)),
			Set:   func(e, v any) { e.(*File).FileTypes = enumSlice[FileType](v) },
			Get:   func(e any) (any, bool) { return fromEnums(e.(*File).FileTypes) },
		},
		{
			Name: "LicenseComments", Alias: "licenseComments",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*File).LicenseComments = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*File).LicenseComments) },
		},
		{
			Name: "LicenseConcluded", Alias: "licenseConcluded",
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*File).LicenseConcluded = spdx.Some(v.(string)) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*File).LicenseConcluded) },
		},
		{
			Name: "LicenseInfoInFiles", Alias: "licenseInfoInFiles",
			Value: schema.SeqOf(schema.Constrained(schema.NonEmpty)),
			Set:   func(e, v any) { e.(*File).LicenseInfoInFiles = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*File).LicenseInfoInFiles) },
		},
		{
			Name: "NoticeText", Alias: "noticeText",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*File).NoticeText = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*File).NoticeText) },
		},
	},
}
