// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import (
	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/schema"
)

// CrossRef points at external license information for an extracted
// license.
type CrossRef struct {
	IsLive        spdx.Opt[bool]
	IsValid       spdx.Opt[bool]
	IsWayBackLink spdx.Opt[bool]
	Match         spdx.Opt[string]
	Order         spdx.Opt[int]
	Timestamp     spdx.Opt[string]
	URL           string
}

var crossRefDef = &schema.Def{
	Name: "CrossRef",
	New:  func() any { return new(CrossRef) },
	Fields: []schema.Field{
		{
			Name: "IsLive", Alias: "isLive",
			Value: schema.Bool(),
			Set:   func(e, v any) { e.(*CrossRef).IsLive = optBool(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*CrossRef).IsLive) },
		},
		{
			Name: "IsValid", Alias: "isValid",
			Value: schema.Bool(),
			Set:   func(e, v any) { e.(*CrossRef).IsValid = optBool(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*CrossRef).IsValid) },
		},
		{
			Name: "IsWayBackLink", Alias: "isWayBackLink",
			Value: schema.Bool(),
			Set:   func(e, v any) { e.(*CrossRef).IsWayBackLink = optBool(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*CrossRef).IsWayBackLink) },
		},
		{
			Name: "Match", Alias: "match",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*CrossRef).Match = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*CrossRef).Match) },
		},
		{
			Name: "Order", Alias: "order",
			Value: schema.Int(),
			Set:   func(e, v any) { e.(*CrossRef).Order = optInt(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*CrossRef).Order) },
		},
		{
			Name: "Timestamp", Alias: "timestamp",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*CrossRef).Timestamp = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*CrossRef).Timestamp) },
		},
		{
			Name: "URL", Alias: "url", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*CrossRef).URL = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*CrossRef).URL, true },
		},
	},
}

// ExtractedLicensingInfo carries the text of a license found in the
// analyzed material that is not on the SPDX license list.
type ExtractedLicensingInfo struct {
	Comment       spdx.Opt[string]
	CrossRefs     []CrossRef
	ExtractedText string
	LicenseID     string
	Name          spdx.Opt[string]
	SeeAlsos      []string
}

var extractedLicensingInfoDef = &schema.Def{
	Name: "ExtractedLicensingInfo",
	New:  func() any { return new(ExtractedLicensingInfo) },
	Fields: []schema.Field{
		{
			Name: "Comment", Alias: "comment",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*ExtractedLicensingInfo).Comment = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*ExtractedLicensingInfo).Comment) },
		},
		{
			Name: "CrossRefs", Alias: "crossRefs",
			Value: schema.SeqOf(schema.Nested(crossRefDef)),
			Set:   func(e, v any) { e.(*ExtractedLicensingInfo).CrossRefs = entitySlice[CrossRef](v) },
			Get:   func(e any) (any, bool) { return fromEntities(e.(*ExtractedLicensingInfo).CrossRefs) },
		},
		{
			Name: "ExtractedText", Alias: "extractedText", Required: true,
			Value: schema.String(),
			Set:   func(e, v any) { e.(*ExtractedLicensingInfo).ExtractedText = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*ExtractedLicensingInfo).ExtractedText, true },
		},
		{
			Name: "LicenseID", Alias: "licenseId", Required: true,
			Value: schema.Constrained(schema.NonEmpty),
			Set:   func(e, v any) { e.(*ExtractedLicensingInfo).LicenseID = v.(string) },
			Get:   func(e any) (any, bool) { return e.(*ExtractedLicensingInfo).LicenseID, true },
		},
		{
			Name: "Name", Alias: "name",
			Value: schema.String(),
			Set:   func(e, v any) { e.(*ExtractedLicensingInfo).Name = optString(v) },
			Get:   func(e any) (any, bool) { return fromOpt(e.(*ExtractedLicensingInfo).Name) },
		},
		{
			Name: "SeeAlsos", Alias: "seeAlsos",
			Value: schema.SeqOf(schema.Constrained(schema.NonEmpty)),
			Set:   func(e, v any) { e.(*ExtractedLicensingInfo).SeeAlsos = strSlice(v) },
			Get:   func(e any) (any, bool) { return fromStrs(e.(*ExtractedLicensingInfo).SeeAlsos) },
		},
	},
}
