// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import (
	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/schema"
	"github.com/dacolabs/spdx/validation"
)

// Constructors take an entity's required fields, validate them, and
// return a value with every optional field unset. Optional fields are
// assigned afterwards on the returned value; Document.Validate re-checks
// the whole graph after such mutation.

// DocumentSPDXID is the conventional identifier of the document element
// itself.
const DocumentSPDXID = "SPDXRef-DOCUMENT"

// NewDocument builds a minimal document named name. The identifier
// defaults to DocumentSPDXID, the version to Version, and the data
// license to CC0-1.0, all overridable on the returned value.
func NewDocument(name string, info CreationInfo) (*Document, error) {
	d := &Document{
		SPDXID:       DocumentSPDXID,
		CreationInfo: &info,
		DataLicense:  "CC0-1.0",
		Name:         name,
		SPDXVersion:  Version,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewCreationInfo builds creation info from a timestamp and at least one
// creator in "Person: ", "Organization: ", or "Tool: " form.
func NewCreationInfo(created string, creators ...string) (CreationInfo, error) {
	ci := CreationInfo{Created: created, Creators: creators}
	if err := schema.Validate(creationInfoDef, &ci); err != nil {
		return CreationInfo{}, err
	}
	return ci, nil
}

// NewChecksum builds a checksum from an algorithm and a hex digest.
func NewChecksum(algorithm ChecksumAlgorithm, value string) (Checksum, error) {
	c := Checksum{Algorithm: algorithm, Value: value}
	if err := schema.Validate(checksumDef, &c); err != nil {
		return Checksum{}, err
	}
	return c, nil
}

// NewExternalDocumentRef builds a reference to another SPDX document.
func NewExternalDocumentRef(documentID, uri string, checksum Checksum) (ExternalDocumentRef, error) {
	r := ExternalDocumentRef{Checksum: &checksum, DocumentID: documentID, URI: uri}
	if err := schema.Validate(externalDocumentRefDef, &r); err != nil {
		return ExternalDocumentRef{}, err
	}
	return r, nil
}

// NewAnnotation builds an annotation attached to the element identified
// by annotated.
func NewAnnotation(annotated, date string, annotationType AnnotationType, annotator, comment string) (Annotation, error) {
	a := Annotation{
		AnnotationDate: date,
		AnnotationType: annotationType,
		Annotator:      annotator,
		Comment:        comment,
		Annotated:      annotated,
	}
	if err := schema.Check(schema.ElementRef, annotated); err != nil {
		return Annotation{}, &validation.Error{
			Kind:   validation.ErrConstraintViolation,
			Path:   "annotated",
			Value:  annotated,
			Detail: err.Error(),
		}
	}
	if err := schema.Validate(annotationDef, &a); err != nil {
		return Annotation{}, err
	}
	return a, nil
}

// NewCrossRef builds a license cross reference for url.
func NewCrossRef(url string) (CrossRef, error) {
	c := CrossRef{URL: url}
	if err := schema.Validate(crossRefDef, &c); err != nil {
		return CrossRef{}, err
	}
	return c, nil
}

// NewExtractedLicensingInfo builds an extracted license entry.
func NewExtractedLicensingInfo(licenseID, extractedText string) (ExtractedLicensingInfo, error) {
	x := ExtractedLicensingInfo{LicenseID: licenseID, ExtractedText: extractedText}
	if err := schema.Validate(extractedLicensingInfoDef, &x); err != nil {
		return ExtractedLicensingInfo{}, err
	}
	return x, nil
}

// NewReviewed builds an entry of the deprecated review block.
func NewReviewed(reviewDate string) (Reviewed, error) {
	r := Reviewed{ReviewDate: reviewDate}
	if err := schema.Validate(reviewedDef, &r); err != nil {
		return Reviewed{}, err
	}
	return r, nil
}

// NewExternalRef builds an external reference for a package.
func NewExternalRef(category ReferenceCategory, refType, locator string) (ExternalRef, error) {
	r := ExternalRef{Category: category, RefType: refType, Locator: locator}
	if err := schema.Validate(externalRefDef, &r); err != nil {
		return ExternalRef{}, err
	}
	return r, nil
}

// NewVerificationCode builds a package verification code.
func NewVerificationCode(value string, excludedFiles ...string) (PackageVerificationCode, error) {
	c := PackageVerificationCode{Value: value, ExcludedFiles: excludedFiles}
	if err := schema.Validate(verificationCodeDef, &c); err != nil {
		return PackageVerificationCode{}, err
	}
	return c, nil
}

// NewPackage builds a package from its identifier, name, and download
// location (a URI, NOASSERTION, or NONE).
func NewPackage(spdxID, name, downloadLocation string) (Package, error) {
	p := Package{SPDXID: spdxID, Name: name, DownloadLocation: downloadLocation}
	if err := schema.Validate(packageDef, &p); err != nil {
		return Package{}, err
	}
	return p, nil
}

// NewFile builds a file entry with at least one checksum.
func NewFile(spdxID, fileName string, checksums ...Checksum) (File, error) {
	f := File{SPDXID: spdxID, FileName: fileName, Checksums: checksums}
	if err := schema.Validate(fileDef, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// NewByteRange builds a snippet range delimited by byte offsets in the
// file identified by reference.
func NewByteRange(reference string, start, end int) (SnippetRange, error) {
	r := SnippetRange{
		End:   &SnippetPointer{Reference: reference, Offset: spdx.Some(end)},
		Start: &SnippetPointer{Reference: reference, Offset: spdx.Some(start)},
	}
	if err := schema.Validate(snippetRangeDef, &r); err != nil {
		return SnippetRange{}, err
	}
	return r, nil
}

// NewLineRange builds a snippet range delimited by line numbers in the
// file identified by reference.
func NewLineRange(reference string, start, end int) (SnippetRange, error) {
	r := SnippetRange{
		End:   &SnippetPointer{Reference: reference, LineNumber: spdx.Some(end)},
		Start: &SnippetPointer{Reference: reference, LineNumber: spdx.Some(start)},
	}
	if err := schema.Validate(snippetRangeDef, &r); err != nil {
		return SnippetRange{}, err
	}
	return r, nil
}

// NewSnippet builds a snippet of the file identified by fromFile with at
// least one range.
func NewSnippet(spdxID, name, fromFile string, ranges ...SnippetRange) (Snippet, error) {
	s := Snippet{SPDXID: spdxID, Name: name, FromFile: fromFile, Ranges: ranges}
	if err := schema.Validate(snippetDef, &s); err != nil {
		return Snippet{}, err
	}
	return s, nil
}

// NewRelationship builds a relationship between two element references.
// The related end may also be NOASSERTION or NONE.
func NewRelationship(element string, relationshipType RelationshipType, related string) (Relationship, error) {
	r := Relationship{Element: element, Type: relationshipType, Related: related}
	if err := schema.Validate(relationshipDef, &r); err != nil {
		return Relationship{}, err
	}
	return r, nil
}
