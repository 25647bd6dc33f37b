package spdx23

import (
	"testing"

	"github.com/dacolabs/spdx"
	"github.com/dacolabs/spdx/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreationInfo(t *testing.T) CreationInfo {
	t.Helper()
	info, err := NewCreationInfo("2024-01-29T18:30:22Z", "Tool: demo-0.1")
	require.NoError(t, err)
	return info
}

func TestNewDocument(t *testing.T) {
	doc, err := NewDocument("demo", mustCreationInfo(t))
	require.NoError(t, err)

	// Check the defaults
	assert.Equal(t, "SPDXRef-DOCUMENT", doc.SPDXID)
	assert.Equal(t, "SPDX-2.3", doc.SPDXVersion)
	assert.Equal(t, "CC0-1.0", doc.DataLicense)
	assert.Equal(t, "demo", doc.Name)
	assert.False(t, doc.DocumentNamespace.IsSet())

	// Optional fields are assigned afterwards and re-validated.
	doc.DocumentNamespace = spdx.Some("https://example.com/demo-1")
	require.NoError(t, doc.Validate())

	doc.DocumentNamespace = spdx.Some("no scheme here")
	err = doc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrConstraintViolation)
}

func TestNewDocument_EmptyName(t *testing.T) {
	_, err := NewDocument("", mustCreationInfo(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrConstraintViolation)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Path)
}

func TestNewCreationInfo(t *testing.T) {
	info, err := NewCreationInfo("2024-01-29T18:30:22Z",
		"Person: Jane Doe ()", "Organization: ExampleCodeInspect ()")
	require.NoError(t, err)
	assert.Len(t, info.Creators, 2)
	assert.False(t, info.LicenseListVersion.IsSet())

	tests := []struct {
		name     string
		created  string
		creators []string
		wantErr  string
	}{
		{
			name:    "no creators",
			created: "2024-01-29T18:30:22Z",
			wantErr: "requires at least 1 element(s)",
		},
		{
			name:     "creator without role",
			created:  "2024-01-29T18:30:22Z",
			creators: []string{"Jane Doe"},
			wantErr:  `must start with "Person: ", "Organization: ", or "Tool: "`,
		},
		{
			name:     "bad timestamp",
			created:  "yesterday",
			creators: []string{"Tool: demo"},
			wantErr:  "must be a UTC timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreationInfo(tt.created, tt.creators...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewChecksum(t *testing.T) {
	c, err := NewChecksum(AlgorithmSHA256, "11b6d3ee554eedf79299905a98f9b9a04e498210b59f15094c916c91d150efcd")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmSHA256, c.Algorithm)

	_, err = NewChecksum(AlgorithmSHA1, "not hex!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must contain only hexadecimal digits")

	_, err = NewChecksum("sha1", "85ed0817af83a24ad8da68c2b5094de69833983c")
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrUnknownEnumValue)
}

func TestNewExternalDocumentRef(t *testing.T) {
	sum, err := NewChecksum(AlgorithmSHA1, "d6a770ba38583ed4bb4525bd96e50461655d2759")
	require.NoError(t, err)

	ref, err := NewExternalDocumentRef("DocumentRef-spdx-tool-1.2", "http://spdx.org/spdxdocs/spdx-tools-v1.2", sum)
	require.NoError(t, err)
	assert.Equal(t, "DocumentRef-spdx-tool-1.2", ref.DocumentID)
	require.NotNil(t, ref.Checksum)

	_, err = NewExternalDocumentRef("spdx-tool-1.2", "http://spdx.org/x", sum)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `must start with "DocumentRef-"`)
}

func TestNewAnnotation(t *testing.T) {
	a, err := NewAnnotation("SPDXRef-DOCUMENT", "2024-01-29T18:30:22Z",
		AnnotationReview, "Person: Joe Reviewer", "looks good")
	require.NoError(t, err)
	assert.Equal(t, "SPDXRef-DOCUMENT", a.Annotated)
	assert.Equal(t, AnnotationReview, a.AnnotationType)

	// The annotated element is checked even though it never serializes.
	_, err = NewAnnotation("DOCUMENT", "2024-01-29T18:30:22Z",
		AnnotationReview, "Person: Joe Reviewer", "x")
	require.Error(t, err)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "annotated", verr.Path)

	_, err = NewAnnotation("SPDXRef-DOCUMENT", "today",
		AnnotationReview, "Person: Joe Reviewer", "x")
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "annotationDate", verr.Path)
}

func TestNewCrossRef(t *testing.T) {
	c, err := NewCrossRef("https://fedoraproject.org/wiki/Licensing/Beerware")
	require.NoError(t, err)
	assert.False(t, c.IsValid.IsSet())

	_, err = NewCrossRef("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")
}

func TestNewExtractedLicensingInfo(t *testing.T) {
	x, err := NewExtractedLicensingInfo("LicenseRef-1", "License Text")
	require.NoError(t, err)
	assert.Equal(t, "LicenseRef-1", x.LicenseID)

	_, err = NewExtractedLicensingInfo("", "License Text")
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrConstraintViolation)
}

func TestNewReviewed(t *testing.T) {
	r, err := NewReviewed("2021-02-10T00:00:00Z")
	require.NoError(t, err)
	assert.False(t, r.Reviewer.IsSet())

	_, err = NewReviewed("2021-02-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a UTC timestamp")
}

func TestNewExternalRef(t *testing.T) {
	r, err := NewExternalRef(CategoryPackageManager, "purl", "pkg:pypi/lxml@3.3.5")
	require.NoError(t, err)
	assert.Equal(t, "purl", r.RefType)

	_, err = NewExternalRef(CategoryPackageManager, "purl", "pkg: pypi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain whitespace")

	_, err = NewExternalRef("MANAGER", "purl", "pkg:pypi/lxml@3.3.5")
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrUnknownEnumValue)
}

func TestNewVerificationCode(t *testing.T) {
	c, err := NewVerificationCode("d6a770ba38583ed4bb4525bd96e50461655d2758", "./package.spdx")
	require.NoError(t, err)
	assert.Equal(t, []string{"./package.spdx"}, c.ExcludedFiles)

	_, err = NewVerificationCode("xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must contain only hexadecimal digits")
}

func TestNewPackage(t *testing.T) {
	p, err := NewPackage("SPDXRef-package1", "lxml", spdx.NoAssertion)
	require.NoError(t, err)
	assert.False(t, p.FilesAnalyzed.IsSet())
	assert.Nil(t, p.Checksums)

	_, err = NewPackage("package1", "lxml", spdx.NoAssertion)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `must start with "SPDXRef-"`)

	_, err = NewPackage("SPDXRef-package1", "lxml", "glibc.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must contain a URI scheme, NOASSERTION, or NONE")
}

func TestNewFile(t *testing.T) {
	sum, err := NewChecksum(AlgorithmSHA1, "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12")
	require.NoError(t, err)

	f, err := NewFile("SPDXRef-file1", "file.txt", sum)
	require.NoError(t, err)
	require.Len(t, f.Checksums, 1)

	// At least one checksum is required.
	_, err = NewFile("SPDXRef-file1", "file.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrMissingRequiredField)
}

func TestNewSnippet(t *testing.T) {
	br, err := NewByteRange("SPDXRef-file1", 310, 420)
	require.NoError(t, err)
	assert.Equal(t, 310, br.Start.Offset.Or(-1))
	assert.Equal(t, 420, br.End.Offset.Or(-1))
	assert.False(t, br.Start.LineNumber.IsSet())

	lr, err := NewLineRange("SPDXRef-file1", 5, 23)
	require.NoError(t, err)
	assert.Equal(t, 5, lr.Start.LineNumber.Or(-1))
	assert.False(t, lr.Start.Offset.IsSet())

	s, err := NewSnippet("SPDXRef-snippet1", "from linux kernel", "SPDXRef-file1", br, lr)
	require.NoError(t, err)
	assert.Len(t, s.Ranges, 2)

	_, err = NewSnippet("SPDXRef-snippet1", "x", "SPDXRef-file1")
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrMissingRequiredField)

	_, err = NewByteRange("file1", 1, 2)
	require.Error(t, err)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endPointer.reference", verr.Path)
}

func TestNewRelationship(t *testing.T) {
	r, err := NewRelationship("SPDXRef-package1", RelationshipContains, "SPDXRef-file1")
	require.NoError(t, err)
	assert.Equal(t, RelationshipContains, r.Type)

	// The related end may decline to assert.
	_, err = NewRelationship("SPDXRef-file1", RelationshipGeneratedFrom, spdx.NoAssertion)
	assert.NoError(t, err)

	// Cross-document references are legal on both ends.
	_, err = NewRelationship("SPDXRef-DOCUMENT", RelationshipCopyOf, "DocumentRef-tool:SPDXRef-x")
	assert.NoError(t, err)

	_, err = NewRelationship("package1", RelationshipContains, "SPDXRef-file1")
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrConstraintViolation)

	_, err = NewRelationship("SPDXRef-package1", "CONTAINZ", "SPDXRef-file1")
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrUnknownEnumValue)
}
