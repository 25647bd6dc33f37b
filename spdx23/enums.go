// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package spdx23

import "github.com/dacolabs/spdx/schema"

// Members of every enumeration are listed in the order the SPDX 2.3
// schema declares them, with their exact wire spelling. The sets are
// closed: values not listed here never parse and never serialize.

// ChecksumAlgorithm identifies the digest algorithm of a Checksum.
type ChecksumAlgorithm string

const (
	AlgorithmSHA1       ChecksumAlgorithm = "SHA1"
	AlgorithmBLAKE3     ChecksumAlgorithm = "BLAKE3"
	AlgorithmSHA3_384   ChecksumAlgorithm = "SHA3-384"
	AlgorithmSHA256     ChecksumAlgorithm = "SHA256"
	AlgorithmSHA384     ChecksumAlgorithm = "SHA384"
	AlgorithmBLAKE2b512 ChecksumAlgorithm = "BLAKE2b-512"
	AlgorithmBLAKE2b256 ChecksumAlgorithm = "BLAKE2b-256"
	AlgorithmSHA3_512   ChecksumAlgorithm = "SHA3-512"
	AlgorithmMD2        ChecksumAlgorithm = "MD2"
	AlgorithmADLER32    ChecksumAlgorithm = "ADLER32"
	AlgorithmMD4        ChecksumAlgorithm = "MD4"
	AlgorithmSHA3_256   ChecksumAlgorithm = "SHA3-256"
	AlgorithmBLAKE2b384 ChecksumAlgorithm = "BLAKE2b-384"
	AlgorithmSHA512     ChecksumAlgorithm = "SHA512"
	AlgorithmMD6        ChecksumAlgorithm = "MD6"
	AlgorithmMD5        ChecksumAlgorithm = "MD5"
	AlgorithmSHA224     ChecksumAlgorithm = "SHA224"
)

// AnnotationType distinguishes review annotations from everything else.
type AnnotationType string

const (
	AnnotationOther  AnnotationType = "OTHER"
	AnnotationReview AnnotationType = "REVIEW"
)

// ReferenceCategory classifies an external reference.
type ReferenceCategory string

const (
	CategoryOther          ReferenceCategory = "OTHER"
	CategoryPersistentID   ReferenceCategory = "PERSISTENT-ID"
	CategorySecurity       ReferenceCategory = "SECURITY"
	CategoryPackageManager ReferenceCategory = "PACKAGE-MANAGER"
)

// PackagePurpose states what kind of artifact a package is.
type PackagePurpose string

const (
	PurposeOther           PackagePurpose = "OTHER"
	PurposeInstall         PackagePurpose = "INSTALL"
	PurposeArchive         PackagePurpose = "ARCHIVE"
	PurposeFirmware        PackagePurpose = "FIRMWARE"
	PurposeApplication     PackagePurpose = "APPLICATION"
	PurposeFramework       PackagePurpose = "FRAMEWORK"
	PurposeLibrary         PackagePurpose = "LIBRARY"
	PurposeContainer       PackagePurpose = "CONTAINER"
	PurposeSource          PackagePurpose = "SOURCE"
	PurposeDevice          PackagePurpose = "DEVICE"
	PurposeOperatingSystem PackagePurpose = "OPERATING_SYSTEM"
	PurposeFile            PackagePurpose = "FILE"
)

// FileType classifies a file's content.
type FileType string

const (
	FileTypeOther         FileType = "OTHER"
	FileTypeDocumentation FileType = "DOCUMENTATION"
	FileTypeImage         FileType = "IMAGE"
	FileTypeVideo         FileType = "VIDEO"
	FileTypeArchive       FileType = "ARCHIVE"
	FileTypeSPDX          FileType = "SPDX"
	FileTypeApplication   FileType = "APPLICATION"
	FileTypeSource        FileType = "SOURCE"
	FileTypeBinary        FileType = "BINARY"
	FileTypeText          FileType = "TEXT"
	FileTypeAudio         FileType = "AUDIO"
)

// RelationshipType states how one element relates to another.
type RelationshipType string

const (
	RelationshipVariantOf                 RelationshipType = "VARIANT_OF"
	RelationshipCopyOf                    RelationshipType = "COPY_OF"
	RelationshipPatchFor                  RelationshipType = "PATCH_FOR"
	RelationshipTestDependencyOf          RelationshipType = "TEST_DEPENDENCY_OF"
	RelationshipContainedBy               RelationshipType = "CONTAINED_BY"
	RelationshipDataFileOf                RelationshipType = "DATA_FILE_OF"
	RelationshipOptionalComponentOf       RelationshipType = "OPTIONAL_COMPONENT_OF"
	RelationshipAncestorOf                RelationshipType = "ANCESTOR_OF"
	RelationshipGenerates                 RelationshipType = "GENERATES"
	RelationshipContains                  RelationshipType = "CONTAINS"
	RelationshipOptionalDependencyOf      RelationshipType = "OPTIONAL_DEPENDENCY_OF"
	RelationshipFileAdded                 RelationshipType = "FILE_ADDED"
	RelationshipRequirementDescriptionFor RelationshipType = "REQUIREMENT_DESCRIPTION_FOR"
	RelationshipDevDependencyOf           RelationshipType = "DEV_DEPENDENCY_OF"
	RelationshipDependencyOf              RelationshipType = "DEPENDENCY_OF"
	RelationshipBuildDependencyOf         RelationshipType = "BUILD_DEPENDENCY_OF"
	RelationshipDescribes                 RelationshipType = "DESCRIBES"
	RelationshipPrerequisiteFor           RelationshipType = "PREREQUISITE_FOR"
	RelationshipHasPrerequisite           RelationshipType = "HAS_PREREQUISITE"
	RelationshipProvidedDependencyOf      RelationshipType = "PROVIDED_DEPENDENCY_OF"
	RelationshipDynamicLink               RelationshipType = "DYNAMIC_LINK"
	RelationshipDescribedBy               RelationshipType = "DESCRIBED_BY"
	RelationshipMetafileOf                RelationshipType = "METAFILE_OF"
	RelationshipDependencyManifestOf      RelationshipType = "DEPENDENCY_MANIFEST_OF"
	RelationshipPatchApplied              RelationshipType = "PATCH_APPLIED"
	RelationshipRuntimeDependencyOf       RelationshipType = "RUNTIME_DEPENDENCY_OF"
	RelationshipTestOf                    RelationshipType = "TEST_OF"
	RelationshipTestToolOf                RelationshipType = "TEST_TOOL_OF"
	RelationshipDependsOn                 RelationshipType = "DEPENDS_ON"
	RelationshipSpecificationFor          RelationshipType = "SPECIFICATION_FOR"
	RelationshipFileModified              RelationshipType = "FILE_MODIFIED"
	RelationshipDistributionArtifact      RelationshipType = "DISTRIBUTION_ARTIFACT"
	RelationshipAmends                    RelationshipType = "AMENDS"
	RelationshipDocumentationOf           RelationshipType = "DOCUMENTATION_OF"
	RelationshipGeneratedFrom             RelationshipType = "GENERATED_FROM"
	RelationshipStaticLink                RelationshipType = "STATIC_LINK"
	RelationshipOther                     RelationshipType = "OTHER"
	RelationshipBuildToolOf               RelationshipType = "BUILD_TOOL_OF"
	RelationshipTestCaseOf                RelationshipType = "TEST_CASE_OF"
	RelationshipPackageOf                 RelationshipType = "PACKAGE_OF"
	RelationshipDescendantOf              RelationshipType = "DESCENDANT_OF"
	RelationshipFileDeleted               RelationshipType = "FILE_DELETED"
	RelationshipExpandedFromArchive       RelationshipType = "EXPANDED_FROM_ARCHIVE"
	RelationshipDevToolOf                 RelationshipType = "DEV_TOOL_OF"
	RelationshipExampleOf                 RelationshipType = "EXAMPLE_OF"
)

var (
	checksumAlgorithms = schema.NewEnum("ChecksumAlgorithm", members(
		AlgorithmSHA1, AlgorithmBLAKE3, AlgorithmSHA3_384, AlgorithmSHA256,
		AlgorithmSHA384, AlgorithmBLAKE2b512, AlgorithmBLAKE2b256,
		AlgorithmSHA3_512, AlgorithmMD2, AlgorithmADLER32, AlgorithmMD4,
		AlgorithmSHA3_256, AlgorithmBLAKE2b384, AlgorithmSHA512,
		AlgorithmMD6, AlgorithmMD5, AlgorithmSHA224)...)

	annotationTypes = schema.NewEnum("AnnotationType", members(
		AnnotationOther, AnnotationReview)...)

	referenceCategories = schema.NewEnum("ReferenceCategory", members(
		CategoryOther, CategoryPersistentID, CategorySecurity,
		CategoryPackageManager)...)

	packagePurposes = schema.NewEnum("PrimaryPackagePurpose", members(
		PurposeOther, PurposeInstall, PurposeArchive, PurposeFirmware,
		PurposeApplication, PurposeFramework, PurposeLibrary,
		PurposeContainer, PurposeSource, PurposeDevice,
		PurposeOperatingSystem, PurposeFile)...)

	fileTypes = schema.NewEnum("FileType", members(
		FileTypeOther, FileTypeDocumentation, FileTypeImage, FileTypeVideo,
		FileTypeArchive, FileTypeSPDX, FileTypeApplication, FileTypeSource,
		FileTypeBinary, FileTypeText, FileTypeAudio)...)

	relationshipTypes = schema.NewEnum("RelationshipType", members(
		RelationshipVariantOf, RelationshipCopyOf, RelationshipPatchFor,
		RelationshipTestDependencyOf, RelationshipContainedBy,
		RelationshipDataFileOf, RelationshipOptionalComponentOf,
		RelationshipAncestorOf, RelationshipGenerates, RelationshipContains,
		RelationshipOptionalDependencyOf, RelationshipFileAdded,
		RelationshipRequirementDescriptionFor, RelationshipDevDependencyOf,
		RelationshipDependencyOf, RelationshipBuildDependencyOf,
		RelationshipDescribes, RelationshipPrerequisiteFor,
		RelationshipHasPrerequisite, RelationshipProvidedDependencyOf,
		RelationshipDynamicLink, RelationshipDescribedBy,
		RelationshipMetafileOf, RelationshipDependencyManifestOf,
		RelationshipPatchApplied, RelationshipRuntimeDependencyOf,
		RelationshipTestOf, RelationshipTestToolOf, RelationshipDependsOn,
		RelationshipSpecificationFor, RelationshipFileModified,
		RelationshipDistributionArtifact, RelationshipAmends,
		RelationshipDocumentationOf, RelationshipGeneratedFrom,
		RelationshipStaticLink, RelationshipOther, RelationshipBuildToolOf,
		RelationshipTestCaseOf, RelationshipPackageOf,
		RelationshipDescendantOf, RelationshipFileDeleted,
		RelationshipExpandedFromArchive, RelationshipDevToolOf,
		RelationshipExampleOf)...)
)
