package types

type ItemRole string

const (
	ItemRoleInclude ItemRole = "include"
	ItemRoleLibrary ItemRole = "library"
)

type VersionScheme string

const (
	VersionSchemeDotted VersionScheme = "dotted"
	VersionSchemeDeb    VersionScheme = "deb"
	VersionSchemePep440 VersionScheme = "pep440"
)

type OutcomeState string

const (
	OutcomeFound            OutcomeState = "found"
	OutcomeNotFoundOptional OutcomeState = "not-found-optional"
	OutcomeNotFoundFatal    OutcomeState = "not-found-fatal"
)

type FailureReason string

const (
	FailureReasonNone              FailureReason = ""
	FailureReasonVersionUnsuitable FailureReason = "version_unsuitable"
	FailureReasonMissingHeaders    FailureReason = "missing_headers"
	FailureReasonSomeFiles         FailureReason = "some_files"
	FailureReasonNotFound          FailureReason = "not_found"
)
