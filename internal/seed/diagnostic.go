// SPDX-License-Identifier: MPL-2.0

package seed

const (
	// SeverityWarning indicates a recoverable scan warning.
	SeverityWarning Severity = "warning"
	// SeverityInfo indicates an informational note, such as an intentional
	// skip.
	SeverityInfo Severity = "info"
)

const (
	// CodeRootNotFound is reported when the scan root does not exist or is
	// not a directory.
	CodeRootNotFound = "root_not_found"
	// CodeDirUnreadable is reported when a directory inside the scan root
	// cannot be listed.
	CodeDirUnreadable = "dir_unreadable"
	// CodeNoArtifacts is reported when a scan produces no candidates.
	CodeNoArtifacts = "no_artifacts"
	// CodeDescriptorNotFound is reported when a candidate has no embedded or
	// sibling descriptor and is skipped.
	CodeDescriptorNotFound = "descriptor_not_found"
	// CodeDescriptorSuperseded is reported when a bare descriptor is skipped
	// because a sibling archive will carry it.
	CodeDescriptorSuperseded = "descriptor_superseded"
)

type (
	// Severity represents a diagnostic level.
	Severity string

	// Diagnostic is a structured, recoverable condition observed during a
	// run. Diagnostics are returned to callers (rather than written to
	// stderr directly) so the CLI layer owns the rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g., "descriptor_not_found").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)
