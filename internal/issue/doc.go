// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Two layers live here: ActionableError, which wraps a failure with the
// operation, the resource involved and remediation suggestions for plain
// terminal output; and a catalog of known failure classes rendered as
// Markdown cards (descriptor problems, incomplete coordinates, install
// failures, configuration issues) shown when a run aborts.
package issue
