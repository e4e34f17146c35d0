// SPDX-License-Identifier: MPL-2.0

// Package seed implements the artifact-discovery and install-planning
// pipeline: scan a directory for installable files, locate each one's
// project descriptor (embedded in the archive or sitting next to it),
// resolve complete coordinates, and hand finalized install records to a
// repository installer.
//
// Candidates are processed one at a time, in directory-listing order.
// Recoverable conditions (missing scan root, a candidate without a
// descriptor) are reported as diagnostics and skipped; everything else
// aborts the run on first failure. The parser and installer are injected,
// so callers can substitute recording implementations (see the dry-run
// support in cmd/reposeed).
package seed
