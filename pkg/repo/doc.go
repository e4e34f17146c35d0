// SPDX-License-Identifier: MPL-2.0

// Package repo writes artifacts into a local Maven-compatible repository.
//
// The package owns the repository-side half of installing: mapping artifact
// records to their canonical paths under the repository root (the Maven2
// "default" layout) and committing the backing files there. What to install
// is decided elsewhere; the Installer only executes finalized records.
package repo
