// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for reposeed.
//
// This package implements the Cobra command hierarchy for the reposeed CLI:
// the root command, the install and plan commands that drive the seeding
// pipeline, and the config command tree.
package cmd
