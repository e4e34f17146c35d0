// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for working with CUE documents:
// formatting CUE validation errors with dotted field paths so users can see
// exactly which part of a config file is wrong, and guarding against
// oversized input files before they reach the CUE evaluator.
package cueutil
