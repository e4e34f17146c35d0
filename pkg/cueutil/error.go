// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// DefaultMaxFileSize caps CUE input files at 5MB so a runaway or hostile
// config file cannot exhaust memory during parsing.
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

// FormatError rewrites a CUE evaluation error into one line per finding,
// each prefixed with the offending field's dotted path:
//
//	config.cue: layout: 2 errors in empty disjunction
//	config.cue: ui.verbose: conflicting values "yes" and bool
//
// Non-CUE errors pass through wrapped with the file path only.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrors := errors.Errors(err)
	if len(cueErrors) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	var lines []string
	for _, e := range cueErrors {
		pathStr := fieldPath(errors.Path(e))
		msg := e.Error()

		// CUE often repeats the field path inside the message; strip it so
		// the prefix we add is the only one the user sees.
		if pathStr != "" && strings.HasPrefix(msg, pathStr) {
			msg = strings.TrimPrefix(msg, pathStr)
			msg = strings.TrimPrefix(msg, ":")
			msg = strings.TrimSpace(msg)
		}

		if pathStr == "" {
			lines = append(lines, msg)
			continue
		}
		lines = append(lines, pathStr+": "+msg)
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// fieldPath joins a CUE error path into dotted notation ("ui.color_scheme").
// Configuration schemas here are nested structs without list fields, so a
// plain join is sufficient.
func fieldPath(path []string) string {
	return strings.Join(path, ".")
}

// CheckFileSize rejects data larger than maxSize before it reaches the CUE
// evaluator.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes",
			filename, len(data), maxSize)
	}
	return nil
}
