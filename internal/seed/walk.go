// SPDX-License-Identifier: MPL-2.0

package seed

import (
	"os"
	"path/filepath"
)

// Walk lists installable candidates under root in directory-listing order
// (no sorting is applied beyond what the filesystem returns). Directories
// are descended into only when recursive is set.
//
// A missing or non-directory root is not an error: Walk returns no
// candidates and a root_not_found warning diagnostic, matching the
// warn-and-continue contract of the scan step.
func Walk(root string, recursive bool) ([]Candidate, []Diagnostic) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, []Diagnostic{{
			Severity: SeverityWarning,
			Code:     CodeRootNotFound,
			Message:  "scan root does not exist or is not a directory",
			Path:     root,
			Cause:    err,
		}}
	}

	var candidates []Candidate
	var diags []Diagnostic
	walkDir(root, recursive, &candidates, &diags)
	return candidates, diags
}

func walkDir(dir string, recursive bool, candidates *[]Candidate, diags *[]Diagnostic) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		*diags = append(*diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeDirUnreadable,
			Message:  "cannot list directory, skipping",
			Path:     dir,
			Cause:    err,
		})
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if recursive {
				walkDir(path, recursive, candidates, diags)
			}
			continue
		}
		if kind, ok := classify(entry.Name()); ok {
			*candidates = append(*candidates, Candidate{Path: path, Kind: kind})
		}
	}
}
