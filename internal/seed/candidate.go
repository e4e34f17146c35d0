// SPDX-License-Identifier: MPL-2.0

package seed

import (
	"path/filepath"
	"strings"
)

const (
	// KindJar is a primary archive artifact (.jar).
	KindJar Kind = "jar"
	// KindZip is a secondary archive artifact (.zip).
	KindZip Kind = "zip"
	// KindPom is a bare descriptor file (.pom).
	KindPom Kind = "pom"
)

type (
	// Kind classifies a candidate by its file-extension convention. The
	// value doubles as the install type of the candidate's primary record.
	Kind string

	// Candidate is one installable file found during a scan. Immutable;
	// produced by Walk and consumed once by the seeder.
	Candidate struct {
		// Path is the absolute path of the candidate file.
		Path string
		// Kind is the extension-derived classification.
		Kind Kind
	}
)

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// IsArchive reports whether the kind is an archive (jar or zip) rather than
// a bare descriptor.
func (k Kind) IsArchive() bool { return k == KindJar || k == KindZip }

// classify maps a file name to its candidate kind. The second return is
// false for files that are not installable.
func classify(name string) (Kind, bool) {
	switch {
	case strings.HasSuffix(name, ".jar"):
		return KindJar, true
	case strings.HasSuffix(name, ".zip"):
		return KindZip, true
	case strings.HasSuffix(name, ".pom"):
		return KindPom, true
	default:
		return "", false
	}
}

// stripExt returns path without its final extension, e.g.
// "dir/widget-1.0.jar" -> "dir/widget-1.0". Used for sibling-descriptor and
// sibling-archive lookups, which pair files by base name.
func stripExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
