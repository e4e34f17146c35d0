// SPDX-License-Identifier: MPL-2.0

package repo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// LayoutDefault is the standard Maven2 repository layout.
	LayoutDefault Layout = "default"
	// LayoutEnhanced is a legacy alias accepted for compatibility; it is
	// normalized to LayoutDefault when an Installer is constructed.
	LayoutEnhanced Layout = "enhanced"
)

var (
	// ErrUnknownLayout is the sentinel error wrapped by UnknownLayoutError.
	ErrUnknownLayout = errors.New("unknown repository layout")
)

type (
	// Layout identifies the content layout convention of a repository.
	Layout string

	// UnknownLayoutError is returned when a Layout value is not recognized.
	// It wraps ErrUnknownLayout for errors.Is() compatibility.
	UnknownLayoutError struct {
		Value Layout
	}

	// Target describes where artifacts are written: the repository root
	// directory and its content layout. A Target is resolved once per
	// invocation and shared by every install within it.
	Target struct {
		Root   string
		Layout Layout
	}

	// Artifact is one finalized install record: complete coordinates plus
	// the backing file to commit. Classifier is usually empty; descriptor
	// sub-artifacts use Type "pom" with an empty Classifier.
	Artifact struct {
		GroupID    string
		ArtifactID string
		Version    string
		Classifier string
		Type       string
		File       string
	}
)

// String returns the string representation of the Layout.
func (l Layout) String() string { return string(l) }

// IsValid returns whether the Layout is one of the recognized layout kinds,
// and a list of validation errors if it is not.
func (l Layout) IsValid() (bool, []error) {
	switch l {
	case LayoutDefault, LayoutEnhanced:
		return true, nil
	default:
		return false, []error{&UnknownLayoutError{Value: l}}
	}
}

// Error implements the error interface for UnknownLayoutError.
func (e *UnknownLayoutError) Error() string {
	return fmt.Sprintf("unknown repository layout %q (valid: default, enhanced)", e.Value)
}

// Unwrap returns ErrUnknownLayout for errors.Is() compatibility.
func (e *UnknownLayoutError) Unwrap() error { return ErrUnknownLayout }

// Coordinates returns the artifact's coordinates in groupId:artifactId:version:type form.
func (a Artifact) Coordinates() string {
	return a.GroupID + ":" + a.ArtifactID + ":" + a.Version + ":" + a.Type
}

// FileName returns the artifact's canonical file name within its version
// directory: artifactId-version[-classifier].type.
func (a Artifact) FileName() string {
	name := a.ArtifactID + "-" + a.Version
	if a.Classifier != "" {
		name += "-" + a.Classifier
	}
	return name + "." + a.Type
}

// RelPath returns the artifact's path relative to the repository root in the
// default layout: group segments as directories, then artifactId, version,
// and the canonical file name.
func (a Artifact) RelPath() string {
	parts := strings.Split(a.GroupID, ".")
	parts = append(parts, a.ArtifactID, a.Version, a.FileName())
	return filepath.Join(parts...)
}
