// SPDX-License-Identifier: MPL-2.0

package coords

import (
	"errors"
	"fmt"
	"strings"

	"reposeed/pkg/pom"
)

// ErrIncomplete is the sentinel error wrapped by IncompleteError.
var ErrIncomplete = errors.New("incomplete artifact identity")

type (
	// Identity is a complete set of artifact coordinates. All fields are
	// non-empty on any Identity returned by Resolve.
	Identity struct {
		GroupID    string
		ArtifactID string
		Version    string
		Packaging  string
	}

	// IncompleteError is returned when a descriptor is missing coordinate
	// fields even after parent inheritance. Missing lists the absent fields
	// by their descriptor element names, in declaration order. It wraps
	// ErrIncomplete for errors.Is() compatibility.
	IncompleteError struct {
		Missing []string
	}
)

// Error implements the error interface for IncompleteError.
func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete artifact identity: missing %s", strings.Join(e.Missing, ", "))
}

// Unwrap returns ErrIncomplete for errors.Is() compatibility.
func (e *IncompleteError) Unwrap() error { return ErrIncomplete }

// String returns the coordinates in groupId:artifactId:version:packaging form.
func (id Identity) String() string {
	return id.GroupID + ":" + id.ArtifactID + ":" + id.Version + ":" + id.Packaging
}

// Resolve derives a complete Identity from a parsed descriptor.
//
// A missing groupId or version is inherited from the parent reference when
// one is present; artifactId and packaging are never inherited and must be
// declared by the descriptor itself. There is no further defaulting: if any
// of the four fields is still empty after inheritance, Resolve fails with an
// IncompleteError naming the absent fields.
//
// The descriptor is never modified; resolving an already-complete descriptor
// returns its fields unchanged.
func Resolve(m *pom.Model) (Identity, error) {
	id := Identity{
		GroupID:    m.GroupID,
		ArtifactID: m.ArtifactID,
		Version:    m.Version,
		Packaging:  m.Packaging,
	}

	if m.Parent != nil {
		if id.GroupID == "" {
			id.GroupID = m.Parent.GroupID
		}
		if id.Version == "" {
			id.Version = m.Parent.Version
		}
	}

	var missing []string
	if id.GroupID == "" {
		missing = append(missing, "groupId")
	}
	if id.ArtifactID == "" {
		missing = append(missing, "artifactId")
	}
	if id.Version == "" {
		missing = append(missing, "version")
	}
	if id.Packaging == "" {
		missing = append(missing, "packaging")
	}
	if len(missing) > 0 {
		return Identity{}, &IncompleteError{Missing: missing}
	}

	return id, nil
}
