// SPDX-License-Identifier: MPL-2.0

package pom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrUnreadable is the sentinel error wrapped by UnreadableError.
	ErrUnreadable = errors.New("descriptor unreadable")
	// ErrMalformed is the sentinel error wrapped by MalformedError.
	ErrMalformed = errors.New("descriptor malformed")
)

type (
	// Parent is the parent-project reference of a descriptor. Only the two
	// fields that participate in coordinate inheritance are modeled.
	Parent struct {
		GroupID string `xml:"groupId"`
		Version string `xml:"version"`
	}

	// Model is the parsed form of a project descriptor. Fields that the
	// descriptor does not declare are empty strings; Parent is nil when the
	// descriptor has no parent reference. Consumers must treat a Model as a
	// read-only value once returned by Parse.
	Model struct {
		XMLName    xml.Name `xml:"project"`
		GroupID    string   `xml:"groupId"`
		ArtifactID string   `xml:"artifactId"`
		Version    string   `xml:"version"`
		Packaging  string   `xml:"packaging"`
		Parent     *Parent  `xml:"parent"`
	}

	// UnreadableError is returned when a descriptor file cannot be opened or
	// read. It wraps ErrUnreadable for errors.Is() compatibility.
	UnreadableError struct {
		Path  string
		Cause error
	}

	// MalformedError is returned when a descriptor file is not a well-formed
	// descriptor document. It wraps ErrMalformed for errors.Is() compatibility.
	MalformedError struct {
		Path  string
		Cause error
	}
)

// Error implements the error interface for UnreadableError.
func (e *UnreadableError) Error() string {
	return fmt.Sprintf("descriptor %s unreadable: %v", e.Path, e.Cause)
}

// Unwrap returns ErrUnreadable for errors.Is() compatibility.
func (e *UnreadableError) Unwrap() error { return ErrUnreadable }

// Error implements the error interface for MalformedError.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("descriptor %s malformed: %v", e.Path, e.Cause)
}

// Unwrap returns ErrMalformed for errors.Is() compatibility.
func (e *MalformedError) Unwrap() error { return ErrMalformed }

// Parse reads and parses the descriptor file at path.
//
// Whitespace around field values is stripped, so a whitespace-only element
// counts as absent. A parent element missing entirely yields a nil Parent.
func Parse(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnreadableError{Path: path, Cause: err}
	}

	var m Model
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, &MalformedError{Path: path, Cause: err}
	}

	m.GroupID = strings.TrimSpace(m.GroupID)
	m.ArtifactID = strings.TrimSpace(m.ArtifactID)
	m.Version = strings.TrimSpace(m.Version)
	m.Packaging = strings.TrimSpace(m.Packaging)
	if m.Parent != nil {
		m.Parent.GroupID = strings.TrimSpace(m.Parent.GroupID)
		m.Parent.Version = strings.TrimSpace(m.Parent.Version)
	}

	return &m, nil
}
