// SPDX-License-Identifier: MPL-2.0

package pom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDescriptor(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string // returns descriptor path
		expected Model
	}{
		{
			name: "complete descriptor",
			setup: func(t *testing.T) string {
				return writeDescriptor(t, "complete.pom", `<?xml version="1.0"?>
<project>
  <groupId>com.example</groupId>
  <artifactId>widget</artifactId>
  <version>1.0.0</version>
  <packaging>jar</packaging>
</project>`)
			},
			expected: Model{GroupID: "com.example", ArtifactID: "widget", Version: "1.0.0", Packaging: "jar"},
		},
		{
			name: "namespaced descriptor",
			setup: func(t *testing.T) string {
				return writeDescriptor(t, "ns.pom", `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>org.acme</groupId>
  <artifactId>gadget</artifactId>
  <version>2.1</version>
  <packaging>zip</packaging>
</project>`)
			},
			expected: Model{GroupID: "org.acme", ArtifactID: "gadget", Version: "2.1", Packaging: "zip"},
		},
		{
			name: "parent reference extracted",
			setup: func(t *testing.T) string {
				return writeDescriptor(t, "child.pom", `<project>
  <parent>
    <groupId>com.example.parent</groupId>
    <version>3.0</version>
  </parent>
  <artifactId>child</artifactId>
  <packaging>jar</packaging>
</project>`)
			},
			expected: Model{
				ArtifactID: "child",
				Packaging:  "jar",
				Parent:     &Parent{GroupID: "com.example.parent", Version: "3.0"},
			},
		},
		{
			name: "whitespace-only fields count as absent",
			setup: func(t *testing.T) string {
				return writeDescriptor(t, "blank.pom", `<project>
  <groupId>
  </groupId>
  <artifactId>  thing  </artifactId>
  <version>1.0</version>
</project>`)
			},
			expected: Model{ArtifactID: "thing", Version: "1.0"},
		},
		{
			name: "unknown elements ignored",
			setup: func(t *testing.T) string {
				return writeDescriptor(t, "extra.pom", `<project>
  <modelVersion>4.0.0</modelVersion>
  <groupId>g</groupId>
  <artifactId>a</artifactId>
  <version>1</version>
  <dependencies><dependency><groupId>x</groupId></dependency></dependencies>
</project>`)
			},
			expected: Model{GroupID: "g", ArtifactID: "a", Version: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.setup(t))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got.GroupID != tt.expected.GroupID {
				t.Errorf("GroupID = %q, want %q", got.GroupID, tt.expected.GroupID)
			}
			if got.ArtifactID != tt.expected.ArtifactID {
				t.Errorf("ArtifactID = %q, want %q", got.ArtifactID, tt.expected.ArtifactID)
			}
			if got.Version != tt.expected.Version {
				t.Errorf("Version = %q, want %q", got.Version, tt.expected.Version)
			}
			if got.Packaging != tt.expected.Packaging {
				t.Errorf("Packaging = %q, want %q", got.Packaging, tt.expected.Packaging)
			}
			if (got.Parent == nil) != (tt.expected.Parent == nil) {
				t.Fatalf("Parent = %v, want %v", got.Parent, tt.expected.Parent)
			}
			if got.Parent != nil {
				if got.Parent.GroupID != tt.expected.Parent.GroupID {
					t.Errorf("Parent.GroupID = %q, want %q", got.Parent.GroupID, tt.expected.Parent.GroupID)
				}
				if got.Parent.Version != tt.expected.Parent.Version {
					t.Errorf("Parent.Version = %q, want %q", got.Parent.Version, tt.expected.Parent.Version)
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "missing file is unreadable",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.pom")
			},
			wantErr: ErrUnreadable,
		},
		{
			name: "invalid XML is malformed",
			setup: func(t *testing.T) string {
				return writeDescriptor(t, "broken.pom", `<project><groupId>g</project>`)
			},
			wantErr: ErrMalformed,
		},
		{
			name: "wrong root element is malformed",
			setup: func(t *testing.T) string {
				return writeDescriptor(t, "notpom.pom", `<archive><groupId>g</groupId></archive>`)
			},
			wantErr: ErrMalformed,
		},
		{
			name: "empty file is malformed",
			setup: func(t *testing.T) string {
				return writeDescriptor(t, "empty.pom", "")
			},
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t)
			_, err := Parse(path)
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want errors.Is(%v)", err, tt.wantErr)
			}
		})
	}
}

func TestParseErrorDetail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.pom")
	_, err := Parse(path)

	var ue *UnreadableError
	if !errors.As(err, &ue) {
		t.Fatalf("Parse() error = %T, want *UnreadableError", err)
	}
	if ue.Path != path {
		t.Errorf("UnreadableError.Path = %q, want %q", ue.Path, path)
	}
	if ue.Cause == nil {
		t.Error("UnreadableError.Cause is nil")
	}
}
