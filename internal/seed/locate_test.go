// SPDX-License-Identifier: MPL-2.0

package seed

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// makeArchive writes a zip archive with the given entries (name -> content)
// and returns its path.
func makeArchive(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)
	for entryName, content := range entries {
		ew, err := w.Create(entryName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ew.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLocateDescriptorSelf(t *testing.T) {
	dir := t.TempDir()
	pomFile := touch(t, dir, "bare-1.0.pom")

	path, cleanup, err := locateDescriptor(Candidate{Path: pomFile, Kind: KindPom})
	if err != nil {
		t.Fatalf("locateDescriptor() error = %v", err)
	}
	defer cleanup()
	if path != pomFile {
		t.Errorf("locateDescriptor() = %q, want the candidate itself %q", path, pomFile)
	}
}

func TestLocateDescriptorEmbedded(t *testing.T) {
	dir := t.TempDir()
	jar := makeArchive(t, dir, "widget-1.0.jar", map[string]string{
		"META-INF/MANIFEST.MF":                      "Manifest-Version: 1.0",
		"META-INF/maven/com.example/widget/pom.xml": "<project><artifactId>widget</artifactId></project>",
		"com/example/Widget.class":                  "\xca\xfe\xba\xbe",
	})

	path, cleanup, err := locateDescriptor(Candidate{Path: jar, Kind: KindJar})
	if err != nil {
		t.Fatalf("locateDescriptor() error = %v", err)
	}
	if path == jar {
		t.Fatal("locateDescriptor() returned the archive itself")
	}
	if got := readAll(t, path); got != "<project><artifactId>widget</artifactId></project>" {
		t.Errorf("extracted descriptor content = %q", got)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("cleanup left the extracted descriptor behind at %s", path)
	}
}

func TestLocateDescriptorDeterministicPick(t *testing.T) {
	dir := t.TempDir()
	jar := makeArchive(t, dir, "multi-1.0.jar", map[string]string{
		"META-INF/maven/com.example.longer/multi/pom.xml": "long",
		"META-INF/maven/a/b/pom.xml":                      "short",
		"META-INF/maven/a/c/pom.xml":                      "short-second",
	})

	// Shortest entry path wins; among equal lengths the lexicographically
	// smaller one does. Run twice to pin the determinism down.
	for i := 0; i < 2; i++ {
		path, cleanup, err := locateDescriptor(Candidate{Path: jar, Kind: KindJar})
		if err != nil {
			t.Fatalf("locateDescriptor() error = %v", err)
		}
		if got := readAll(t, path); got != "short" {
			t.Errorf("run %d picked descriptor content %q, want %q", i, got, "short")
		}
		cleanup()
	}
}

func TestLocateDescriptorSiblingFallback(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string) Candidate
	}{
		{
			name: "archive without embedded descriptor",
			setup: func(t *testing.T, dir string) Candidate {
				jar := makeArchive(t, dir, "plain-1.0.jar", map[string]string{
					"META-INF/MANIFEST.MF": "Manifest-Version: 1.0",
				})
				return Candidate{Path: jar, Kind: KindJar}
			},
		},
		{
			name: "archive that cannot be opened",
			setup: func(t *testing.T, dir string) Candidate {
				return Candidate{Path: touch(t, dir, "plain-1.0.jar"), Kind: KindJar}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			c := tt.setup(t, dir)
			sibling := touch(t, dir, "plain-1.0.pom")

			path, cleanup, err := locateDescriptor(c)
			if err != nil {
				t.Fatalf("locateDescriptor() error = %v", err)
			}
			defer cleanup()
			if path != sibling {
				t.Errorf("locateDescriptor() = %q, want sibling %q", path, sibling)
			}
		})
	}
}

func TestLocateDescriptorNotFound(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string) Candidate
	}{
		{
			name: "archive with no descriptor anywhere",
			setup: func(t *testing.T, dir string) Candidate {
				jar := makeArchive(t, dir, "lonely-1.0.jar", map[string]string{
					"com/example/Lonely.class": "bytes",
				})
				return Candidate{Path: jar, Kind: KindJar}
			},
		},
		{
			name: "unopenable archive with no sibling",
			setup: func(t *testing.T, dir string) Candidate {
				return Candidate{Path: touch(t, dir, "garbage-1.0.zip"), Kind: KindZip}
			},
		},
		{
			name: "descriptor entry outside the metadata convention",
			setup: func(t *testing.T, dir string) Candidate {
				jar := makeArchive(t, dir, "offbeat-1.0.jar", map[string]string{
					"pom.xml":                "<project/>",
					"META-INF/maven/pom.xml": "<project/>",
				})
				return Candidate{Path: jar, Kind: KindJar}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			c := tt.setup(t, dir)

			_, cleanup, err := locateDescriptor(c)
			defer cleanup()
			if !errors.Is(err, ErrNoDescriptor) {
				t.Errorf("locateDescriptor() error = %v, want ErrNoDescriptor", err)
			}
		})
	}
}
