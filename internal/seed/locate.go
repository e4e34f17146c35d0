// SPDX-License-Identifier: MPL-2.0

package seed

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// ErrNoDescriptor is returned by locateDescriptor when a candidate has no
// embedded descriptor and no sibling .pom file. It is a recoverable,
// per-candidate condition.
var ErrNoDescriptor = errors.New("no descriptor found")

// descriptorEntryPattern matches the conventional location of a project
// descriptor inside a built archive: META-INF/maven/<group>/<artifact>/pom.xml.
var descriptorEntryPattern = regexp.MustCompile(`^META-INF/maven/.*/pom\.xml$`)

// locateDescriptor finds the descriptor for a candidate.
//
// A bare descriptor candidate is its own descriptor. For archives, the
// archive's entries are searched first; a match is extracted to a temporary
// file whose lifetime is bounded by the returned cleanup func — callers must
// invoke it once the candidate's processing (including the install attempt)
// is finished. When the archive has no usable embedded descriptor, a sibling
// file with the same base name and the .pom extension is used instead.
//
// The cleanup func is never nil. An unopenable archive is treated the same
// as one without a descriptor entry; only ErrNoDescriptor is ever returned.
func locateDescriptor(c Candidate) (string, func(), error) {
	noop := func() {}

	if c.Kind == KindPom {
		return c.Path, noop, nil
	}

	if tmpPath, ok := extractEmbedded(c.Path); ok {
		return tmpPath, func() { _ = os.Remove(tmpPath) }, nil
	}

	sibling := stripExt(c.Path) + ".pom"
	if info, err := os.Stat(sibling); err == nil && !info.IsDir() {
		return sibling, noop, nil
	}

	return "", noop, ErrNoDescriptor
}

// extractEmbedded searches an archive for a descriptor entry and extracts it
// to a temporary file. When several entries match, the one with the shortest
// path wins, ties broken lexicographically, so repeated runs over the same
// archive always pick the same descriptor. Any archive or extraction error
// collapses to "not found"; the sibling fallback still gets its chance.
func extractEmbedded(archivePath string) (string, bool) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", false
	}
	defer func() { _ = reader.Close() }()

	var best *zip.File
	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !descriptorEntryPattern.MatchString(file.Name) {
			continue
		}
		if best == nil || len(file.Name) < len(best.Name) ||
			(len(file.Name) == len(best.Name) && file.Name < best.Name) {
			best = file
		}
	}
	if best == nil {
		return "", false
	}

	tmpPath, err := extractEntry(best, filepath.Base(stripExt(archivePath)))
	if err != nil {
		return "", false
	}
	return tmpPath, true
}

// extractEntry copies one archive entry into a fresh temporary file and
// returns its path.
func extractEntry(entry *zip.File, baseName string) (path string, err error) {
	rc, err := entry.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	tmp, err := os.CreateTemp("", baseName+"-*.pom")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath) // Best-effort cleanup
		}
	}()
	defer func() {
		if closeErr := tmp.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if _, err = io.Copy(tmp, rc); err != nil {
		return "", err
	}
	return tmpPath, nil
}
