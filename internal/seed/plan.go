// SPDX-License-Identifier: MPL-2.0

package seed

import (
	"os"

	"reposeed/pkg/coords"
	"reposeed/pkg/repo"
)

// buildPlan turns one located and resolved candidate into its install
// records.
//
// Archives always produce two records: the archive itself, typed by its
// extension, and the descriptor as a sub-artifact under the same coordinates
// (type pom, empty classifier). A bare descriptor produces one record —
// unless an archive with the same base name sits next to it, in which case
// it produces none: that archive's own install will carry the descriptor,
// and installing it twice would be redundant.
//
// Sibling existence is checked against the filesystem at call time, never
// cached across candidates.
func buildPlan(c Candidate, descriptorPath string, id coords.Identity) []repo.Artifact {
	if c.Kind.IsArchive() {
		return []repo.Artifact{
			{
				GroupID:    id.GroupID,
				ArtifactID: id.ArtifactID,
				Version:    id.Version,
				Type:       c.Kind.String(),
				File:       c.Path,
			},
			{
				GroupID:    id.GroupID,
				ArtifactID: id.ArtifactID,
				Version:    id.Version,
				Type:       "pom",
				File:       descriptorPath,
			},
		}
	}

	base := stripExt(c.Path)
	if fileExists(base+".jar") || fileExists(base+".zip") {
		return nil
	}

	return []repo.Artifact{{
		GroupID:    id.GroupID,
		ArtifactID: id.ArtifactID,
		Version:    id.Version,
		Type:       "pom",
		File:       c.Path,
	}}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
