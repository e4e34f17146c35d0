// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"reposeed/internal/seed"
	"reposeed/pkg/pom"
	"reposeed/pkg/repo"

	"github.com/spf13/cobra"
)

var (
	planRepository string
	planLayout     string
	planRecursive  bool

	// planCmd runs the install pipeline against a recording installer, so
	// the run is dry: records are computed and printed, nothing is written.
	planCmd = &cobra.Command{
		Use:   "plan <dir>",
		Short: "Show what install would do, without writing anything",
		Long: `Show what install would do, without writing anything.

Runs the same scan and descriptor resolution as 'reposeed install' but
replaces the repository installer with a recorder, then prints every
install record the run produced: coordinates followed by the
repository-relative paths the files would land at.

Examples:
  reposeed plan ./lib            Preview an install of ./lib
  reposeed plan ./lib -R         Preview a recursive install`,
		Args: cobra.ExactArgs(1),
		RunE: runPlan,
	}
)

func init() {
	planCmd.Flags().StringVarP(&planRepository, "repository", "r", "", "repository root directory (defaults to the configured repository)")
	planCmd.Flags().StringVar(&planLayout, "layout", "", "repository layout: default or enhanced (defaults to the configured layout)")
	planCmd.Flags().BoolVarP(&planRecursive, "recursive", "R", false, "descend into subdirectories of <dir>")
}

// recordingInstaller satisfies seed.RepositoryInstaller without touching the
// filesystem. The seeder treats it exactly like the real installer.
type recordingInstaller struct {
	batches [][]repo.Artifact
}

// Install records the batch and reports success.
func (r *recordingInstaller) Install(records []repo.Artifact) error {
	r.batches = append(r.batches, records)
	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	root := args[0]
	settings := resolveRunSettings(planRepository, planLayout, planRecursive)

	// Constructing the real installer validates and normalizes the target
	// exactly as install would, so plan rejects the same inputs. Only the
	// recorder is handed to the seeder.
	installer, err := repo.NewInstaller(settings.target)
	if err != nil {
		return failRun(cmd, err, root)
	}
	target := installer.Target()

	recorder := &recordingInstaller{}
	seeder := seed.New(seed.ParserFunc(pom.Parse), recorder, newRunLogger(), seed.Options{Recursive: settings.recursive})
	res, runErr := seeder.Run(root)

	stdout := cmd.OutOrStdout()
	wrote := false
	for _, in := range res.Installs {
		fmt.Fprintf(stdout, "%s %s %s\n",
			CmdStyle.Render("→"),
			in.Identity.String(),
			SubtitleStyle.Render(fmt.Sprintf("(%d files)", len(in.Records))),
		)
		for _, rec := range in.Records {
			fmt.Fprintf(stdout, "    %s\n", VerboseStyle.Render(rec.RelPath()))
		}
		wrote = true
	}
	if printSkipLines(stdout, res.Diagnostics) > 0 {
		wrote = true
	}

	if runErr != nil {
		return failRun(cmd, runErr, root)
	}

	renderScanIssueCard(cmd.ErrOrStderr(), res)

	if wrote {
		fmt.Fprintln(stdout)
	}
	fmt.Fprintf(stdout, "Would install %d artifacts (%d files) into %s %s\n",
		len(res.Installs), res.Files(), target.Root, SubtitleStyle.Render("(dry run, nothing written)"))
	return nil
}
