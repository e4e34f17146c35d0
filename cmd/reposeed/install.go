// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"reposeed/internal/config"
	"reposeed/internal/seed"
	"reposeed/pkg/pom"
	"reposeed/pkg/repo"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	installRepository string
	installLayout     string
	installRecursive  bool

	// installCmd scans a directory and installs everything found there.
	installCmd = &cobra.Command{
		Use:   "install <dir>",
		Short: "Install artifacts from a directory into the local repository",
		Long: `Install artifacts from a directory into the local repository.

Scans <dir> for .jar, .zip and .pom files, resolves the Maven coordinates
of each one from its embedded or sibling POM descriptor, and installs it
under the repository root.

An archive without a usable descriptor is skipped with a warning and the
rest of the batch still installs. A descriptor that cannot be parsed,
incomplete coordinates, or a failed write aborts the run.

Examples:
  reposeed install ./lib                     Install artifacts found in ./lib
  reposeed install ./lib -R                  Also descend into subdirectories
  reposeed install ./lib -r /srv/repo        Install into /srv/repo
  reposeed install ./lib --layout enhanced   Accept the legacy layout name`,
		Args: cobra.ExactArgs(1),
		RunE: runInstall,
	}
)

func init() {
	installCmd.Flags().StringVarP(&installRepository, "repository", "r", "", "repository root directory (defaults to the configured repository)")
	installCmd.Flags().StringVar(&installLayout, "layout", "", "repository layout: default or enhanced (defaults to the configured layout)")
	installCmd.Flags().BoolVarP(&installRecursive, "recursive", "R", false, "descend into subdirectories of <dir>")
}

// runSettings are the effective inputs of one install or plan run after
// merging flag values over the loaded configuration.
type runSettings struct {
	target    repo.Target
	recursive bool
}

// resolveRunSettings merges flag values over the loaded configuration.
// Non-empty flags win; configuration supplies the rest. The recursive flag
// follows the same rule as the root verbose flag: setting it cannot be
// undone by config, only added to.
func resolveRunSettings(repository, layout string, recursive bool) runSettings {
	cfg := config.Get()

	settings := runSettings{
		target: repo.Target{
			Root: string(cfg.Repository),
			// config.LayoutKind and repo.Layout are distinct types on
			// purpose; the cast happens once, here at the command boundary.
			Layout: repo.Layout(cfg.Layout),
		},
		recursive: recursive || cfg.Recursive,
	}
	if repository != "" {
		settings.target.Root = repository
	}
	if layout != "" {
		settings.target.Layout = repo.Layout(layout)
	}
	return settings
}

// newRunLogger builds the structured diagnostics logger handed to the
// seeder. The styled stdout report is the primary output, so the log stream
// stays quiet unless --verbose raises it to debug.
func newRunLogger() *log.Logger {
	level := log.ErrorLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "reposeed", Level: level})
}

// printSkipLines writes one warning line per warning diagnostic and returns
// how many lines were written.
func printSkipLines(w io.Writer, diags []seed.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity != seed.SeverityWarning {
			continue
		}
		line := d.Message
		if d.Path != "" {
			line += ": " + d.Path
		}
		fmt.Fprintf(w, "%s %s\n", WarningStyle.Render("!"), line)
		n++
	}
	return n
}

func runInstall(cmd *cobra.Command, args []string) error {
	root := args[0]
	settings := resolveRunSettings(installRepository, installLayout, installRecursive)

	installer, err := repo.NewInstaller(settings.target)
	if err != nil {
		return failRun(cmd, err, root)
	}

	seeder := seed.New(seed.ParserFunc(pom.Parse), installer, newRunLogger(), seed.Options{Recursive: settings.recursive})
	res, runErr := seeder.Run(root)

	stdout := cmd.OutOrStdout()
	wrote := false
	for _, in := range res.Installs {
		fmt.Fprintf(stdout, "%s %s %s\n",
			SuccessStyle.Render("✓"),
			in.Identity.String(),
			SubtitleStyle.Render(fmt.Sprintf("(%d files)", len(in.Records))),
		)
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
	fmt.Fprintf(stdout, "Installed %d artifacts (%d files) into %s\n",
		len(res.Installs), res.Files(), installer.Target().Root)
	return nil
}
