// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"reposeed/internal/config"
	"reposeed/internal/issue"
	"reposeed/internal/seed"
	"reposeed/pkg/coords"
	"reposeed/pkg/pom"
	"reposeed/pkg/repo"

	"github.com/spf13/cobra"
)

// classifyRunError maps a fatal run error onto its issue catalog entry.
// It returns 0 when the error does not belong to a known failure class.
func classifyRunError(err error) issue.Id {
	switch {
	case errors.Is(err, repo.ErrUnknownLayout):
		return issue.UnknownLayoutId
	case errors.Is(err, pom.ErrUnreadable), errors.Is(err, pom.ErrMalformed):
		return issue.DescriptorParseErrorId
	case errors.Is(err, coords.ErrIncomplete):
		return issue.IncompleteCoordinatesId
	case errors.Is(err, repo.ErrInstall):
		// InstallError carries its filesystem cause outside the unwrap
		// chain, so permission failures need an explicit look.
		var installErr *repo.InstallError
		if errors.As(err, &installErr) && errors.Is(installErr.Cause, os.ErrPermission) {
			return issue.PermissionDeniedId
		}
		return issue.InstallFailedId
	default:
		return 0
	}
}

// wrapRunError lifts a fatal run error into an actionable block for display:
// the operation names the run, the suggestion matches the failure class.
// Errors that are already actionable pass through unchanged.
func wrapRunError(err error, root string) *issue.ActionableError {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae
	}

	ctx := issue.NewErrorContext().
		WithOperation("seed repository").
		WithResource(root).
		Wrap(err)

	switch {
	case errors.Is(err, repo.ErrUnknownLayout):
		ctx.WithSuggestion("Use --layout default, or the legacy alias 'enhanced'")
	case errors.Is(err, pom.ErrUnreadable):
		ctx.WithSuggestion("Check that the descriptor file is readable and not truncated")
	case errors.Is(err, pom.ErrMalformed):
		ctx.WithSuggestion("Fix the descriptor XML, then re-check with 'reposeed plan'")
	case errors.Is(err, coords.ErrIncomplete):
		ctx.WithSuggestion("Declare the missing coordinates in the POM or its <parent> block")
	case errors.Is(err, repo.ErrInstall):
		ctx.WithSuggestion("Check that the repository root is writable and has free space")
	}
	return ctx.Build()
}

// renderIssueCard writes one issue catalog card to w using the configured
// color scheme. Render failures are swallowed; a missing card must never
// mask the run output.
func renderIssueCard(w io.Writer, id issue.Id) {
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(string(config.Get().UI.ColorScheme))
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// renderScanIssueCard shows the issue card matching the run's dominant
// recoverable condition, but only when the run installed nothing; once at
// least one candidate succeeds the per-file skip lines are signal enough.
func renderScanIssueCard(w io.Writer, res seed.Result) {
	if len(res.Installs) > 0 {
		return
	}

	var id issue.Id
	for _, d := range res.Diagnostics {
		switch d.Code {
		case seed.CodeRootNotFound:
			renderIssueCard(w, issue.RootNotFoundId)
			return
		case seed.CodeNoArtifacts:
			if id == 0 {
				id = issue.ArtifactsNotFoundId
			}
		case seed.CodeDescriptorNotFound:
			if id == 0 {
				id = issue.DescriptorNotFoundId
			}
		}
	}
	renderIssueCard(w, id)
}

// renderRunError reports a fatal run error on w: the issue card for its
// failure class when one is recognized, then the error as an actionable
// block. Verbose mode appends the full cause chain.
func renderRunError(w io.Writer, err error, root string, verboseMode bool) {
	renderIssueCard(w, classifyRunError(err))
	fmt.Fprintln(w, ErrorStyle.Render("✗ ")+wrapRunError(err, root).Format(verboseMode))
}

// failRun reports a fatal run error and converts it into a silent non-zero
// exit: the styled report is the error output, so cobra's usage block and
// the framework's own error line are suppressed.
func failRun(cmd *cobra.Command, err error, root string) error {
	renderRunError(cmd.ErrOrStderr(), err, root, verbose)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: 1}
}
