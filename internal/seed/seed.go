// SPDX-License-Identifier: MPL-2.0

package seed

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"reposeed/pkg/coords"
	"reposeed/pkg/pom"
	"reposeed/pkg/repo"
)

type (
	// DescriptorParser loads a descriptor file into its structured model.
	// pom.Parse satisfies this via ParserFunc; tests substitute their own.
	DescriptorParser interface {
		Parse(path string) (*pom.Model, error)
	}

	// RepositoryInstaller commits one candidate's finalized record set into
	// a repository. repo.Installer is the real implementation; the dry-run
	// command substitutes a recording one.
	RepositoryInstaller interface {
		Install(records []repo.Artifact) error
	}

	// ParserFunc adapts a plain parse function to the DescriptorParser
	// interface.
	ParserFunc func(path string) (*pom.Model, error)

	// Options configures a run.
	Options struct {
		// Recursive descends into subdirectories of the scan root.
		Recursive bool
	}

	// Seeder drives the pipeline: walk, locate, parse, resolve, plan,
	// install. Both collaborator capabilities are injected at construction;
	// the seeder never builds them itself.
	Seeder struct {
		parser    DescriptorParser
		installer RepositoryInstaller
		logger    *log.Logger
		opts      Options
	}

	// Install is one candidate's committed (or, under a recording
	// installer, planned) record set.
	Install struct {
		Candidate Candidate
		Identity  coords.Identity
		Records   []repo.Artifact
	}

	// Result summarizes a run: what was installed and which recoverable
	// conditions were observed along the way.
	Result struct {
		Installs    []Install
		Diagnostics []Diagnostic
	}
)

// Parse implements DescriptorParser.
func (f ParserFunc) Parse(path string) (*pom.Model, error) { return f(path) }

// Files returns the total number of records across all installs.
func (r Result) Files() int {
	n := 0
	for _, in := range r.Installs {
		n += len(in.Records)
	}
	return n
}

// New returns a Seeder using the given collaborators. A nil logger discards
// diagnostics logging (the structured diagnostics in Result are unaffected).
func New(parser DescriptorParser, installer RepositoryInstaller, logger *log.Logger, opts Options) *Seeder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Seeder{parser: parser, installer: installer, logger: logger, opts: opts}
}

// Run scans root and processes every candidate found, one at a time, in
// listing order. Recoverable conditions (missing root, empty scan, a
// candidate without a descriptor, a superseded bare descriptor) are logged,
// recorded as diagnostics and skipped. Any other failure — an unreadable or
// malformed descriptor, incomplete coordinates, an install error — aborts
// the run immediately; Result then holds whatever completed before the
// failure. There is no partial-failure aggregation across candidates.
func (s *Seeder) Run(root string) (Result, error) {
	var res Result

	candidates, walkDiags := Walk(root, s.opts.Recursive)
	res.Diagnostics = append(res.Diagnostics, walkDiags...)
	for _, d := range walkDiags {
		s.logger.Warn(d.Message, "path", d.Path)
	}

	if len(candidates) == 0 {
		s.logger.Warn("artifacts not found", "root", root)
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeNoArtifacts,
			Message:  "artifacts not found",
			Path:     root,
		})
		return res, nil
	}

	for _, c := range candidates {
		installed, diags, err := s.process(c)
		res.Diagnostics = append(res.Diagnostics, diags...)
		if err != nil {
			return res, err
		}
		if installed != nil {
			res.Installs = append(res.Installs, *installed)
		}
	}
	return res, nil
}

// process takes one candidate through locate, parse, resolve, plan and
// install. A nil Install with a nil error means the candidate was skipped.
func (s *Seeder) process(c Candidate) (*Install, []Diagnostic, error) {
	descriptorPath, cleanup, err := locateDescriptor(c)
	if err != nil {
		s.logger.Warn("descriptor not found, skipping", "file", c.Path)
		return nil, []Diagnostic{{
			Severity: SeverityWarning,
			Code:     CodeDescriptorNotFound,
			Message:  "descriptor not found, skipping",
			Path:     c.Path,
			Cause:    err,
		}}, nil
	}
	defer cleanup()

	model, err := s.parser.Parse(descriptorPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load descriptor for %s: %w", c.Path, err)
	}

	identity, err := coords.Resolve(model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve identity of %s: %w", c.Path, err)
	}
	s.logger.Debug("resolved candidate", "file", c.Path, "coordinates", identity.String())

	records := buildPlan(c, descriptorPath, identity)
	if len(records) == 0 {
		s.logger.Debug("descriptor superseded by sibling archive, skipping", "file", c.Path)
		return nil, []Diagnostic{{
			Severity: SeverityInfo,
			Code:     CodeDescriptorSuperseded,
			Message:  "descriptor superseded by sibling archive, skipping",
			Path:     c.Path,
		}}, nil
	}

	if err := s.installer.Install(records); err != nil {
		return nil, nil, fmt.Errorf("failed to install %s: %w", c.Path, err)
	}
	s.logger.Info("installed", "coordinates", identity.String(), "files", len(records))

	return &Install{Candidate: c, Identity: identity, Records: records}, nil, nil
}
