// SPDX-License-Identifier: MPL-2.0

package repo

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrInstall is the sentinel error wrapped by InstallError.
	ErrInstall = errors.New("artifact installation failed")
	// ErrNoRecords is returned when Install is called with an empty record
	// set. Callers are expected to short-circuit empty plans before invoking
	// the installer.
	ErrNoRecords = errors.New("no artifact records to install")
)

type (
	// Installer commits artifact records into a local repository. Construct
	// one per invocation with NewInstaller; it is not safe for concurrent
	// use against the same target.
	Installer struct {
		target Target
	}

	// InstallError is returned when committing an artifact record fails.
	// It wraps ErrInstall for errors.Is() compatibility; the underlying
	// filesystem cause is carried in Cause.
	InstallError struct {
		Artifact Artifact
		Cause    error
	}
)

// Error implements the error interface for InstallError.
func (e *InstallError) Error() string {
	return fmt.Sprintf("failed to install %s: %v", e.Artifact.Coordinates(), e.Cause)
}

// Unwrap returns ErrInstall for errors.Is() compatibility.
func (e *InstallError) Unwrap() error { return ErrInstall }

// NewInstaller resolves the target's layout and returns an Installer bound
// to it. The legacy "enhanced" layout is normalized to "default" here, once,
// so every subsequent install sees the same resolved target. An empty layout
// defaults to "default"; anything else unrecognized is rejected.
func NewInstaller(target Target) (*Installer, error) {
	switch target.Layout {
	case "", LayoutDefault, LayoutEnhanced:
		target.Layout = LayoutDefault
	default:
		return nil, &UnknownLayoutError{Value: target.Layout}
	}
	return &Installer{target: target}, nil
}

// Target returns the resolved repository target the installer writes to.
func (ins *Installer) Target() Target { return ins.target }

// Install commits one candidate's record set into the repository. Records
// land at their layout paths under the target root; an existing file at the
// destination is replaced. The write is staged through a temporary file in
// the destination directory and renamed into place so a crash never leaves
// a half-written artifact at its final path.
func (ins *Installer) Install(records []Artifact) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	for _, rec := range records {
		dest := filepath.Join(ins.target.Root, rec.RelPath())
		if err := commitFile(rec.File, dest); err != nil {
			return &InstallError{Artifact: rec, Cause: err}
		}
	}
	return nil
}

// commitFile copies src to dest atomically: the contents are staged in a
// temporary file next to dest and renamed over it.
func commitFile(src, dest string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	destDir := filepath.Dir(dest)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(destDir, "."+filepath.Base(dest)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath) // Best-effort cleanup
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, dest)
}
