// Package domain implements the specimen aggregation workflow.
package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/przeslijmi/configready/internal/adapter"
	m "github.com/przeslijmi/configready/internal/model"
)

// Aggregator surfaces package-provided configuration specimens into the
// central configuration directory.
type Aggregator interface {
	// Discover walks root/vendor two levels deep (groups, then
	// subpackages) plus the scan root itself and returns every specimen
	// found, in discovery order.
	Discover(root m.Path, layout m.Layout) ([]m.Specimen, error)

	// Run performs a full aggregation: destination bootstrap, discovery,
	// copy, and manifest output. Any IO error aborts the run; there is no
	// partial-success mode.
	Run(root m.Path, layout m.Layout) (m.RunReport, error)

	// DeleteCaller removes the one-shot trigger file that invoked the
	// aggregation. A missing file is a silent no-op.
	DeleteCaller(path m.Path) error
}

type aggregator struct {
	fs adapter.ConfigFSAdapter
}

// NewAggregator constructs an Aggregator backed by the given filesystem
// adapter.
func NewAggregator(fsAdapter adapter.ConfigFSAdapter) Aggregator {
	return &aggregator{fs: fsAdapter}
}

// Discover walks the vendor tree and the scan root for specimens.
func (a *aggregator) Discover(root m.Path, layout m.Layout) ([]m.Specimen, error) {
	vendorRoot := a.fs.JoinPath(string(root), string(layout.VendorDir))

	groups, err := a.fs.ListSubdirs(vendorRoot)
	if err != nil {
		return nil, fmt.Errorf("scan vendor root %s: %w", vendorRoot, err)
	}

	var specimens []m.Specimen

	// Two different origins mapping to one target slot cannot happen
	// under the one-specimen-per-package scan, but a relaxed layout could
	// produce it, so it is rejected instead of silently keeping the first.
	seen := make(map[string]m.Path)

	record := func(groupID, subID string, origin m.Path) error {
		specimen := m.NewSpecimen(groupID, subID, origin, layout.Ext)
		if prev, ok := seen[specimen.TargetName]; ok {
			return fmt.Errorf("specimens %s and %s both map to target %s", prev, origin, specimen.TargetName)
		}

		seen[specimen.TargetName] = origin
		specimens = append(specimens, specimen)

		slog.Debug("discovered specimen", "group", groupID, "subpackage", subID, "origin", origin)

		return nil
	}

	for _, group := range groups {
		groupDir := a.fs.JoinPath(string(vendorRoot), group)

		subs, err := a.fs.ListSubdirs(groupDir)
		if err != nil {
			return nil, fmt.Errorf("scan group %s: %w", groupDir, err)
		}

		for _, sub := range subs {
			subDir := a.fs.JoinPath(string(groupDir), sub)

			origin, found, err := a.findSpecimen(subDir, layout)
			if err != nil {
				return nil, err
			}

			if !found {
				continue
			}

			if err := record(group, sub, origin); err != nil {
				return nil, err
			}
		}
	}

	// The application's own specimen lives at the scan root and is
	// discovered independently of the vendor tree.
	origin, found, err := a.findSpecimen(root, layout)
	if err != nil {
		return nil, err
	}

	if found {
		if err := record(m.MainGroup, m.MainGroup, origin); err != nil {
			return nil, err
		}
	}

	return specimens, nil
}

// findSpecimen checks the candidate relative paths inside dir and returns
// the first one that exists. Absence is normal control flow.
func (a *aggregator) findSpecimen(dir m.Path, layout m.Layout) (m.Path, bool, error) {
	for _, rel := range layout.SpecimenPaths {
		candidate := a.fs.JoinPath(string(dir), string(rel))

		ok, err := a.fs.FileExists(candidate)
		if err != nil {
			return "", false, fmt.Errorf("check specimen %s: %w", candidate, err)
		}

		if ok {
			return candidate, true, nil
		}
	}

	return "", false, nil
}

// Run performs a full aggregation pass.
func (a *aggregator) Run(root m.Path, layout m.Layout) (m.RunReport, error) {
	destDir := a.fs.JoinPath(string(root), string(layout.ConfigDir))
	if err := a.fs.MkdirAll(destDir, 0o755); err != nil {
		return m.RunReport{}, fmt.Errorf("create destination %s: %w", destDir, err)
	}

	if layout.Manifest {
		seed := a.fs.JoinPath(string(destDir), layout.SeedName())

		created, err := a.fs.WriteFileIfAbsent(seed, []byte(artifactHeader), 0o644)
		if err != nil {
			return m.RunReport{}, fmt.Errorf("seed destination: %w", err)
		}

		if created {
			slog.Info("seeded empty configuration", "path", seed)
		}
	}

	specimens, err := a.Discover(root, layout)
	if err != nil {
		return m.RunReport{}, err
	}

	var report m.RunReport

	for _, specimen := range specimens {
		target := a.fs.JoinPath(string(destDir), specimen.TargetName)

		copied, err := a.fs.CopyFileIfAbsent(specimen.Origin, target)
		if err != nil {
			return m.RunReport{}, err
		}

		if copied {
			slog.Info("copied specimen", "origin", specimen.Origin, "target", target)
			report.Copied = append(report.Copied, specimen)
		} else {
			slog.Debug("target already present", "target", target)
			report.Skipped = append(report.Skipped, specimen)
		}
	}

	if layout.Manifest {
		manifest := a.fs.JoinPath(string(destDir), layout.ManifestName())
		if err := a.fs.WriteFile(manifest, renderManifest(specimens), 0o644); err != nil {
			return m.RunReport{}, fmt.Errorf("write manifest %s: %w", manifest, err)
		}

		report.ManifestPath = manifest
	}

	return report, nil
}

// DeleteCaller removes the trigger file so a bootstrap script is not
// re-invoked on every subsequent start.
func (a *aggregator) DeleteCaller(path m.Path) error {
	if err := a.fs.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("delete caller %s: %w", path, err)
	}

	slog.Info("deleted caller", "path", path)

	return nil
}
