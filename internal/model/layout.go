package model

// Layout captures the convention-based directory layout the aggregator
// operates on. Every operation receives it together with an explicit scan
// root, so nothing depends on the process working directory.
type Layout struct {
	// VendorDir is the directory under the scan root holding one level of
	// group directories, each holding one level of subpackage directories.
	VendorDir Path

	// ConfigDir is the destination directory for aggregated files,
	// relative to the scan root.
	ConfigDir Path

	// SpecimenPaths are the candidate specimen locations checked inside
	// each subpackage directory, and at the scan root for the main
	// specimen. The first existing candidate wins.
	SpecimenPaths []Path

	// Ext is the extension used for generated file names.
	Ext string

	// Manifest enables seed-file bootstrap and includes-manifest output.
	Manifest bool
}

// DefaultLayout returns the conventional layout: composer-style vendor
// tree, config/ destination, php artifacts, manifest enabled. Both
// specimen naming conventions are checked.
func DefaultLayout() Layout {
	return Layout{
		VendorDir:     "vendor",
		ConfigDir:     "config",
		SpecimenPaths: []Path{"config/specimen.php", "resources/configSpecimen.php"},
		Ext:           "php",
		Manifest:      true,
	}
}

// SeedName returns the name of the initially-empty configuration file
// placed in the destination so consumers can reference it before any
// specimen exists.
func (l Layout) SeedName() string {
	return "." + fixedMarker + "." + l.Ext
}

// ManifestName returns the name of the includes manifest.
func (l Layout) ManifestName() string {
	return "." + fixedMarker + ".includes." + l.Ext
}
