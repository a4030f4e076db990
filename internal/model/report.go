package model

// RunReport summarizes one aggregation run for display.
type RunReport struct {
	// Copied holds specimens whose target file was created by this run.
	Copied []Specimen

	// Skipped holds specimens whose target file already existed and was
	// left untouched.
	Skipped []Specimen

	// ManifestPath is the written manifest location, empty when manifest
	// output is disabled.
	ManifestPath Path
}
