// Package model defines the records shared across the configready layers.
package model

// Path represents a file system path.
type Path string

// MainGroup is the sentinel group and subpackage name assigned to the
// specimen owned by the application itself rather than a vendored package.
const MainGroup = "main"

// fixedMarker is the marker segment shared by every generated file name.
const fixedMarker = "config"

// Specimen is a package-provided configuration template found during a
// scan. Discovery constructs it once; it is never mutated afterwards.
type Specimen struct {
	GroupID    string `yaml:"group"`
	SubID      string `yaml:"subpackage"`
	Origin     Path   `yaml:"origin"`
	TargetName string `yaml:"target"`
}

// NewSpecimen builds a Specimen with its target name precomputed.
func NewSpecimen(groupID, subID string, origin Path, ext string) Specimen {
	return Specimen{
		GroupID:    groupID,
		SubID:      subID,
		Origin:     origin,
		TargetName: TargetName(groupID, subID, ext),
	}
}

// TargetName computes the destination file name for a specimen. It is a
// pure function of the group and subpackage IDs, so a re-run lands on the
// same destination slot and the copy stays idempotent.
func TargetName(groupID, subID, ext string) string {
	return "." + fixedMarker + "." + groupID + "." + subID + "." + ext
}
