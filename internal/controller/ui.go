// Package controller provides output adapters for displaying aggregation
// results.
package controller

import (
	m "github.com/przeslijmi/configready/internal/model"
)

// UI defines the interface for presenting discovery and run results.
// Implementations can use different output methods (table, yaml, quiet).
type UI interface {
	DisplaySpecimens(specimens []m.Specimen) error
	DisplayRunReport(report m.RunReport) error
}
