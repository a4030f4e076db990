package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/przeslijmi/configready/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySpecimens prints the discovered specimens as a table.
func (s *SimpleUI) DisplaySpecimens(specimens []m.Specimen) error {
	s.printf("\n%s", renderSpecimenTable(specimens))

	return nil
}

// DisplayRunReport prints copy counts and the manifest location.
func (s *SimpleUI) DisplayRunReport(report m.RunReport) error {
	s.printf("copied %d specimen(s), %d already present\n", len(report.Copied), len(report.Skipped))

	if report.ManifestPath != "" {
		s.printf("manifest written to %s\n", report.ManifestPath)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Print(fmt.Sprintf(format, args...))
}

func renderSpecimenTable(specimens []m.Specimen) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Group", "Subpackage", "Target", "Origin"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, specimen := range specimens {
		table.Append([]string{specimen.GroupID, specimen.SubID, specimen.TargetName, string(specimen.Origin)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(specimens)), "", "", "",
	})

	table.Render()

	return tableBuffer.String()
}
