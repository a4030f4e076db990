package domain

import (
	"bytes"

	m "github.com/przeslijmi/configready/internal/model"
)

// artifactHeader opens every generated artifact. The seed configuration
// file contains nothing else.
const artifactHeader = "<?php\n\n// File generated by configready. Do not edit, it will be overwritten.\n"

// renderManifest produces the includes manifest: the shared header
// followed by one include statement per specimen in discovery order. The
// manifest is replaced wholesale on every run, never appended to.
func renderManifest(specimens []m.Specimen) []byte {
	var buf bytes.Buffer

	buf.WriteString(artifactHeader)
	buf.WriteString("\n")

	for _, specimen := range specimens {
		buf.WriteString("include __DIR__ . '/" + specimen.TargetName + "';\n")
	}

	return buf.Bytes()
}
