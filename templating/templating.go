// Package templating renders metadata templates used for the meta text on
// presentation slides.
package templating

import (
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// RenderMetadata expands a template string against a song's metadata tags.
// Tags are addressed by key ("{{.title}} ({{.author}})"); missing keys
// render as empty strings so a template works across songs with different
// tag sets. The sprig function map is available inside templates.
func RenderMetadata(templateString string, metadata map[string]string) (string, error) {
	tmpl, err := template.New("metadata").Funcs(sprig.FuncMap()).Option("missingkey=zero").Parse(templateString)
	if err != nil {
		return "", fmt.Errorf("unable to parse metadata template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return "", fmt.Errorf("unable to render metadata template: %w", err)
	}
	return buf.String(), nil
}
