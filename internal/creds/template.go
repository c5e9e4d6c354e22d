// Where: internal/creds/template.go
// What: Custom output rendering through text/template with sprig functions.
// Why: Let non-POSIX shells and tooling consume credentials without post-processing.
package creds

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Render executes the given template against the credentials. The template
// sees the exported fields of Credentials and the sprig function map.
func (c Credentials) Render(text string) (string, error) {
	tmpl, err := template.New("credentials").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse output template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("render output template: %w", err)
	}
	return buf.String(), nil
}
