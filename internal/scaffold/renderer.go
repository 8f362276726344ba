package scaffold

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// renderTemplate parses an embedded template and executes it against the
// project configuration. Strict mode: a reference to a field that does not
// exist on ProjectConfig is a render error, never silent empty output.
func renderTemplate(name string, cfg *ProjectConfig) ([]byte, error) {
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// fromTemplate adapts an embedded template into a RenderFunc.
func fromTemplate(name string) RenderFunc {
	return func(cfg *ProjectConfig) ([]byte, error) {
		return renderTemplate(name, cfg)
	}
}

// emptyFile renders a zero-length placeholder (e.g. __init__.py, .gitkeep).
func emptyFile(*ProjectConfig) ([]byte, error) {
	return nil, nil
}
