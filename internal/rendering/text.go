package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/card.txt.tmpl
var defaultCardTemplate string

// RenderText renders an embed as a plain-text card. An empty templatePath
// uses the built-in template; otherwise the file is parsed as a
// text/template with the embed as its data.
func RenderText(e *Embed, templatePath string) (string, error) {
	if e == nil {
		return "", &RenderError{Message: "embed is nil"}
	}

	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, e); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate reads and parses a card template, falling back to the
// built-in one when templatePath is empty.
func parseTemplate(templatePath string) (*template.Template, error) {
	content := defaultCardTemplate
	if templatePath != "" {
		raw, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(raw)
	}

	tmpl, err := template.New("card").Funcs(template.FuncMap{
		"indent": indent,
		"escape": EscapeMarkdown,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
