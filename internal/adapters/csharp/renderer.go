// Package csharp renders generated partial classes for the host toolkit.
package csharp

import (
	_ "embed"
	"strings"
	"text/template"

	"go.trai.ch/ulink/internal/core/domain"
	"go.trai.ch/ulink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceRenderer = (*Renderer)(nil)

//go:embed templates/ulink.cs.tmpl
var templateText string

//go:embed templates/runtime.cs.tmpl
var runtimeText string

var templates = template.Must(template.Must(template.New("ulink").Parse(templateText)).Parse(runtimeText))

const indent = "    "

type headerData struct {
	TemplateVersion int
	Fingerprint     string
}

type blockData struct {
	Name string
}

// Renderer implements ports.SourceRenderer with text/template.
type Renderer struct {
	version int
}

// NewRenderer creates a new Renderer stamping the current template version.
func NewRenderer() *Renderer {
	return &Renderer{version: domain.TemplateVersion}
}

// Render returns the artifact text for the sections and the fingerprint of the
// full names in render order.
func (r *Renderer) Render(sections []domain.Section) (string, string, error) {
	var names []string
	for _, s := range sections {
		for _, t := range s.Types {
			names = append(names, t.FullName)
		}
	}
	fingerprint := domain.Fingerprint(names)

	var b strings.Builder
	header := headerData{TemplateVersion: r.version, Fingerprint: fingerprint}
	if err := templates.ExecuteTemplate(&b, "header", header); err != nil {
		return "", "", zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}

	for _, s := range sections {
		for _, t := range s.Types {
			b.WriteByte('\n')
			if err := writeBlock(&b, s.Kind, t); err != nil {
				return "", "", err
			}
		}
	}

	return domain.NormalizeLineEndings(b.String()), fingerprint, nil
}

// RenderRuntime returns the support source the generated setters call into.
func (r *Renderer) RenderRuntime() (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "runtime", headerData{TemplateVersion: r.version}); err != nil {
		return "", zerr.Wrap(err, domain.ErrRenderFailed.Error())
	}
	return domain.NormalizeLineEndings(b.String()), nil
}

// writeBlock renders one partial class, wrapped in its namespace when it has one.
func writeBlock(b *strings.Builder, kind domain.MarkerKind, t domain.CandidateType) error {
	var body strings.Builder
	if err := templates.ExecuteTemplate(&body, string(kind), blockData{Name: t.Name}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "type", t.FullName)
	}

	if t.Namespace == "" {
		b.WriteString(body.String())
		return nil
	}

	b.WriteString("namespace " + t.Namespace + "\n{\n")
	for line := range strings.Lines(body.String()) {
		if line != "\n" {
			b.WriteString(indent)
		}
		b.WriteString(line)
	}
	b.WriteString("}\n")
	return nil
}
