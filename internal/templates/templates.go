package templates

import (
	"bytes"
	"text/template"

	"github.com/toyz/exprgen/internal/errors"
	"github.com/toyz/exprgen/internal/models"
)

// StructData represents data needed for a structure definition
type StructData struct {
	Name   string
	Base   string
	Fields []models.Field
}

// HeaderData represents data needed for the header file wrapper
type HeaderData struct {
	Guard    string
	Includes []string
	Base     string
	Body     string // already rendered structure definitions
}

// Renderer executes the registry templates
type Renderer struct {
	parsed map[string]*template.Template
}

// NewRenderer parses every template of the registry once
func NewRenderer(registry *TemplateRegistry) (*Renderer, error) {
	funcMap := template.FuncMap{
		"params": JoinParams,
		"inits":  JoinInits,
	}

	r := &Renderer{parsed: make(map[string]*template.Template)}
	for _, name := range registry.Names() {
		tmpl, err := template.New(name).Funcs(funcMap).Parse(registry.MustGet(name))
		if err != nil {
			return nil, errors.WrapTemplateError(name, "parse", err)
		}
		r.parsed[name] = tmpl
	}
	return r, nil
}

// NewDefaultRenderer creates a renderer over the built-in templates
func NewDefaultRenderer() (*Renderer, error) {
	return NewRenderer(NewTemplateRegistry())
}

// RenderStruct renders one entry as a structure definition deriving from base
func (r *Renderer) RenderStruct(entry *models.Entry, base string) (string, error) {
	data := StructData{
		Name:   entry.Name,
		Base:   base,
		Fields: entry.Fields,
	}
	return r.execute(StructTemplateName, data)
}

// RenderHeader wraps already rendered structures into a header file
func (r *Renderer) RenderHeader(data HeaderData) (string, error) {
	return r.execute(HeaderTemplateName, data)
}

func (r *Renderer) execute(name string, data interface{}) (string, error) {
	tmpl, ok := r.parsed[name]
	if !ok {
		return "", errors.Newf(errors.TemplateErrorCode, "template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}
	return buf.String(), nil
}
