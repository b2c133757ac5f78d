package templates

// Template names known to the registry
const (
	StructTemplateName = "struct"
	HeaderTemplateName = "header"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerStructTemplates()
	registry.registerHeaderTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// Names returns the registered template names
func (tr *TemplateRegistry) Names() []string {
	return []string{StructTemplateName, HeaderTemplateName}
}

// registerStructTemplates registers the structure definition template.
// Fields are indented with four spaces, the constructor with a tab.
func (tr *TemplateRegistry) registerStructTemplates() {
	tr.templates[StructTemplateName] = "struct {{.Name}}: public {{.Base}} {\n" +
		"{{range .Fields}}    {{.Type}} {{.Name}};\n{{end}}" +
		"\n" +
		"\t{{.Name}}({{params .Fields}}) : {{inits .Fields}} {}\n" +
		"};\n" +
		"\n"
}

// registerHeaderTemplates registers the header file wrapper
func (tr *TemplateRegistry) registerHeaderTemplates() {
	tr.templates[HeaderTemplateName] = "#ifndef {{.Guard}}\n" +
		"#define {{.Guard}}\n" +
		"\n" +
		"{{if .Includes}}{{range .Includes}}#include \"{{.}}\"\n{{end}}\n{{end}}" +
		"struct {{.Base}} {};\n" +
		"\n" +
		"{{.Body}}" +
		"#endif //{{.Guard}}\n"
}
