package convert

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"lensconv/config"
	"lensconv/content"
	"lensconv/document"
)

// Values are available to name templates.
type Values struct {
	Context    string
	Title      string
	ArticleID  string
	DOI        string
	Publisher  string
	Authors    []string
	Keywords   []string
	Language   string
	Date       string
	Year       string
	Format     string
	SourceFile string
}

// buildAuthors resolves author nodes to names.
func buildAuthors(d *document.Document) []string {
	result := make([]string, 0, len(d.Root().Authors))
	for _, id := range d.Root().Authors {
		if p, ok := d.Get(id).(*document.Person); ok && p.Name != "" {
			result = append(result, p.Name)
		}
	}
	return result
}

func buildYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// languageName returns English name of the article language, tag itself if
// name is unknown.
func languageName(tag string) string {
	if tag == "" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	if name := display.English.Tags().Name(t); name != "" {
		return name
	}
	return tag
}

func newValues(c *content.Content, name config.TemplateFieldName, format config.OutputFmt) Values {
	root := c.Document.Root()
	return Values{
		Context:    string(name),
		Title:      root.Title,
		ArticleID:  c.Document.ID(),
		DOI:        root.DOI,
		Publisher:  root.Publisher,
		Authors:    buildAuthors(c.Document),
		Keywords:   root.Keywords,
		Language:   languageName(root.Language),
		Date:       root.Created,
		Year:       buildYear(root.Created),
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(c.SrcName), filepath.Ext(c.SrcName)),
	}
}

// expandTemplate executes configured template field against article
// metadata. Sprig functions are available.
func expandTemplate(c *content.Content, name config.TemplateFieldName, field string, format config.OutputFmt) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, newValues(c, name, format)); err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	return sb.String(), nil
}
