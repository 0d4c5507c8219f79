package document

import (
	"fmt"
	"strconv"
	"strings"
)

type treeWriter struct {
	w *strings.Builder
}

func (tw treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw treeWriter) text(depth int, label, value string) {
	if value == "" {
		return
	}
	tw.line(depth, "%s: %s", label, strconv.Quote(value))
}

func (tw treeWriter) ids(depth int, label string, ids []string) {
	if len(ids) == 0 {
		return
	}
	tw.line(depth, "%s: [%s]", label, strings.Join(ids, ", "))
}

// String returns readable tree of the whole document: views with nodes they
// reference, nodes not shown in any view and annotations grouped by the node
// they decorate. It exists solely for manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := treeWriter{w: &strings.Builder{}}
	tw.line(0, "Document %q", d.id)
	tw.dumpNode(1, d.root)

	byPath := make(map[string][]*Annotation)
	for _, a := range d.Annotations() {
		byPath[a.Path.Node] = append(byPath[a.Path.Node], a)
	}
	dump := func(depth int, id string) {
		n := d.nodes[id]
		if n == nil {
			tw.line(depth, "<dangling %s>", id)
			return
		}
		tw.dumpNode(depth, n)
		for _, a := range byPath[id] {
			tw.dumpNode(depth+1, a)
		}
	}

	for _, name := range d.Views() {
		tw.line(0, "View %q: %d", name, len(d.views[name]))
		for _, id := range d.views[name] {
			dump(1, id)
		}
	}

	var hidden []string
	for _, id := range d.order {
		if _, shown := d.shown[id]; shown || id == RootID {
			continue
		}
		if d.nodes[id].NodeType() == NodeTypeAnnotation {
			continue
		}
		hidden = append(hidden, id)
	}
	tw.line(0, "Not in views: %d", len(hidden))
	for _, id := range hidden {
		dump(1, id)
	}
	return tw.w.String()
}

func (tw treeWriter) dumpNode(depth int, n Node) {
	switch v := n.(type) {
	case *Root:
		tw.line(depth, "document")
		tw.text(depth+1, "title", v.Title)
		tw.ids(depth+1, "authors", v.Authors)
		tw.text(depth+1, "created", v.Created)
		tw.text(depth+1, "doi", v.DOI)
		tw.text(depth+1, "publisher", v.Publisher)
		tw.text(depth+1, "language", v.Language)
		if len(v.Keywords) > 0 {
			tw.line(depth+1, "keywords: %q", v.Keywords)
		}
	case *Cover:
		tw.line(depth, "cover %q", v.Title)
	case *Person:
		tw.line(depth, "%s person %q role[%s]", v.ID, v.Name, v.Role)
		tw.ids(depth+1, "affiliations", v.Affiliations)
	case *Institution:
		tw.line(depth, "%s institution %q label[%s]", v.ID, v.Name, v.Label)
	case *Heading:
		tw.line(depth, "%s heading level[%d] %q", v.ID, v.Level, v.Content)
	case *Paragraph:
		tw.line(depth, "%s paragraph", v.ID)
		tw.text(depth+1, "content", v.Content)
	case *List:
		tw.line(depth, "%s list ordered[%t]", v.ID, v.Ordered)
		tw.ids(depth+1, "items", v.Items)
	case *Formula:
		tw.line(depth, "%s formula format[%s] label[%s] data[%d]", v.ID, v.Format, v.Label, len(v.Data))
	case *Figure:
		tw.line(depth, "%s figure %q caption[%s]", v.ID, v.Label, v.Caption)
		tw.text(depth+1, "url", v.URL)
	case *Table:
		tw.line(depth, "%s table %q caption[%s] content[%d]", v.ID, v.Label, v.Caption, len(v.Content))
		tw.ids(depth+1, "footers", v.Footers)
	case *Video:
		tw.line(depth, "%s video %q caption[%s]", v.ID, v.Label, v.Caption)
		tw.text(depth+1, "url", v.URL)
		tw.text(depth+1, "poster", v.Poster)
	case *Supplement:
		tw.line(depth, "%s supplement %q caption[%s]", v.ID, v.Label, v.Caption)
		tw.text(depth+1, "url", v.URL)
	case *Caption:
		tw.line(depth, "%s caption title[%s]", v.ID, v.Title)
		tw.ids(depth+1, "children", v.Children)
	case *Citation:
		tw.line(depth, "%s citation %q label[%s]", v.ID, v.Title, v.Label)
		if len(v.Authors) > 0 {
			tw.line(depth+1, "authors: %q", v.Authors)
		}
		tw.text(depth+1, "doi", v.DOI)
	case *Annotation:
		tw.line(depth, "%s %s %s[%d:%d] target[%s]", v.ID, v.Kind, v.Path.Field, v.Range.Start, v.Range.End, v.Target)
	default:
		tw.line(depth, "%s %s", n.NodeID(), n.NodeType())
	}
}
