package document

// Graph is serializable snapshot of the document. Nodes keep creation order,
// annotations follow all other nodes.
type Graph struct {
	ID          string        `json:"id"`
	Views       []GraphView   `json:"views"`
	Nodes       []Node        `json:"nodes"`
	Annotations []*Annotation `json:"annotations"`
}

type GraphView struct {
	Name  string   `json:"name"`
	Nodes []string `json:"nodes"`
}

// Export returns snapshot of the document suitable for serialization. Nodes
// are shared with the document, callers must not modify them.
func (d *Document) Export() *Graph {
	g := &Graph{
		ID:          d.id,
		Nodes:       d.Nodes(),
		Annotations: d.Annotations(),
	}
	if g.Annotations == nil {
		g.Annotations = []*Annotation{}
	}
	for _, name := range d.Views() {
		ids := d.View(name)
		if ids == nil {
			ids = []string{}
		}
		g.Views = append(g.Views, GraphView{Name: name, Nodes: ids})
	}
	return g
}
