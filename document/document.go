// Package document implements annotated document graph: typed nodes
// addressed by generated ids, named views grouping published nodes and
// range annotations over node text.
package document

import (
	"errors"
	"fmt"
	"slices"
)

const (
	ViewContent   = "content"
	ViewFigures   = "figures"
	ViewCitations = "citations"

	// RootID and CoverID are fixed, there is exactly one of each per document.
	RootID  = "document"
	CoverID = "cover"
)

var (
	ErrDuplicateID = errors.New("node with the same id already exists")
	ErrUnknownNode = errors.New("node does not exist")
	ErrUnknownView = errors.New("view does not exist")
	ErrShown       = errors.New("node is already shown in a view")
)

// Document owns node storage for the converted article. It is not safe for
// concurrent use, every conversion gets its own.
type Document struct {
	id       string
	nodes    map[string]Node
	order    []string
	bySource map[string]string
	views    map[string][]string
	shown    map[string]string
	root     *Root
}

// New returns empty document with root node and standard views.
func New() *Document {
	d := &Document{
		nodes:    make(map[string]Node),
		bySource: make(map[string]string),
		views: map[string][]string{
			ViewContent:   nil,
			ViewFigures:   nil,
			ViewCitations: nil,
		},
		shown: make(map[string]string),
		root:  &Root{Base: Base{ID: RootID}, Authors: []string{}},
	}
	// cannot fail on empty document
	_ = d.Create(d.root)
	return d
}

// ID returns article identifier, not to be confused with root node id.
func (d *Document) ID() string { return d.id }

func (d *Document) SetID(id string) { d.id = id }

func (d *Document) Root() *Root { return d.root }

// Create inserts node into the document. Node ids are unique across all
// node types including annotations.
func (d *Document) Create(n Node) error {
	if n == nil {
		return errors.New("nil node")
	}
	b := n.base()
	if b.ID == "" {
		return fmt.Errorf("%s node without id", n.NodeType())
	}
	if _, exists := d.nodes[b.ID]; exists {
		return fmt.Errorf("create %s (%s): %w", n.NodeType(), b.ID, ErrDuplicateID)
	}
	b.Type = n.NodeType()

	d.nodes[b.ID] = n
	d.order = append(d.order, b.ID)
	if b.Source != "" && b.Type != NodeTypeAnnotation {
		if _, exists := d.bySource[b.Source]; !exists {
			d.bySource[b.Source] = b.ID
		}
	}
	return nil
}

// Show appends node to the named view. Node could be shown only once.
func (d *Document) Show(view, id string) error {
	ids, ok := d.views[view]
	if !ok {
		return fmt.Errorf("show %s: %w", view, ErrUnknownView)
	}
	if _, exists := d.nodes[id]; !exists {
		return fmt.Errorf("show %s in %s: %w", id, view, ErrUnknownNode)
	}
	if in, shown := d.shown[id]; shown {
		return fmt.Errorf("show %s in %s (already in %s): %w", id, view, in, ErrShown)
	}
	d.views[view] = append(ids, id)
	d.shown[id] = view
	return nil
}

// NodeBySourceID returns first node created with given source identifier.
func (d *Document) NodeBySourceID(sourceID string) Node {
	if id, ok := d.bySource[sourceID]; ok {
		return d.nodes[id]
	}
	return nil
}

// Get returns node by id or nil.
func (d *Document) Get(id string) Node {
	return d.nodes[id]
}

// Rebuild drops ids of nodes which no longer exist from the view keeping
// order of the rest.
func (d *Document) Rebuild(view string) error {
	ids, ok := d.views[view]
	if !ok {
		return fmt.Errorf("rebuild %s: %w", view, ErrUnknownView)
	}
	d.views[view] = slices.DeleteFunc(ids, func(id string) bool {
		if _, exists := d.nodes[id]; !exists {
			delete(d.shown, id)
			return true
		}
		return false
	})
	return nil
}

// RebuildAll rebuilds every view.
func (d *Document) RebuildAll() error {
	for _, name := range d.Views() {
		if err := d.Rebuild(name); err != nil {
			return err
		}
	}
	return nil
}

// Views returns view names in presentation order.
func (d *Document) Views() []string {
	return []string{ViewContent, ViewFigures, ViewCitations}
}

// View returns copy of node ids registered in the view.
func (d *Document) View(name string) []string {
	return slices.Clone(d.views[name])
}

// Nodes returns all nodes except annotations in creation order.
func (d *Document) Nodes() []Node {
	out := make([]Node, 0, len(d.order))
	for _, id := range d.order {
		if n := d.nodes[id]; n.NodeType() != NodeTypeAnnotation {
			out = append(out, n)
		}
	}
	return out
}

// Annotations returns all annotations in creation order.
func (d *Document) Annotations() []*Annotation {
	var out []*Annotation
	for _, id := range d.order {
		if a, ok := d.nodes[id].(*Annotation); ok {
			out = append(out, a)
		}
	}
	return out
}

// Len returns number of nodes including root and annotations.
func (d *Document) Len() int { return len(d.order) }
