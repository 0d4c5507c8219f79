package document

import "slices"

// Node is a single typed unit of the document graph. Set of node types is
// closed, all of them are defined in this file.
type Node interface {
	NodeID() string
	SourceID() string
	NodeType() NodeType

	base() *Base
}

// Base carries identity every node has. Type is filled by Document.Create.
type Base struct {
	ID     string   `json:"id"`
	Source string   `json:"source_id,omitempty"`
	Type   NodeType `json:"type"`
}

func (b *Base) NodeID() string   { return b.ID }
func (b *Base) SourceID() string { return b.Source }
func (b *Base) base() *Base      { return b }

// Root is the "document" node holding article level metadata.
type Root struct {
	Base
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Created   string   `json:"created_at,omitempty"`
	DOI       string   `json:"doi,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	Language  string   `json:"language,omitempty"`
}

func (*Root) NodeType() NodeType { return NodeTypeDocument }

func (n *Root) Clone() *Root {
	c := *n
	c.Authors = slices.Clone(n.Authors)
	c.Keywords = slices.Clone(n.Keywords)
	return &c
}

type Cover struct {
	Base
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
}

func (*Cover) NodeType() NodeType { return NodeTypeCover }

type Person struct {
	Base
	Name         string   `json:"name"`
	Role         string   `json:"role,omitempty"`
	Affiliations []string `json:"affiliations"`
	Emails       []string `json:"emails,omitempty"`
}

func (*Person) NodeType() NodeType { return NodeTypePerson }

type Institution struct {
	Base
	Label string `json:"label,omitempty"`
	Name  string `json:"name"`
}

func (*Institution) NodeType() NodeType { return NodeTypeInstitution }

type Heading struct {
	Base
	Level   int    `json:"level"`
	Label   string `json:"label,omitempty"`
	Content string `json:"content"`
}

func (*Heading) NodeType() NodeType { return NodeTypeHeading }

type Paragraph struct {
	Base
	Content string `json:"content"`
}

func (*Paragraph) NodeType() NodeType { return NodeTypeParagraph }

type List struct {
	Base
	Items   []string `json:"items"`
	Ordered bool     `json:"ordered"`
}

func (*List) NodeType() NodeType { return NodeTypeList }

type Formula struct {
	Base
	Label  string `json:"label,omitempty"`
	Data   string `json:"data"`
	Format string `json:"format"`
}

func (*Formula) NodeType() NodeType { return NodeTypeFormula }

type Figure struct {
	Base
	Label   string `json:"label"`
	URL     string `json:"url"`
	DOI     string `json:"doi,omitempty"`
	Caption string `json:"caption,omitempty"`
}

func (*Figure) NodeType() NodeType { return NodeTypeFigure }

func (n *Figure) Clone() *Figure {
	c := *n
	return &c
}

type Table struct {
	Base
	Label   string   `json:"label"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	URL     string   `json:"url,omitempty"`
	DOI     string   `json:"doi,omitempty"`
	Caption string   `json:"caption,omitempty"`
	Footers []string `json:"footers"`
}

func (*Table) NodeType() NodeType { return NodeTypeTable }

func (n *Table) Clone() *Table {
	c := *n
	c.Footers = slices.Clone(n.Footers)
	return &c
}

type Video struct {
	Base
	Label   string `json:"label"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	URLWebM string `json:"url_webm,omitempty"`
	URLOgv  string `json:"url_ogv,omitempty"`
	Poster  string `json:"poster"`
	DOI     string `json:"doi,omitempty"`
	Caption string `json:"caption,omitempty"`
}

func (*Video) NodeType() NodeType { return NodeTypeVideo }

func (n *Video) Clone() *Video {
	c := *n
	return &c
}

type Supplement struct {
	Base
	Label   string `json:"label"`
	URL     string `json:"url"`
	DOI     string `json:"doi,omitempty"`
	Caption string `json:"caption,omitempty"`
}

func (*Supplement) NodeType() NodeType { return NodeTypeSupplement }

func (n *Supplement) Clone() *Supplement {
	c := *n
	return &c
}

// Caption belongs to figure-like nodes. Title is id of a paragraph node
// holding annotated caption title, Children are ids of caption body nodes.
type Caption struct {
	Base
	Title    string   `json:"title,omitempty"`
	Children []string `json:"children"`
}

func (*Caption) NodeType() NodeType { return NodeTypeCaption }

type Citation struct {
	Base
	Label   string   `json:"label"`
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
	Source  string   `json:"source"`
	Volume  string   `json:"volume"`
	FPage   string   `json:"fpage"`
	LPage   string   `json:"lpage"`
	Year    string   `json:"year,omitempty"`
	DOI     string   `json:"doi,omitempty"`
	URLs    []string `json:"citation_urls"`
}

func (*Citation) NodeType() NodeType { return NodeTypeCitation }

// Path addresses text field of a node.
type Path struct {
	Node  string `json:"node"`
	Field string `json:"field"`
}

// Range is half-open [Start, End) in UTF-16 code units.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether o lies completely within r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

type Annotation struct {
	Base
	Kind   AnnotationType `json:"annotation_type"`
	Path   Path           `json:"path"`
	Range  Range          `json:"range"`
	Target string         `json:"target,omitempty"`
	URL    string         `json:"url,omitempty"`
}

func (*Annotation) NodeType() NodeType { return NodeTypeAnnotation }
