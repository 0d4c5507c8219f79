package document

//go:generate go tool go-enum --names --marshal

// NodeType names every kind of node the document graph holds.
// ENUM(document, cover, person, institution, heading, paragraph, list, formula, figure, table, video, supplement, caption, citation, annotation)
type NodeType string

// AnnotationType names inline decorations over node text.
// ENUM(strong, emphasis, code, subscript, superscript, underline, link, citation_reference, figure_reference)
type AnnotationType string

// IsReference reports annotations pointing at other nodes.
func (x AnnotationType) IsReference() bool {
	return x == AnnotationTypeCitationReference || x == AnnotationTypeFigureReference
}
