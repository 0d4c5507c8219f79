package jats

import (
	"github.com/beevik/etree"

	"lensconv/document"
)

//go:generate go tool go-enum --names --marshal

// ElementKind is closed set of article elements converter knows about. Every
// other element resolves to ElementKindUnknown and ends up as coverage gap.
// ENUM(unknown, p, sec, list, list-item, disp-formula, fig, fig-group, table-wrap, media, supplementary-material, boxed-text, title, label, caption, alternatives, math, tex-math, bold, italic, monospace, sub, sup, underline, ext-link, xref, ack, app-group, app, ref-list)
type ElementKind int

// kindOf resolves element kind by local name, namespace prefix is ignored
// so "mml:math" and "math" are the same.
func kindOf(el *etree.Element) ElementKind {
	k, err := ParseElementKind(el.Tag)
	if err != nil {
		return ElementKindUnknown
	}
	return k
}

var inlineAnnotations = map[ElementKind]document.AnnotationType{
	ElementKindBold:      document.AnnotationTypeStrong,
	ElementKindItalic:    document.AnnotationTypeEmphasis,
	ElementKindMonospace: document.AnnotationTypeCode,
	ElementKindSub:       document.AnnotationTypeSubscript,
	ElementKindSup:       document.AnnotationTypeSuperscript,
	ElementKindUnderline: document.AnnotationTypeUnderline,
	ElementKindExtLink:   document.AnnotationTypeLink,
}

// Inline reports kinds which could be part of annotated text.
func (x ElementKind) Inline() bool {
	_, ok := inlineAnnotations[x]
	return ok || x == ElementKindXref
}
