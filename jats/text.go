package jats

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"lensconv/document"
)

// cursor is position in ordered child sequence shared between block and
// inline dispatch. Text extraction leaves it at the last consumed token.
type cursor struct {
	nodes []etree.Token
	pos   int
}

// annotatedText consumes text and inline markup starting at cursor position
// and returns resulting plain text. offset is position of the first
// character in the text of current frame (UTF-16 units). Annotations are
// queued for the frame on top of the stack.
//
// When element which is not inline markup is found and the call is nested
// inside markup it is an error - enclosing annotation already covers it.
// Otherwise cursor is moved back by one and the call ends, so caller could
// handle element as block sibling.
func (s *state) annotatedText(c *cursor, offset int, nested bool) (string, error) {
	var sb strings.Builder
	for ; c.pos < len(c.nodes); c.pos++ {
		switch tok := c.nodes[c.pos].(type) {
		case *etree.CharData:
			sb.WriteString(tok.Data)
			offset += utf16Len(tok.Data)
		case *etree.Element:
			kind := kindOf(tok)
			if !kind.Inline() {
				if nested {
					return "", s.structure(tok, "element not supported in annotated text")
				}
				c.pos--
				return sb.String(), nil
			}
			start := offset
			text, err := s.annotatedText(&cursor{nodes: tok.Child}, offset, true)
			if err != nil {
				return "", err
			}
			sb.WriteString(text)
			offset += utf16Len(text)
			s.annotate(tok, kind, start, offset)
		default:
			// comments and processing instructions carry no text
		}
	}
	return sb.String(), nil
}

// annotate queues annotation for inline element covering [start, end).
func (s *state) annotate(el *etree.Element, kind ElementKind, start, end int) {
	f := s.top()
	a := pendingAnnotation{
		path: document.Path{Node: f.node, Field: f.field},
		rng:  document.Range{Start: start, End: end},
		el:   el,
	}

	if kind == ElementKindXref {
		refType := el.SelectAttrValue("ref-type", "")
		switch refType {
		case "bibr":
			a.kind = document.AnnotationTypeCitationReference
		case "fig", "table", "supplementary-material":
			a.kind = document.AnnotationTypeFigureReference
		default:
			s.log.Debug("Ignoring cross reference", zap.String("ref-type", refType), zap.String("path", el.GetPath()))
			return
		}
		rid := el.SelectAttrValue("rid", "")
		if ids := strings.Fields(rid); len(ids) > 1 {
			s.log.Debug("Cross reference has several targets, using first", zap.String("rid", rid))
			rid = ids[0]
		}
		a.target = rid
		if n := s.sink.NodeBySourceID(rid); n != nil {
			a.target, a.resolved = n.NodeID(), true
		}
	} else {
		a.kind = inlineAnnotations[kind]
		if kind == ElementKindExtLink {
			a.url = attrValue(el, "xlink", "href")
		}
	}
	s.pending = append(s.pending, a)
}
