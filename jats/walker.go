package jats

import (
	"strings"

	"github.com/beevik/etree"

	"lensconv/document"
)

// bodyNodes walks block level elements producing nodes in document order.
func (s *state) bodyNodes(elements []*etree.Element) ([]document.Node, error) {
	var nodes []document.Node
	for _, el := range elements {
		res, err := s.block(el)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, res...)
	}
	return nodes, nil
}

// block dispatches single block level element.
func (s *state) block(el *etree.Element) ([]document.Node, error) {
	if extractedGlobally(el) {
		// extracted before body is walked
		return nil, nil
	}

	switch kindOf(el) {
	case ElementKindP:
		return s.paragraph(el)
	case ElementKindSec:
		return s.section(el)
	case ElementKindList:
		n, err := s.list(el)
		if err != nil || n == nil {
			return nil, err
		}
		return []document.Node{n}, nil
	case ElementKindDispFormula:
		n, err := s.formula(el)
		if err != nil || n == nil {
			return nil, err
		}
		return []document.Node{n}, nil
	case ElementKindBoxedText:
		return s.bodyNodes(el.ChildElements())
	case ElementKindMedia:
		s.gap(el, "Only video media is supported, ignoring")
		return nil, nil
	default:
		s.gap(el, "Element not supported in body, ignoring")
		return nil, nil
	}
}

// paragraph splits <p> into paragraph nodes. Every run of text and inline
// markup becomes one paragraph, block elements found inside break the run
// and are handled as siblings.
func (s *state) paragraph(el *etree.Element) ([]document.Node, error) {
	var nodes []document.Node

	c := &cursor{nodes: el.Child}
	for ; c.pos < len(c.nodes); c.pos++ {
		switch tok := c.nodes[c.pos].(type) {
		case *etree.CharData:
			n, err := s.textRun(el, c)
			if err != nil {
				return nil, err
			}
			if n != nil {
				nodes = append(nodes, n)
			}
		case *etree.Element:
			if kindOf(tok).Inline() {
				n, err := s.textRun(el, c)
				if err != nil {
					return nil, err
				}
				if n != nil {
					nodes = append(nodes, n)
				}
				continue
			}
			res, err := s.block(tok)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, res...)
		}
	}
	return nodes, nil
}

// textRun extracts annotated text from the cursor into new paragraph node.
// Paragraph which is empty after trimming is not created and annotations
// found in it are dropped.
func (s *state) textRun(el *etree.Element, c *cursor) (*document.Paragraph, error) {
	mark := len(s.pending)

	s.push(frame{field: "content"})
	text, err := s.annotatedText(c, 0, false)
	s.pop()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		s.pending = s.pending[:mark]
		return nil, nil
	}

	node := &document.Paragraph{
		Base:    document.Base{ID: s.ids.Next("paragraph"), Source: el.SelectAttrValue("id", "")},
		Content: text,
	}
	s.assign(mark, node.ID)
	if err := s.create(node); err != nil {
		return nil, err
	}
	return node, nil
}

// section produces heading at current nesting level followed by nodes of
// the section body. Leading <label> and <title> make the heading, title
// annotations are not kept.
func (s *state) section(el *etree.Element) ([]document.Node, error) {
	s.level++
	defer func() { s.level-- }()

	heading := &document.Heading{
		Base:  document.Base{ID: s.ids.Next("heading"), Source: el.SelectAttrValue("id", "")},
		Level: s.level,
	}

	children := el.ChildElements()
title:
	for len(children) > 0 {
		switch kindOf(children[0]) {
		case ElementKindLabel:
			heading.Label = strings.TrimSpace(textContent(children[0]))
		case ElementKindTitle:
			heading.Content = strings.TrimSpace(textContent(children[0]))
		default:
			break title
		}
		children = children[1:]
	}
	if err := s.create(heading); err != nil {
		return nil, err
	}

	nodes, err := s.bodyNodes(children)
	if err != nil {
		return nil, err
	}
	return append([]document.Node{heading}, nodes...), nil
}

// list collects nodes of every direct <list-item> as list items.
func (s *state) list(el *etree.Element) (*document.List, error) {
	node := &document.List{
		Base:    document.Base{ID: s.ids.Next("list"), Source: el.SelectAttrValue("id", "")},
		Items:   []string{},
		Ordered: el.SelectAttrValue("list-type", "") == "ordered",
	}

	for _, child := range el.ChildElements() {
		if kindOf(child) != ElementKindListItem {
			s.gap(child, "Element not supported in list, ignoring")
			continue
		}
		nodes, err := s.bodyNodes(child.ChildElements())
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			node.Items = append(node.Items, n.NodeID())
		}
	}

	if err := s.create(node); err != nil {
		return nil, err
	}
	return node, nil
}

// formula takes first MathML or TeX payload of <disp-formula>, looking into
// <alternatives> as well. Formula without payload is not created.
func (s *state) formula(el *etree.Element) (*document.Formula, error) {
	data, format, err := s.mathPayload(el)
	if err != nil {
		return nil, err
	}
	if format == "" {
		s.gap(el, "Formula has no supported payload, ignoring")
		return nil, nil
	}

	node := &document.Formula{
		Base:   document.Base{ID: s.ids.Next("formula"), Source: el.SelectAttrValue("id", "")},
		Label:  strings.TrimSpace(textContent(firstChild(el, ElementKindLabel))),
		Data:   data,
		Format: format,
	}
	if err := s.create(node); err != nil {
		return nil, err
	}
	return node, nil
}

func (s *state) mathPayload(el *etree.Element) (string, string, error) {
	for _, child := range el.ChildElements() {
		switch kindOf(child) {
		case ElementKindMath:
			data, err := outerXML(child)
			if err != nil {
				return "", "", err
			}
			return data, "mathml", nil
		case ElementKindTexMath:
			return strings.TrimSpace(textContent(child)), "latex", nil
		case ElementKindAlternatives:
			data, format, err := s.mathPayload(child)
			if err != nil || format != "" {
				return data, format, err
			}
		}
	}
	return "", "", nil
}
