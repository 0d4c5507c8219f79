package jats

import (
	"strings"

	"github.com/beevik/etree"

	"lensconv/document"
)

// extractFigures converts every figure-like element of the article
// regardless of its position, in document order, and shows resulting nodes
// in figures view.
func (s *state) extractFigures(article *etree.Element) error {
	for _, el := range figureElements(article, nil) {
		var (
			n   document.Node
			err error
		)
		switch kindOf(el) {
		case ElementKindFig:
			n, err = s.figure(el)
		case ElementKindTableWrap:
			n, err = s.table(el)
		case ElementKindSupplementaryMaterial:
			n, err = s.supplement(el)
		case ElementKindMedia:
			n, err = s.video(el)
		}
		if err != nil {
			return err
		}
		if err := s.show(document.ViewFigures, n); err != nil {
			return err
		}
	}
	return nil
}

// figureElements collects fig, table-wrap, supplementary-material and
// media[mimetype=video] descendants in document order.
func figureElements(el *etree.Element, out []*etree.Element) []*etree.Element {
	for _, child := range el.ChildElements() {
		if kindOf(child) != ElementKindFigGroup && extractedGlobally(child) {
			out = append(out, child)
		}
		out = figureElements(child, out)
	}
	return out
}

// extractedGlobally reports elements body walker must skip: those picked up
// by figureElements and fig-group which only wraps them.
func extractedGlobally(el *etree.Element) bool {
	switch kindOf(el) {
	case ElementKindFig, ElementKindFigGroup, ElementKindTableWrap, ElementKindSupplementaryMaterial:
		return true
	case ElementKindMedia:
		return el.SelectAttrValue("mimetype", "") == "video"
	}
	return false
}

func (s *state) figure(el *etree.Element) (document.Node, error) {
	node := &document.Figure{
		Base:  document.Base{ID: s.ids.Next("figure"), Source: el.SelectAttrValue("id", "")},
		Label: childText(el, ElementKindLabel),
		URL:   attrValue(el.FindElement(".//graphic"), "xlink", "href"),
		DOI:   objectDOI(el),
	}

	var err error
	if node.Caption, err = s.caption(el); err != nil {
		return nil, err
	}

	if cp := node.Clone(); s.enhance("figure", el, func() error {
		return s.strategy.EnhanceFigure(s.hookArticle(), cp, el)
	}) {
		node = cp
	}

	if err := s.create(node); err != nil {
		return nil, err
	}
	return node, nil
}

func (s *state) table(el *etree.Element) (document.Node, error) {
	node := &document.Table{
		Base:    document.Base{ID: s.ids.Next("table"), Source: el.SelectAttrValue("id", "")},
		Label:   childText(el, ElementKindLabel),
		DOI:     objectDOI(el),
		Footers: []string{},
	}

	if tbl := el.FindElement(".//table"); tbl != nil {
		content, err := outerXML(tbl)
		if err != nil {
			return nil, err
		}
		node.Content = content
	} else {
		s.gap(el, "Table has no table content")
	}

	if c := firstChild(el, ElementKindCaption); c != nil {
		node.Title = childText(c, ElementKindTitle)
	}

	var err error
	if node.Caption, err = s.caption(el); err != nil {
		return nil, err
	}

	if foot := el.SelectElement("table-wrap-foot"); foot != nil {
		for _, p := range foot.FindElements(".//p") {
			nodes, err := s.paragraph(p)
			if err != nil {
				return nil, err
			}
			for _, n := range nodes {
				node.Footers = append(node.Footers, n.NodeID())
			}
		}
	}

	if cp := node.Clone(); s.enhance("table", el, func() error {
		return s.strategy.EnhanceTable(s.hookArticle(), cp, el)
	}) {
		node = cp
	}

	if err := s.create(node); err != nil {
		return nil, err
	}
	return node, nil
}

func (s *state) supplement(el *etree.Element) (document.Node, error) {
	node := &document.Supplement{
		Base:  document.Base{ID: s.ids.Next("supplement"), Source: el.SelectAttrValue("id", "")},
		Label: childText(el, ElementKindLabel),
		URL:   attrValue(el, "xlink", "href"),
		DOI:   objectDOI(el),
	}
	if node.URL == "" {
		node.URL = attrValue(firstChild(el, ElementKindMedia), "xlink", "href")
	}

	var err error
	if node.Caption, err = s.caption(el); err != nil {
		return nil, err
	}

	if cp := node.Clone(); s.enhance("supplement", el, func() error {
		return s.strategy.EnhanceSupplement(s.hookArticle(), cp, el)
	}) {
		node = cp
	}

	if err := s.create(node); err != nil {
		return nil, err
	}
	return node, nil
}

func (s *state) video(el *etree.Element) (document.Node, error) {
	node := &document.Video{
		Base:  document.Base{ID: s.ids.Next("video"), Source: el.SelectAttrValue("id", "")},
		Label: childText(el, ElementKindLabel),
		URL:   attrValue(el, "xlink", "href"),
		DOI:   objectDOI(el),
	}
	if c := firstChild(el, ElementKindCaption); c != nil {
		node.Title = childText(c, ElementKindTitle)
	}

	var err error
	if node.Caption, err = s.caption(el); err != nil {
		return nil, err
	}

	if cp := node.Clone(); s.enhance("video", el, func() error {
		return s.strategy.EnhanceVideo(s.hookArticle(), cp, el)
	}) {
		node = cp
	}

	if err := s.create(node); err != nil {
		return nil, err
	}
	return node, nil
}

// caption converts <caption> of figure-like element and returns id of
// created caption node. Title is kept as annotated paragraph, body consists
// of direct child paragraphs only.
func (s *state) caption(parent *etree.Element) (string, error) {
	el := firstChild(parent, ElementKindCaption)
	if el == nil {
		return "", nil
	}

	node := &document.Caption{
		Base:     document.Base{Source: el.SelectAttrValue("id", "")},
		Children: []string{},
	}
	if title := firstChild(el, ElementKindTitle); title != nil {
		nodes, err := s.paragraph(title)
		if err != nil {
			return "", err
		}
		if len(nodes) > 0 {
			node.Title = nodes[0].NodeID()
		}
	}
	for _, p := range childElements(el, ElementKindP) {
		nodes, err := s.paragraph(p)
		if err != nil {
			return "", err
		}
		for _, n := range nodes {
			node.Children = append(node.Children, n.NodeID())
		}
	}

	if node.Title == "" && len(node.Children) == 0 {
		s.gap(el, "Caption has neither title nor paragraphs, ignoring")
		return "", nil
	}

	node.ID = s.ids.Next("caption")
	if err := s.create(node); err != nil {
		return "", err
	}
	return node.ID, nil
}

func childText(el *etree.Element, kind ElementKind) string {
	return strings.TrimSpace(textContent(firstChild(el, kind)))
}

func objectDOI(el *etree.Element) string {
	return findText(el, "object-id[@pub-id-type='doi']")
}
