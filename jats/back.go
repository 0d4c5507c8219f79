package jats

import (
	"strings"

	"github.com/beevik/etree"

	"lensconv/document"
)

// back converts acknowledgements, appendices and sections of back matter.
// References are extracted globally and skipped here.
func (s *state) back(back *etree.Element) error {
	for _, child := range back.ChildElements() {
		switch kindOf(child) {
		case ElementKindAck:
			if err := s.backSection(child, "Acknowledgements"); err != nil {
				return err
			}
		case ElementKindAppGroup:
			for _, app := range childElements(child, ElementKindApp) {
				if err := s.backSection(app, "Appendix"); err != nil {
					return err
				}
			}
		case ElementKindSec:
			nodes, err := s.section(child)
			if err != nil {
				return err
			}
			if err := s.show(document.ViewContent, nodes...); err != nil {
				return err
			}
		case ElementKindRefList:
			// extracted globally
		default:
			s.gap(child, "Element not supported in back matter, ignoring")
		}
	}
	return nil
}

// backSection makes level 1 heading from title (or label, or default) of
// the element followed by its walked body.
func (s *state) backSection(el *etree.Element, def string) error {
	title := firstChild(el, ElementKindTitle)
	label := firstChild(el, ElementKindLabel)

	heading := &document.Heading{
		Base:    document.Base{ID: s.ids.Next("heading"), Source: el.SelectAttrValue("id", "")},
		Level:   1,
		Label:   strings.TrimSpace(textContent(label)),
		Content: def,
	}
	if t := strings.TrimSpace(textContent(title)); t != "" {
		heading.Content = t
	} else if heading.Label != "" {
		heading.Content = heading.Label
	}

	return s.titledBody(heading, el, title, label)
}
