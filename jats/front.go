package jats

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"lensconv/document"
)

// front converts article metadata: title, contributors, publication date,
// then creates cover and abstracts, all shown in content view.
func (s *state) front(front *etree.Element) error {
	meta := front.FindElement(".//article-meta")
	if meta == nil {
		return &StructureError{Element: "article-meta", Path: front.GetPath(), Msg: "expected element is missing"}
	}

	root := s.sink.Root()
	root.DOI = findText(meta, "article-id[@pub-id-type='doi']")
	root.Title = findText(meta, "title-group/article-title")
	if lang := s.article.SelectAttrValue("xml:lang", ""); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			root.Language = tag.String()
		} else {
			s.log.Debug("Unrecognized article language", zap.String("lang", lang), zap.Error(err))
		}
	}

	for _, aff := range meta.FindElements(".//aff") {
		if err := s.affiliation(aff); err != nil {
			return err
		}
	}
	for _, contrib := range meta.FindElements(".//contrib-group/contrib") {
		if err := s.contributor(contrib); err != nil {
			return err
		}
	}

	if pubDate := meta.FindElement("pub-date"); pubDate != nil {
		s.pubDate(pubDate)
	}

	cover := &document.Cover{
		Base:    document.Base{ID: document.CoverID},
		Title:   root.Title,
		Authors: append([]string{}, root.Authors...),
	}
	if err := s.create(cover); err != nil {
		return err
	}
	if err := s.show(document.ViewContent, cover); err != nil {
		return err
	}

	for _, abs := range meta.SelectElements("abstract") {
		if err := s.abstract(abs); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) affiliation(aff *etree.Element) error {
	label := firstChild(aff, ElementKindLabel)
	node := &document.Institution{
		Base:  document.Base{ID: s.ids.Next("institution"), Source: aff.SelectAttrValue("id", "")},
		Label: strings.TrimSpace(textContent(label)),
	}

	var names []string
	for _, inst := range aff.FindElements(".//institution") {
		if name := strings.TrimSpace(textContent(inst)); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		node.Name = strings.Join(names, ", ")
	} else {
		node.Name = strings.Join(strings.Fields(textContentExcept(aff, label)), " ")
	}
	return s.create(node)
}

func (s *state) contributor(contrib *etree.Element) error {
	node := &document.Person{
		Base:         document.Base{ID: s.ids.Next("person"), Source: contrib.SelectAttrValue("id", "")},
		Role:         contrib.SelectAttrValue("contrib-type", ""),
		Affiliations: []string{},
	}

	if name := contrib.FindElement(".//name"); name != nil {
		node.Name = personName(name)
	} else if collab := contrib.FindElement(".//collab"); collab != nil {
		node.Name = strings.TrimSpace(textContent(collab))
	} else {
		s.gap(contrib, "Contributor has no name")
	}

	for _, xref := range contrib.FindElements(".//xref[@ref-type='aff']") {
		rid := xref.SelectAttrValue("rid", "")
		for _, id := range strings.Fields(rid) {
			if n := s.sink.NodeBySourceID(id); n != nil {
				id = n.NodeID()
			} else {
				s.log.Debug("Affiliation not found", zap.String("rid", id))
			}
			node.Affiliations = append(node.Affiliations, id)
		}
	}
	for _, email := range contrib.FindElements(".//email") {
		node.Emails = append(node.Emails, strings.TrimSpace(textContent(email)))
	}

	if node.Role == "author" {
		root := s.sink.Root()
		root.Authors = append(root.Authors, node.ID)
	}
	return s.create(node)
}

// pubDate sets document creation date, year is required, missing month and
// day default to 1.
func (s *state) pubDate(el *etree.Element) {
	part := func(name string, def int) (int, bool) {
		v := findText(el, name)
		if v == "" {
			return def, true
		}
		n, err := strconv.Atoi(v)
		return n, err == nil
	}

	year, ok := part("year", 0)
	if !ok || year == 0 {
		s.gap(el, "Publication date has no valid year, ignoring")
		return
	}
	month, mok := part("month", 1)
	day, dok := part("day", 1)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out of range values, 31 February becomes 2 March
	if !mok || !dok || t.Month() != time.Month(month) || t.Day() != day {
		s.gap(el, "Publication date is malformed, using year only")
		t = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	s.sink.Root().Created = t.Format(time.DateOnly)
}

// abstract creates level 1 heading followed by abstract body.
func (s *state) abstract(abs *etree.Element) error {
	title := firstChild(abs, ElementKindTitle)
	heading := &document.Heading{
		Base:    document.Base{ID: s.ids.Next("heading"), Source: abs.SelectAttrValue("id", "")},
		Level:   1,
		Content: "Abstract",
	}
	if t := strings.TrimSpace(textContent(title)); t != "" {
		heading.Content = t
	}
	return s.titledBody(heading, abs, title)
}

// titledBody creates heading and walks children of el (except skipped ones
// which make the heading) one level below it, all shown in content view.
func (s *state) titledBody(heading *document.Heading, el *etree.Element, skip ...*etree.Element) error {
	if err := s.create(heading); err != nil {
		return err
	}

	children := slices.DeleteFunc(el.ChildElements(), func(child *etree.Element) bool {
		return slices.Contains(skip, child)
	})

	s.level++
	nodes, err := s.bodyNodes(children)
	s.level--
	if err != nil {
		return err
	}
	return s.show(document.ViewContent, append([]document.Node{heading}, nodes...)...)
}
