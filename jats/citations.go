package jats

import (
	"strings"

	"github.com/beevik/etree"

	"lensconv/document"
)

// extractCitations converts references of the first <ref-list> of the
// article and shows them in citations view.
func (s *state) extractCitations(article *etree.Element) error {
	refList := article.FindElement(".//ref-list")
	if refList == nil {
		return nil
	}
	for _, ref := range refList.FindElements(".//ref") {
		for _, child := range ref.ChildElements() {
			switch child.Tag {
			case "element-citation", "mixed-citation", "nlm-citation":
				if err := s.citation(ref, child); err != nil {
					return err
				}
			case "label":
				// taken by citation
			default:
				s.gap(child, "Element not supported in reference, ignoring")
			}
		}
	}
	return nil
}

// citation converts structured citation, one with <person-group>. Citations
// without it are reported and skipped.
func (s *state) citation(ref, el *etree.Element) error {
	group := el.FindElement(".//person-group")
	if group == nil {
		s.gap(el, "Unstructured citation is not supported, ignoring")
		return nil
	}

	node := &document.Citation{
		Title:   "N/A",
		Label:   childText(ref, ElementKindLabel),
		Authors: []string{},
		Source:  findText(el, ".//source"),
		Volume:  findText(el, ".//volume"),
		FPage:   findText(el, ".//fpage"),
		LPage:   findText(el, ".//lpage"),
		Year:    findText(el, ".//year"),
		URLs:    []string{},
	}

	for _, author := range group.ChildElements() {
		switch author.Tag {
		case "name":
			node.Authors = append(node.Authors, personName(author))
		case "collab":
			node.Authors = append(node.Authors, strings.TrimSpace(textContent(author)))
		}
	}

	if title := el.FindElement(".//article-title"); title != nil {
		node.Title = strings.TrimSpace(textContent(title))
	} else {
		s.gap(el, "Citation has no title")
	}

	if doi := el.FindElement(".//pub-id[@pub-id-type='doi']"); doi != nil {
		node.DOI = strings.TrimSpace(textContent(doi))
	}
	for _, link := range el.FindElements(".//ext-link") {
		if link.SelectAttrValue("ext-link-type", "") == "doi" {
			if node.DOI == "" {
				node.DOI = strings.TrimSpace(textContent(link))
			}
			continue
		}
		if href := attrValue(link, "xlink", "href"); href != "" {
			node.URLs = append(node.URLs, href)
		} else if text := strings.TrimSpace(textContent(link)); text != "" {
			node.URLs = append(node.URLs, text)
		}
	}

	node.DOI = doiURL(node.DOI)

	// Source is the journal, source id lives in Base
	node.Base = document.Base{ID: s.ids.Next("article_citation"), Source: ref.SelectAttrValue("id", "")}
	if err := s.create(node); err != nil {
		return err
	}
	return s.show(document.ViewCitations, node)
}

// personName joins given names and surname.
func personName(el *etree.Element) string {
	var names []string
	if given := findText(el, "given-names"); given != "" {
		names = append(names, given)
	}
	if surname := findText(el, "surname"); surname != "" {
		names = append(names, surname)
	}
	return strings.Join(names, " ")
}

const doiResolver = "http://dx.doi.org/"

// doiURL makes citation DOI resolvable, values which are links already are
// kept.
func doiURL(doi string) string {
	if doi == "" || strings.HasPrefix(doi, "http://") || strings.HasPrefix(doi, "https://") {
		return doi
	}
	return doiResolver + doi
}
