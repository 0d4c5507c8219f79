package jats

import (
	"strings"
	"unicode/utf16"

	"github.com/beevik/etree"
)

// attrValue looks up attribute by namespace prefix and local name, "xlink"
// attributes may be declared with any prefix bound to xlink namespace.
func attrValue(el *etree.Element, space, key string) string {
	if el == nil {
		return ""
	}
	if space == "" {
		return el.SelectAttrValue(key, "")
	}
	for _, attr := range el.Attr {
		if (attr.Space == space || strings.HasSuffix(attr.NamespaceURI(), "/"+space)) && attr.Key == key {
			return attr.Value
		}
	}
	return ""
}

// Href returns trimmed xlink:href of el, xlink namespace may be bound to any
// prefix.
func Href(el *etree.Element) string {
	return strings.TrimSpace(attrValue(el, "xlink", "href"))
}

// textContent returns concatenated character data of the element and all
// its descendants.
func textContent(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var sb strings.Builder
	collectText(&sb, el, nil)
	return sb.String()
}

// textContentExcept is textContent skipping subtrees of excluded children.
func textContentExcept(el *etree.Element, skip ...*etree.Element) string {
	if el == nil {
		return ""
	}
	var sb strings.Builder
	collectText(&sb, el, skip)
	return sb.String()
}

func collectText(sb *strings.Builder, el *etree.Element, skip []*etree.Element) {
	for _, tok := range el.Child {
		switch v := tok.(type) {
		case *etree.CharData:
			sb.WriteString(v.Data)
		case *etree.Element:
			skipped := false
			for _, s := range skip {
				if s == v {
					skipped = true
					break
				}
			}
			if !skipped {
				collectText(sb, v, skip)
			}
		}
	}
}

// findText returns trimmed text content of the first element matching path.
func findText(el *etree.Element, path string) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(textContent(el.FindElement(path)))
}

// childElements returns direct child elements of the given kind.
func childElements(el *etree.Element, kind ElementKind) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if kindOf(child) == kind {
			out = append(out, child)
		}
	}
	return out
}

func firstChild(el *etree.Element, kind ElementKind) *etree.Element {
	for _, child := range el.ChildElements() {
		if kindOf(child) == kind {
			return child
		}
	}
	return nil
}

// outerXML serializes element with its subtree. Namespace declaration for
// element prefix is carried over when it was declared on an ancestor.
func outerXML(el *etree.Element) (string, error) {
	cp := el.Copy()
	if el.Space != "" && cp.SelectAttr("xmlns:"+el.Space) == nil {
		if uri := el.NamespaceURI(); uri != "" {
			cp.CreateAttr("xmlns:"+el.Space, uri)
		}
	}
	doc := etree.NewDocument()
	doc.SetRoot(cp)
	return doc.WriteToString()
}

// utf16Len returns length of the string in UTF-16 code units, the unit all
// annotation offsets are expressed in.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// elementPath returns location of the element for diagnostics.
func elementPath(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return el.GetPath()
}
