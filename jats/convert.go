// Package jats converts NLM/JATS article into annotated document graph.
//
// Conversion is single recursive descent over the article tree. Block level
// elements become nodes, mixed text and inline markup becomes node text plus
// range annotations. Annotations are queued while walking and created at the
// very end so references could point to nodes created later.
package jats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"lensconv/document"
)

// Options configure single conversion.
type Options struct {
	// Select picks enhancement strategy by publisher name, nil means no
	// enhancements.
	Select Selector
	Log    *zap.Logger
}

// Result describes finished conversion.
type Result struct {
	DocumentID  string
	Publisher   string
	Strategy    string
	Nodes       int
	Annotations int
	// Gaps lists everything which was skipped.
	Gaps []Gap
}

// Err combines coverage gaps into single error, nil when there were none.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	errs := make([]error, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		errs = append(errs, g)
	}
	return multierr.Combine(errs...)
}

// Convert walks the article and writes resulting nodes into the sink. Error
// is returned only for fatal problems (see ErrStructure) or when sink
// refuses a node, in both cases whatever was written to the sink must be
// discarded.
func Convert(doc *etree.Document, sink Sink, opts Options) (*Result, error) {
	if doc == nil {
		return nil, errors.New("nil document")
	}
	if sink == nil {
		return nil, errors.New("nil document sink")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	s := newState(sink, log)

	// select configuration
	res := &Result{
		Publisher: strings.TrimSpace(textContent(doc.FindElement("//publisher-name"))),
		Strategy:  "default",
	}
	if opts.Select != nil {
		res.Strategy, s.strategy = opts.Select(res.Publisher)
		if s.strategy == nil {
			s.strategy = NopStrategy{}
		}
	}
	log.Debug("Enhancements selected", zap.String("publisher", res.Publisher), zap.String("strategy", res.Strategy))

	article := findArticle(doc)
	if article == nil {
		return nil, &StructureError{Element: "article", Msg: "expected element is missing"}
	}
	s.article = article

	// assign id
	s.docID = findText(article, ".//article-id")
	if s.docID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("unable to generate article id: %w", err)
		}
		s.docID = id.String()
		log.Debug("Article has no id, generated", zap.String("id", s.docID))
	}
	sink.SetID(s.docID)
	sink.Root().Publisher = res.Publisher

	if err := s.extractFigures(article); err != nil {
		return nil, fmt.Errorf("figures: %w", err)
	}
	if err := s.extractCitations(article); err != nil {
		return nil, fmt.Errorf("citations: %w", err)
	}

	front := article.SelectElement("front")
	if front == nil {
		return nil, &StructureError{Element: "front", Path: article.GetPath(), Msg: "expected element is missing"}
	}
	if err := s.front(front); err != nil {
		return nil, fmt.Errorf("front: %w", err)
	}

	if body := article.SelectElement("body"); body != nil {
		nodes, err := s.bodyNodes(body.ChildElements())
		if err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}
		if err := s.show(document.ViewContent, nodes...); err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}
	}

	root := sink.Root()
	a := s.hookArticle()
	a.Root = root.Clone()
	if s.enhance("article", article, func() error { return s.strategy.EnhanceArticle(a) }) {
		*root = *a.Root
	}

	if back := article.SelectElement("back"); back != nil {
		if err := s.back(back); err != nil {
			return nil, fmt.Errorf("back: %w", err)
		}
	}

	created, err := s.flush()
	if err != nil {
		return nil, fmt.Errorf("annotations: %w", err)
	}

	if err := sink.RebuildAll(); err != nil {
		return nil, fmt.Errorf("views: %w", err)
	}

	res.DocumentID = s.docID
	res.Nodes = s.created - created
	res.Annotations = created
	res.Gaps = s.gaps
	return res, nil
}

// flush creates queued annotations in discovery order. References which
// could not be resolved while walking are resolved again, now all nodes
// exist. Unresolved target keeps source identifier.
func (s *state) flush() (int, error) {
	for _, p := range s.pending {
		if p.kind.IsReference() && !p.resolved {
			if n := s.sink.NodeBySourceID(p.target); n != nil {
				p.target = n.NodeID()
			} else {
				s.gap(p.el, "Cross reference target not found, keeping source id")
			}
		}
		a := &document.Annotation{
			Base:   document.Base{ID: s.ids.Next(string(p.kind))},
			Kind:   p.kind,
			Path:   p.path,
			Range:  p.rng,
			Target: p.target,
			URL:    p.url,
		}
		if err := s.create(a); err != nil {
			return 0, err
		}
	}
	n := len(s.pending)
	s.pending = nil
	return n, nil
}

func findArticle(doc *etree.Document) *etree.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	if root.Tag == "article" {
		return root
	}
	return root.FindElement(".//article")
}
