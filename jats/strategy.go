package jats

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"lensconv/document"
)

// Article is the part of conversion in progress visible to enhancement
// hooks.
type Article struct {
	// ID is the article identifier assigned to the document.
	ID string
	// Element is the <article> element of the source.
	Element *etree.Element
	// Root is set for EnhanceArticle only. It is a copy of the document
	// root, changes are kept when the hook succeeds.
	Root *document.Root
	Log  *zap.Logger
}

// Strategy is publisher specific set of hooks enhancing nodes produced by
// generic conversion. Every hook gets a copy of the node, returned error (or
// panic) drops the changes and node is kept in its generic form.
type Strategy interface {
	EnhanceArticle(a *Article) error
	EnhanceFigure(a *Article, node *document.Figure, el *etree.Element) error
	EnhanceSupplement(a *Article, node *document.Supplement, el *etree.Element) error
	EnhanceTable(a *Article, node *document.Table, el *etree.Element) error
	EnhanceVideo(a *Article, node *document.Video, el *etree.Element) error
}

// Selector picks strategy for the article by its publisher name and returns
// name of the selected strategy.
type Selector func(publisherName string) (string, Strategy)

// NopStrategy leaves nodes as they are.
type NopStrategy struct{}

func (NopStrategy) EnhanceArticle(*Article) error {
	return nil
}

func (NopStrategy) EnhanceFigure(*Article, *document.Figure, *etree.Element) error {
	return nil
}

func (NopStrategy) EnhanceSupplement(*Article, *document.Supplement, *etree.Element) error {
	return nil
}

func (NopStrategy) EnhanceTable(*Article, *document.Table, *etree.Element) error {
	return nil
}

func (NopStrategy) EnhanceVideo(*Article, *document.Video, *etree.Element) error {
	return nil
}

