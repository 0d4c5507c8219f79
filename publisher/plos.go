package publisher

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/beevik/etree"

	"lensconv/config"
	"lensconv/document"
	"lensconv/jats"
)

// plos serves every object by its DOI from single endpoint.
type plos struct {
	jats.NopStrategy
	object string
}

func newPLOS(cfg *config.PublishersConfig) jats.Strategy {
	return &plos{object: cfg.PLOS.ObjectURL}
}

func (p *plos) objectURL(doi, kind string) (string, error) {
	if doi == "" {
		return "", errors.New("object has no doi")
	}
	u, err := url.Parse(p.object)
	if err != nil {
		return "", fmt.Errorf("bad object url: %w", err)
	}
	q := u.Query()
	q.Set("id", doi)
	q.Set("type", kind)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (p *plos) EnhanceFigure(_ *jats.Article, node *document.Figure, _ *etree.Element) (err error) {
	node.URL, err = p.objectURL(node.DOI, "large")
	return err
}

func (p *plos) EnhanceTable(_ *jats.Article, node *document.Table, _ *etree.Element) (err error) {
	node.URL, err = p.objectURL(node.DOI, "large")
	return err
}

func (p *plos) EnhanceSupplement(_ *jats.Article, node *document.Supplement, _ *etree.Element) (err error) {
	node.URL, err = p.objectURL(node.DOI, "supplementary")
	return err
}
