package publisher

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"lensconv/config"
	"lensconv/document"
	"lensconv/jats"
)

// landes keeps figures and supplements under per journal directory of the
// assets base.
type landes struct {
	jats.NopStrategy
	assets string
}

func newLandes(cfg *config.PublishersConfig) jats.Strategy {
	return &landes{assets: cfg.Landes.AssetsURL}
}

func (l *landes) journal(a *jats.Article) (string, error) {
	var id string
	if el := a.Element.FindElement(".//journal-meta/journal-id"); el != nil {
		id = strings.ToLower(strings.TrimSpace(el.Text()))
	}
	if id == "" {
		return "", errors.New("article has no journal id")
	}
	return id, nil
}

func (l *landes) EnhanceFigure(a *jats.Article, node *document.Figure, el *etree.Element) error {
	name := jats.Href(el.FindElement(".//graphic"))
	if name == "" {
		return errors.New("figure has no graphic")
	}
	journal, err := l.journal(a)
	if err != nil {
		return err
	}
	u, err := url.JoinPath(l.assets, journal, withExt(name, ".jpg"))
	if err != nil {
		return fmt.Errorf("unable to build figure url: %w", err)
	}
	node.URL = u
	return nil
}

func (l *landes) EnhanceSupplement(a *jats.Article, node *document.Supplement, _ *etree.Element) error {
	if node.URL == "" {
		return errors.New("supplement has no file")
	}
	journal, err := l.journal(a)
	if err != nil {
		return err
	}
	u, err := url.JoinPath(l.assets, journal, node.URL)
	if err != nil {
		return fmt.Errorf("unable to build supplement url: %w", err)
	}
	node.URL = u
	return nil
}
