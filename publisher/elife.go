package publisher

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"lensconv/config"
	"lensconv/document"
	"lensconv/jats"
)

// elife places figures and supplements on the eLife CDN and videos on the
// video host, article keywords come from subject headings.
type elife struct {
	jats.NopStrategy
	assets string
	video  string
}

func newElife(cfg *config.PublishersConfig) jats.Strategy {
	return &elife{assets: cfg.Elife.AssetsURL, video: cfg.Elife.VideoURL}
}

func (e *elife) EnhanceArticle(a *jats.Article) error {
	for _, subj := range a.Element.FindElements(".//article-categories//subject") {
		kw := strings.Join(strings.Fields(subj.Text()), " ")
		if kw == "" || slices.Contains(a.Root.Keywords, kw) {
			continue
		}
		a.Root.Keywords = append(a.Root.Keywords, kw)
	}
	return nil
}

func (e *elife) EnhanceFigure(a *jats.Article, node *document.Figure, el *etree.Element) error {
	name := jats.Href(el.FindElement(".//graphic"))
	if name == "" {
		return errors.New("figure has no graphic")
	}
	u, err := url.JoinPath(e.assets, a.ID, "jpg", withExt(name, ".jpg"))
	if err != nil {
		return fmt.Errorf("unable to build figure url: %w", err)
	}
	node.URL = u
	return nil
}

func (e *elife) EnhanceSupplement(a *jats.Article, node *document.Supplement, _ *etree.Element) error {
	if node.URL == "" {
		return errors.New("supplement has no file")
	}
	u, err := url.JoinPath(e.assets, a.ID, "suppl", node.URL)
	if err != nil {
		return fmt.Errorf("unable to build supplement url: %w", err)
	}
	node.URL = u
	return nil
}

func (e *elife) EnhanceVideo(a *jats.Article, node *document.Video, el *etree.Element) error {
	name := jats.Href(el)
	if name == "" {
		return errors.New("video has no source")
	}
	name = path.Base(name)

	for _, v := range []struct {
		dst *string
		ext string
	}{
		{&node.URL, ".mp4"},
		{&node.URLWebM, ".webm"},
		{&node.URLOgv, ".ogv"},
		{&node.Poster, ".jpg"},
	} {
		u, err := url.JoinPath(e.video, v.ext[1:], a.ID, withExt(name, v.ext))
		if err != nil {
			return fmt.Errorf("unable to build video url: %w", err)
		}
		*v.dst = u
	}
	a.Log.Debug("Video sources set", zap.String("id", node.ID), zap.String("url", node.URL))
	return nil
}
