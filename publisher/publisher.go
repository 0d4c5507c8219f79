// Package publisher provides publisher specific node enhancements applied on
// top of generic article conversion.
package publisher

import (
	"path"
	"strings"

	"lensconv/config"
	"lensconv/jats"
)

// names maps <publisher-name> found in the article to publisher.
var names = map[string]config.Publisher{
	"eLife Sciences Publications, Ltd": config.PublisherElife,
	"Landes Bioscience":                config.PublisherLandes,
	"Public Library of Science":        config.PublisherPlos,
}

var constructors = map[config.Publisher]func(cfg *config.PublishersConfig) jats.Strategy{
	config.PublisherDefault: func(*config.PublishersConfig) jats.Strategy { return jats.NopStrategy{} },
	config.PublisherElife:   newElife,
	config.PublisherLandes:  newLandes,
	config.PublisherPlos:    newPLOS,
}

// ByName returns publisher for <publisher-name> value, unknown names get
// default one.
func ByName(publisherName string) config.Publisher {
	if p, ok := names[strings.TrimSpace(publisherName)]; ok {
		return p
	}
	return config.PublisherDefault
}

// New creates strategy for the publisher.
func New(p config.Publisher, cfg *config.PublishersConfig) jats.Strategy {
	ctor, ok := constructors[p]
	if !ok {
		ctor = constructors[config.PublisherDefault]
	}
	return ctor(cfg)
}

// Selector returns strategy selector for conversion. When force is set
// publisher name found in the article is ignored.
func Selector(cfg *config.PublishersConfig, forced config.Publisher, force bool) jats.Selector {
	return func(publisherName string) (string, jats.Strategy) {
		p := forced
		if !force {
			p = ByName(publisherName)
		}
		return p.String(), New(p, cfg)
	}
}

// withExt replaces extension of the file name, name without one gets it
// appended.
func withExt(name, ext string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ext
}
