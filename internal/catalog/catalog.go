// Package catalog builds the help and guide registries at startup.
package catalog

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jorge-barreto/guidebook/internal/config"
	"github.com/jorge-barreto/guidebook/internal/docs"
	"github.com/jorge-barreto/guidebook/internal/library"
	"github.com/jorge-barreto/guidebook/internal/loader"
)

// Catalog owns the sealed help and guide registries.
type Catalog struct {
	Help   *docs.Registry
	Guides *docs.Registry
}

// Build registers the built-in library and any configured content files,
// then seals both registries.
func Build(cfg *config.Config, log *zap.Logger) (*Catalog, error) {
	c := &Catalog{Help: docs.New(), Guides: docs.New()}
	if err := library.RegisterHelp(c.Help); err != nil {
		return nil, fmt.Errorf("built-in help: %w", err)
	}
	if err := library.RegisterGuides(c.Guides); err != nil {
		return nil, fmt.Errorf("built-in guides: %w", err)
	}

	paths := cfg.ContentPaths()
	if len(paths) > 0 {
		entries, err := loader.LoadPaths(paths)
		if err != nil {
			return nil, fmt.Errorf("loading content: %w", err)
		}
		if err := loader.Apply(entries, c.Help, c.Guides, log); err != nil {
			return nil, fmt.Errorf("loading content: %w", err)
		}
	}

	c.Help.Seal()
	c.Guides.Seal()
	log.Debug("catalog ready",
		zap.Int("help", c.Help.Len()),
		zap.Int("guides", c.Guides.Len()),
		zap.Strings("content", paths))
	return c, nil
}

// Registry returns the registry for kind.
func (c *Catalog) Registry(kind loader.Kind) *docs.Registry {
	if kind == loader.KindGuide {
		return c.Guides
	}
	return c.Help
}

// Resolve looks up key in the registry for kind.
func (c *Catalog) Resolve(kind loader.Kind, key string) (docs.Record, error) {
	rec, err := c.Registry(kind).Lookup(key)
	if errors.Is(err, docs.ErrNotFound) {
		return docs.Record{}, fmt.Errorf("unknown %s %q; run 'guidebook list --kind %s' to see what is available (%w)",
			topicNoun(kind), key, kind, docs.ErrNotFound)
	}
	return rec, err
}

func topicNoun(kind loader.Kind) string {
	if kind == loader.KindGuide {
		return "guide"
	}
	return "help topic"
}
