// Package loader reads help topics and guides declared in YAML files.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/guidebook/internal/docs"
	"github.com/jorge-barreto/guidebook/internal/markup"
)

// Kind selects the registry an entry belongs to.
type Kind string

const (
	KindHelp  Kind = "help"
	KindGuide Kind = "guide"
)

// ParseKind accepts "help" or "guide".
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindHelp, KindGuide:
		return k, nil
	}
	return "", fmt.Errorf("unknown kind %q (must be help or guide)", s)
}

// Entry is one record declared in a content file.
type Entry struct {
	Kind     Kind        `yaml:"kind" json:"kind"`
	Key      string      `yaml:"key" json:"key"`
	Title    string      `yaml:"title" json:"title"`
	Category string      `yaml:"category,omitempty" json:"category,omitempty"`
	Body     markup.Node `yaml:"body" json:"body"`

	Source string `yaml:"-" json:"-"`
}

// FromRecord returns the entry that would register rec as kind.
func FromRecord(kind Kind, rec docs.Record) Entry {
	return Entry{Kind: kind, Key: rec.Key, Title: rec.Title, Category: rec.Category, Body: rec.Body}
}

// Record converts the entry to a registry record.
func (e Entry) Record() docs.Record {
	return docs.Record{Key: e.Key, Title: e.Title, Category: e.Category, Body: e.Body}
}

// LoadFile parses a YAML list of entries.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range entries {
		e := &entries[i]
		e.Source = path
		if e.Key == "" {
			return nil, fmt.Errorf("%s: entry %d: 'key' is required", path, i+1)
		}
		if _, err := ParseKind(string(e.Kind)); err != nil {
			return nil, fmt.Errorf("%s: entry %q: %w", path, e.Key, err)
		}
	}
	return entries, nil
}

// LoadPaths loads every file named in paths. A directory contributes its
// *.yaml and *.yml files in name order; subdirectories are not read.
func LoadPaths(paths []string) ([]Entry, error) {
	var all []Entry
	for _, p := range paths {
		files, err := expand(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			entries, err := LoadFile(f)
			if err != nil {
				return nil, err
			}
			all = append(all, entries...)
		}
	}
	return all, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(de.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(path, de.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Apply registers each entry in the registry for its kind and stops at the
// first failure.
func Apply(entries []Entry, help, guides *docs.Registry, log *zap.Logger) error {
	for _, e := range entries {
		reg := help
		if e.Kind == KindGuide {
			reg = guides
		}
		if err := reg.Register(e.Key, e.Record()); err != nil {
			return fmt.Errorf("%s: %w", e.Source, err)
		}
		log.Debug("registered content",
			zap.String("kind", string(e.Kind)),
			zap.String("key", e.Key),
			zap.String("source", e.Source))
	}
	return nil
}
