package docs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jorge-barreto/guidebook/internal/markup"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
	ErrInvalid   = errors.New("invalid record")
	ErrSealed    = errors.New("registry is sealed")
)

// Record holds a single help topic or guide.
type Record struct {
	Key      string      `yaml:"key" json:"key"`
	Title    string      `yaml:"title" json:"title"`
	Category string      `yaml:"category,omitempty" json:"category,omitempty"`
	Body     markup.Node `yaml:"body" json:"body"`
}

// Slides returns the slide nodes of a guide body, or nil for a record
// without slides.
func Slides(r Record) []markup.Node {
	var out []markup.Node
	for _, c := range r.Body.Children {
		if c.Tag == "slide" {
			out = append(out, c)
		}
	}
	return out
}

// Registry maps case-sensitive keys to records. Registration is expected
// to finish before any concurrent reads begin; Seal enforces that no
// writes follow.
type Registry struct {
	records map[string]Record
	order   []string
	sealed  bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{records: make(map[string]Record)}
}

// Register stores rec under key. A key that is already present is
// rejected with ErrDuplicate and the existing record is left in place.
func (r *Registry) Register(key string, rec Record) error {
	if r.sealed {
		return fmt.Errorf("register %q: %w", key, ErrSealed)
	}
	if key == "" {
		return fmt.Errorf("register: %w: empty key", ErrInvalid)
	}
	if strings.TrimSpace(rec.Title) == "" {
		return fmt.Errorf("register %q: %w: empty title", key, ErrInvalid)
	}
	if err := markup.Validate(rec.Body); err != nil {
		return fmt.Errorf("register %q: %w: %w", key, ErrInvalid, err)
	}
	if _, ok := r.records[key]; ok {
		return fmt.Errorf("register %q: %w", key, ErrDuplicate)
	}
	rec.Key = key
	rec.Body = markup.Clone(rec.Body)
	r.records[key] = rec
	r.order = append(r.order, key)
	return nil
}

// Seal rejects all further registrations.
func (r *Registry) Seal() {
	r.sealed = true
}

// Lookup returns the record for key. The body is a copy.
func (r *Registry) Lookup(key string) (Record, error) {
	rec, ok := r.records[key]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return snapshot(rec), nil
}

// ListByCategory returns the records tagged with category, in
// registration order. The result is never nil.
func (r *Registry) ListByCategory(category string) []Record {
	out := []Record{}
	for _, k := range r.order {
		if rec := r.records[k]; rec.Category == category {
			out = append(out, snapshot(rec))
		}
	}
	return out
}

// All returns every record in registration order.
func (r *Registry) All() []Record {
	out := make([]Record, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, snapshot(r.records[k]))
	}
	return out
}

// Categories returns the distinct non-empty categories in the order they
// were first registered.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range r.order {
		c := r.records[k].Category
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	return len(r.order)
}

func snapshot(rec Record) Record {
	rec.Body = markup.Clone(rec.Body)
	return rec
}
