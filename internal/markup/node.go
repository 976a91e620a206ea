package markup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is wrapped by every error returned from Validate.
var ErrMalformed = errors.New("malformed node")

// Attrs holds element attributes.
type Attrs map[string]string

// Node is one element or text run in a content tree.
type Node struct {
	Tag      string `yaml:"tag,omitempty" json:"tag,omitempty"`
	Attrs    Attrs  `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Text     string `yaml:"text,omitempty" json:"text,omitempty"`
	Children []Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Element returns an element node. attrs may be nil.
func Element(tag string, attrs Attrs, children ...Node) Node {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Text returns a text node.
func Text(s string) Node {
	return Node{Text: s}
}

// IsText reports whether n is a text run.
func (n Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns the named attribute, or "" if unset.
func (n Node) Attr(name string) string {
	return n.Attrs[name]
}

// HasClass reports whether the space-separated class attribute contains class.
func HasClass(n Node, class string) bool {
	for _, c := range strings.Fields(n.Attrs["class"]) {
		if c == class {
			return true
		}
	}
	return false
}

// Validate checks that every node in the tree is either a pure text run or
// an element with a tag and no text. The first violation in depth-first
// order is returned.
func Validate(n Node) error {
	return validate(n, "")
}

func validate(n Node, path string) error {
	here := n.Tag
	if here == "" {
		here = "#text"
	}
	if path != "" {
		here = path + "/" + here
	}
	if n.Tag == "" {
		if len(n.Attrs) > 0 || len(n.Children) > 0 {
			return fmt.Errorf("%w: %s: text node cannot carry attributes or children", ErrMalformed, here)
		}
		return nil
	}
	if strings.TrimSpace(n.Tag) != n.Tag || strings.ContainsAny(n.Tag, "/ ") {
		return fmt.Errorf("%w: %s: invalid tag %q", ErrMalformed, here, n.Tag)
	}
	if n.Text != "" {
		return fmt.Errorf("%w: %s: element cannot carry text directly, use a text child", ErrMalformed, here)
	}
	for name := range n.Attrs {
		if name == "" {
			return fmt.Errorf("%w: %s: empty attribute name", ErrMalformed, here)
		}
	}
	for i, c := range n.Children {
		if err := validate(c, here+"/"+strconv.Itoa(i)); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	out := Node{Tag: n.Tag, Text: n.Text}
	if n.Attrs != nil {
		out.Attrs = make(Attrs, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = Clone(c)
		}
	}
	return out
}

// Walk visits n and its descendants in depth-first pre-order. Returning
// false from fn skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
