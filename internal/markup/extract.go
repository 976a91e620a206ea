package markup

import "strings"

var blockTags = map[string]bool{
	"fragment": true, "slide": true, "section": true, "figure": true,
	"p": true, "pre": true, "ul": true, "ol": true, "li": true,
	"h3": true, "h4": true, "figcaption": true, "aside": true,
	"table": true, "tbody": true, "tr": true,
}

// PlainText flattens the tree into text. Block elements start on their own
// line; blank lines and surrounding whitespace are dropped.
func PlainText(n Node) string {
	var b strings.Builder
	writePlain(&b, n)
	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func writePlain(b *strings.Builder, n Node) {
	switch {
	case n.IsText():
		b.WriteString(n.Text)
	case n.Tag == "br" || n.Tag == "hr":
		b.WriteByte('\n')
	case n.Tag == "th" || n.Tag == "td":
		for _, c := range n.Children {
			writePlain(b, c)
		}
		b.WriteByte(' ')
	case blockTags[n.Tag]:
		b.WriteByte('\n')
		for _, c := range n.Children {
			writePlain(b, c)
		}
		b.WriteByte('\n')
	default:
		for _, c := range n.Children {
			writePlain(b, c)
		}
	}
}

// InlineText concatenates all text runs below n with no separators.
func InlineText(n Node) string {
	var b strings.Builder
	Walk(n, func(c Node) bool {
		if c.IsText() {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// Snippet is a runnable example embedded in content. Source is passed
// through to an executor untouched apart from trimming.
type Snippet struct {
	Mode   string `yaml:"mode,omitempty" json:"mode,omitempty"`
	Source string `yaml:"source" json:"source"`
}

// Snippets returns every runnable pre block in document order.
func Snippets(n Node) []Snippet {
	var out []Snippet
	Walk(n, func(c Node) bool {
		if c.Tag == "pre" && HasClass(c, "runnable") {
			out = append(out, Snippet{
				Mode:   c.Attr("mode"),
				Source: strings.TrimSpace(InlineText(c)),
			})
			return false
		}
		return true
	})
	return out
}

// LinkKind classifies a Link.
type LinkKind string

const (
	LinkHelp     LinkKind = "help"
	LinkExec     LinkKind = "exec"
	LinkManual   LinkKind = "manual"
	LinkExternal LinkKind = "external"
)

// Link is a reference from content to another topic, a command, or a URL.
type Link struct {
	Kind   LinkKind
	Target string
	Label  string
}

// Links returns every link in document order.
func Links(n Node) []Link {
	var out []Link
	Walk(n, func(c Node) bool {
		label := strings.Join(strings.Fields(InlineText(c)), " ")
		switch {
		case c.Tag == "a" && c.Attr("help-topic") != "":
			out = append(out, Link{Kind: LinkHelp, Target: c.Attr("help-topic"), Label: label})
		case c.Tag == "a" && c.Attr("data-exec") != "":
			out = append(out, Link{Kind: LinkExec, Target: c.Attr("data-exec"), Label: label})
		case c.Tag == "manual-link":
			out = append(out, Link{Kind: LinkManual, Target: c.Attr("chapter") + c.Attr("page"), Label: label})
		case (c.Tag == "a" || c.Tag == "external-link") && c.Attr("href") != "":
			out = append(out, Link{Kind: LinkExternal, Target: c.Attr("href"), Label: label})
		default:
			return true
		}
		return false
	})
	return out
}
