package ux

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jorge-barreto/guidebook/internal/markup"
)

// ManualBase prefixes manual-link chapters.
const ManualBase = "https://neo4j.com/docs/"

// Markdown converts a content tree to markdown for terminal display.
// Runnable blocks become fenced code tagged with their mode; snippet text
// is copied as is.
func Markdown(n markup.Node) string {
	var b strings.Builder
	block(&b, n)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func block(b *strings.Builder, n markup.Node) {
	switch n.Tag {
	case "":
		para(b, "", n.Text)
	case "fragment", "slide", "section", "figure", "table", "tbody":
		for _, c := range n.Children {
			block(b, c)
		}
	case "h3":
		para(b, "### ", inlineChildren(n))
	case "h4":
		para(b, "#### ", inlineChildren(n))
	case "aside":
		para(b, "> ", inlineChildren(n))
	case "figcaption":
		if s := collapse(inlineChildren(n)); s != "" {
			b.WriteString("_" + s + "_\n\n")
		}
	case "ul", "ol":
		list(b, n)
	case "pre":
		src := strings.TrimSpace(markup.InlineText(n))
		b.WriteString("```" + n.Attr("mode") + "\n" + src + "\n```\n\n")
	case "hr":
		b.WriteString("---\n\n")
	case "br":
	case "tr":
		var cells []string
		for _, c := range n.Children {
			s := collapse(inlineChildren(c))
			if c.Tag == "th" && s != "" {
				s = "**" + s + "**"
			}
			cells = append(cells, s)
		}
		para(b, "", strings.Join(cells, " "))
	default:
		para(b, "", inline(n))
	}
}

func list(b *strings.Builder, n markup.Node) {
	i := 0
	for _, c := range n.Children {
		if c.Tag != "li" {
			continue
		}
		i++
		bullet := "- "
		if n.Tag == "ol" {
			bullet = strconv.Itoa(i) + ". "
		}
		b.WriteString(bullet + collapse(inlineChildren(c)) + "\n")
	}
	b.WriteString("\n")
}

func para(b *strings.Builder, prefix, s string) {
	if s = collapse(s); s != "" {
		b.WriteString(prefix + s + "\n\n")
	}
}

func inlineChildren(n markup.Node) string {
	var s strings.Builder
	for _, c := range n.Children {
		s.WriteString(inline(c))
	}
	return s.String()
}

func inline(n markup.Node) string {
	switch n.Tag {
	case "":
		return n.Text
	case "code":
		s := markup.InlineText(n)
		if strings.Contains(s, "`") {
			return "`` " + s + " ``"
		}
		return "`" + s + "`"
	case "em", "i":
		return "*" + inlineChildren(n) + "*"
	case "strong", "b":
		return "**" + inlineChildren(n) + "**"
	case "img":
		return "![](" + n.Attr("src") + ")"
	case "manual-link":
		return "[" + collapse(inlineChildren(n)) + "](" + ManualBase + n.Attr("chapter") + n.Attr("page") + ")"
	case "a", "external-link":
		label := collapse(inlineChildren(n))
		switch {
		case n.Attr("help-topic") != "":
			cmd := ":help " + n.Attr("help-topic")
			if strings.HasPrefix(label, ":help") {
				return "`" + label + "` "
			}
			return label + " (`" + cmd + "`)"
		case n.Attr("data-exec") != "":
			return label + " (`" + n.Attr("data-exec") + "`)"
		case n.Attr("href") != "":
			return "[" + label + "](" + n.Attr("href") + ")"
		}
		return label
	}
	return inlineChildren(n)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Options controls terminal rendering.
type Options struct {
	Width int
	Style string // auto, dark, light, or notty
	Plain bool   // skip glamour and return markdown as is
}

// Render formats markdown for the terminal.
func Render(md string, opts Options) (string, error) {
	if opts.Plain {
		return md, nil
	}
	style := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		style = glamour.WithStandardStyle(opts.Style)
	}
	width := opts.Width
	if width == 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
