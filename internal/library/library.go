// Package library declares the built-in help topics and guides.
package library

import (
	"github.com/jorge-barreto/guidebook/internal/docs"
	"github.com/jorge-barreto/guidebook/internal/markup"
)

type entry struct {
	key    string
	record docs.Record
}

var helpTopics = []entry{
	{"rest-delete", restDelete},
}

var guides = []entry{
	{"cypher", cypherGuide},
	{"northwind-graph", northwindGuide},
}

// RegisterHelp adds the built-in help topics to reg.
func RegisterHelp(reg *docs.Registry) error {
	return register(reg, helpTopics)
}

// RegisterGuides adds the built-in guides to reg.
func RegisterGuides(reg *docs.Registry) error {
	return register(reg, guides)
}

func register(reg *docs.Registry, entries []entry) error {
	for _, e := range entries {
		if err := reg.Register(e.key, e.record); err != nil {
			return err
		}
	}
	return nil
}

// Shorthand builders for the declarations below.

type node = markup.Node

func el(tag string, children ...node) node { return markup.Element(tag, nil, children...) }

func elc(tag, class string, children ...node) node {
	return markup.Element(tag, markup.Attrs{"class": class}, children...)
}

func txt(s string) node { return markup.Text(s) }

func p(children ...node) node { return el("p", children...) }

func lead(s string) node { return elc("p", "lead", txt(s)) }

func code(s string) node { return el("code", txt(s)) }

func li(children ...node) node { return el("li", children...) }

func h3(s string) node { return el("h3", txt(s)) }

func h4(s string) node { return el("h4", txt(s)) }

func slide(children ...node) node { return el("slide", children...) }

func deck(slides ...node) node { return el("fragment", slides...) }

// runnable is a query block the front end offers to execute.
func runnable(src string) node {
	return markup.Element("pre", markup.Attrs{"class": "pre-scrollable code runnable", "mode": "cypher"}, txt(src))
}

func img(src string) node {
	return markup.Element("img", markup.Attrs{"src": src, "class": "img-responsive"})
}

func helpLink(topic, label string) node {
	return markup.Element("a", markup.Attrs{"help-topic": topic}, txt(label))
}

func execLink(command, label string) node {
	return markup.Element("a", markup.Attrs{"data-exec": command}, txt(label))
}

func manualLink(chapter, page, label string) node {
	return markup.Element("manual-link", markup.Attrs{"chapter": chapter, "page": page}, txt(label))
}

func externalLink(href, label string) node {
	return markup.Element("external-link", markup.Attrs{"href": href}, txt(label))
}

func warn(s string) node { return elc("aside", "warn", txt(s)) }
