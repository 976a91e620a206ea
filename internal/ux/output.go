package ux

import (
	"fmt"
	"io"

	"github.com/jorge-barreto/guidebook/internal/docs"
	"github.com/jorge-barreto/guidebook/internal/markup"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// TopicList prints records grouped by category. Uncategorized records come
// last under "other".
func TopicList(w io.Writer, heading string, reg *docs.Registry) {
	fmt.Fprintf(w, "\n%s%s:%s\n", Bold, heading, Reset)
	if reg.Len() == 0 {
		fmt.Fprintf(w, "  %s(none)%s\n", Dim, Reset)
		return
	}
	for _, cat := range reg.Categories() {
		fmt.Fprintf(w, "\n  %s%s%s\n", Cyan, cat, Reset)
		for _, r := range reg.ListByCategory(cat) {
			fmt.Fprintf(w, "    %-20s %s\n", r.Key, r.Title)
		}
	}
	if other := reg.ListByCategory(""); len(other) > 0 {
		fmt.Fprintf(w, "\n  %sother%s\n", Cyan, Reset)
		for _, r := range other {
			fmt.Fprintf(w, "    %-20s %s\n", r.Key, r.Title)
		}
	}
	fmt.Fprintln(w)
}

// Records prints one line per record.
func Records(w io.Writer, records []docs.Record) {
	for _, r := range records {
		cat := r.Category
		if cat == "" {
			cat = "-"
		}
		fmt.Fprintf(w, "%-20s %-18s %s\n", r.Key, cat, r.Title)
	}
}

// SlideHeader prints the position of a slide within a guide.
func SlideHeader(w io.Writer, title string, index, total int) {
	fmt.Fprintf(w, "%s══ %s %s(%d/%d)%s %s══%s\n",
		Cyan, title, Dim, index+1, total, Reset, Cyan, Reset)
}

// Snippets prints runnable snippets separated by their mode.
func Snippets(w io.Writer, snippets []markup.Snippet) {
	if len(snippets) == 0 {
		fmt.Fprintf(w, "%s(no runnable snippets)%s\n", Dim, Reset)
		return
	}
	for i, s := range snippets {
		mode := s.Mode
		if mode == "" {
			mode = "text"
		}
		fmt.Fprintf(w, "%s# %d (%s)%s\n%s\n\n", Dim, i+1, mode, Reset, s.Source)
	}
}
