package ux

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jorge-barreto/guidebook/internal/docs"
	"github.com/jorge-barreto/guidebook/internal/library"
	"github.com/jorge-barreto/guidebook/internal/markup"
)

func TestMarkdown_RestDelete(t *testing.T) {
	reg := docs.New()
	if err := library.RegisterHelp(reg); err != nil {
		t.Fatal(err)
	}
	rec, _ := reg.Lookup("rest-delete")
	got := Markdown(rec.Body)
	want := "Use `:DELETE` to send HTTP DELETE to Neo4j's REST interface.\n\n" +
		"**Related:** `:help REST GET` `:help REST POST` `:help REST PUT`\n\n" +
		"```rest\n:DELETE /db/data/transaction/2\n```\n\n" +
		"_Rollback an open transaction._\n"
	if got != want {
		t.Errorf("Markdown =\n%s\nwant\n%s", got, want)
	}
}

func TestMarkdown_ListsAndLinks(t *testing.T) {
	n := markup.Element("slide", nil,
		markup.Element("h3", nil, markup.Text("Next steps")),
		markup.Element("ol", nil,
			markup.Element("li", nil, markup.Text("Load")),
			markup.Element("li", nil, markup.Text("Index")),
		),
		markup.Element("ul", nil,
			markup.Element("li", nil,
				markup.Element("a", markup.Attrs{"data-exec": ":guide cypher"}, markup.Text("Cypher")),
			),
			markup.Element("li", nil,
				markup.Element("manual-link", markup.Attrs{"chapter": "cypher-manual", "page": "/"}, markup.Text("Manual")),
			),
		),
	)
	got := Markdown(n)
	for _, want := range []string{
		"### Next steps\n",
		"1. Load\n2. Index\n",
		"- Cypher (`:guide cypher`)\n",
		"- [Manual](https://neo4j.com/docs/cypher-manual/)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q:\n%s", want, got)
		}
	}
}

func TestMarkdown_SnippetUntouched(t *testing.T) {
	src := "MATCH (ee:Person)-[:KNOWS]-(friends)\nWHERE ee.name = \"Emil\" RETURN ee, friends"
	n := markup.Element("pre", markup.Attrs{"class": "code runnable", "mode": "cypher"}, markup.Text(src))
	if got := Markdown(n); got != "```cypher\n"+src+"\n```\n" {
		t.Errorf("Markdown = %q", got)
	}
}

func TestRender_Plain(t *testing.T) {
	out, err := Render("# Title\n", Options{Plain: true})
	if err != nil || out != "# Title\n" {
		t.Fatalf("Render plain = %q, %v", out, err)
	}
}

func TestRender_NoTTY(t *testing.T) {
	out, err := Render("Use `:DELETE` to send HTTP DELETE.\n", Options{Style: "notty", Width: 60})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "DELETE") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestTopicList_GroupsByCategory(t *testing.T) {
	reg := docs.New()
	if err := library.RegisterGuides(reg); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	TopicList(&buf, "Guides", reg)
	out := buf.String()
	gi := strings.Index(out, "graphExamples")
	oi := strings.Index(out, "other")
	if gi < 0 || oi < 0 || gi > oi {
		t.Fatalf("expected graphExamples before other:\n%s", out)
	}
	if !strings.Contains(out, "northwind-graph") || !strings.Contains(out, "cypher") {
		t.Errorf("listing missing guides:\n%s", out)
	}
}

func TestTopicList_Empty(t *testing.T) {
	var buf bytes.Buffer
	TopicList(&buf, "Help", docs.New())
	if !strings.Contains(buf.String(), "(none)") {
		t.Errorf("got %q", buf.String())
	}
}

func TestSnippets_Empty(t *testing.T) {
	var buf bytes.Buffer
	Snippets(&buf, nil)
	if !strings.Contains(buf.String(), "no runnable snippets") {
		t.Errorf("got %q", buf.String())
	}
}
