package markup

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() Node {
	return Element("fragment", nil,
		Element("p", nil, Text("Use "), Element("code", nil, Text(":DELETE")), Text(" to send HTTP DELETE.")),
		Element("pre", Attrs{"mode": "rest", "class": "code runnable"},
			Text("\n  :DELETE /db/data/transaction/2\n"),
		),
		Element("p", nil,
			Element("a", Attrs{"help-topic": "rest-get"}, Text(":help REST GET")),
			Element("a", Attrs{"data-exec": ":guide cypher"}, Text("Cypher")),
			Element("manual-link", Attrs{"chapter": "cypher-manual", "page": "/"}, Text("Cypher Manual")),
			Element("a", Attrs{"href": "https://neo4j.com/developer/"}, Text("Developer resources")),
		),
	)
}

func TestValidate_WellFormed(t *testing.T) {
	if err := Validate(sample()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_TextWithChildren(t *testing.T) {
	n := Element("p", nil, Node{Text: "x", Children: []Node{Text("y")}})
	err := Validate(n)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if !strings.Contains(err.Error(), "p/0/#text") {
		t.Errorf("error should carry path, got %q", err)
	}
}

func TestValidate_ElementWithText(t *testing.T) {
	n := Element("fragment", nil, Node{Tag: "p", Text: "inline"})
	if err := Validate(n); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestValidate_EmptyAttrName(t *testing.T) {
	n := Element("a", Attrs{"": "x"})
	if err := Validate(n); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestValidate_BadTag(t *testing.T) {
	n := Element("fragment", nil, Element("p x", nil))
	if err := Validate(n); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestClone_Independent(t *testing.T) {
	orig := sample()
	c := Clone(orig)
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	c.Children[1].Attrs["mode"] = "cypher"
	c.Children[0].Children[0].Text = "changed"
	if orig.Children[1].Attrs["mode"] != "rest" {
		t.Error("mutating clone attrs changed original")
	}
	if orig.Children[0].Children[0].Text != "Use " {
		t.Error("mutating clone children changed original")
	}
}

func TestWalk_Prune(t *testing.T) {
	var tags []string
	Walk(sample(), func(n Node) bool {
		if !n.IsText() {
			tags = append(tags, n.Tag)
		}
		return n.Tag != "p"
	})
	want := []string{"fragment", "p", "pre", "p"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("walk order (-want +got):\n%s", diff)
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText(sample())
	want := "Use :DELETE to send HTTP DELETE.\n:DELETE /db/data/transaction/2\n:help REST GETCypherCypher ManualDeveloper resources"
	if got != want {
		t.Errorf("PlainText =\n%q\nwant\n%q", got, want)
	}
}

func TestSnippets(t *testing.T) {
	got := Snippets(sample())
	want := []Snippet{{Mode: "rest", Source: ":DELETE /db/data/transaction/2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Snippets (-want +got):\n%s", diff)
	}
}

func TestSnippets_IgnoresNonRunnable(t *testing.T) {
	n := Element("pre", Attrs{"class": "code"}, Text("MATCH (n) RETURN n"))
	if got := Snippets(n); len(got) != 0 {
		t.Errorf("expected no snippets, got %v", got)
	}
}

func TestLinks(t *testing.T) {
	got := Links(sample())
	want := []Link{
		{Kind: LinkHelp, Target: "rest-get", Label: ":help REST GET"},
		{Kind: LinkExec, Target: ":guide cypher", Label: "Cypher"},
		{Kind: LinkManual, Target: "cypher-manual/", Label: "Cypher Manual"},
		{Kind: LinkExternal, Target: "https://neo4j.com/developer/", Label: "Developer resources"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Links (-want +got):\n%s", diff)
	}
}

func TestHasClass(t *testing.T) {
	n := Element("pre", Attrs{"class": "pre-scrollable code runnable"})
	if !HasClass(n, "runnable") {
		t.Error("expected runnable class")
	}
	if HasClass(n, "run") {
		t.Error("partial class name should not match")
	}
}
