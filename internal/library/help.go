package library

import (
	"github.com/jorge-barreto/guidebook/internal/docs"
	"github.com/jorge-barreto/guidebook/internal/markup"
)

var restDelete = docs.Record{
	Title:    "REST DELETE",
	Category: "restApiCommands",
	Body: el("fragment",
		p(txt("Use "), code(":DELETE"), txt(" to send HTTP DELETE to Neo4j's REST interface.")),
		elc("table", "table-condensed table-help",
			el("tbody",
				el("tr",
					el("th", txt("Related:")),
					el("td",
						helpLink("rest-get", ":help REST GET"),
						helpLink("rest-post", ":help REST POST"),
						helpLink("rest-put", ":help REST PUT"),
					),
				),
			),
		),
		elc("section", "example",
			el("figure",
				markup.Element("pre", markup.Attrs{"mode": "rest", "class": "code runnable"},
					txt(":DELETE /db/data/transaction/2"),
				),
				el("figcaption", txt("Rollback an open transaction.")),
			),
		),
	),
}
