package library

import "github.com/jorge-barreto/guidebook/internal/docs"

var cypherGuide = docs.Record{
	Title: "Cypher",
	Body: deck(
		slide(
			lead("Neo4j's graph query language"),
			p(txt("Neo4j's Cypher language is purpose built for working with graph data.")),
			elc("ul", "big",
				li(txt("uses patterns to describe graph data")),
				li(txt("familiar SQL-like clauses")),
				li(txt("declarative, describing what to find, not how to find it")),
			),
		),
		slide(
			h3("CREATE"),
			lead("Create a node"),
			p(txt("Let's use Cypher to generate a small social graph.")),
			runnable(`CREATE (ee:Person { name: "Emil", from: "Sweden", klout: 99 })`),
			el("ul",
				li(code("CREATE"), txt(" clause to create data")),
				li(code("()"), txt(" parenthesis to indicate a node")),
				li(code("ee:Person"), txt(" a variable 'ee' and label 'Person' for the new node")),
				li(code("{}"), txt(" brackets to add properties to the node")),
			),
		),
		slide(
			h3("MATCH"),
			lead("Finding nodes"),
			p(txt("Now find the node representing Emil:")),
			runnable(`MATCH (ee:Person) WHERE ee.name = "Emil" RETURN ee;`),
			el("ul",
				li(code("MATCH"), txt(" clause to specify a pattern of nodes and relationships")),
				li(code("(ee:Person)"), txt(" a single node pattern with label 'Person' which will assign matches to the variable 'ee'")),
				li(code("WHERE"), txt(" clause to constrain the results")),
				li(code(`ee.name = "Emil"`), txt(` compares name property to the value "Emil"`)),
				li(code("RETURN"), txt(" clause used to request particular results")),
			),
		),
		slide(
			h3("CREATE more"),
			lead("Nodes and relationships"),
			p(code("CREATE"), txt(" clauses can create many nodes and relationships at once.")),
			runnable(`MATCH (ee:Person) WHERE ee.name = "Emil"
CREATE (js:Person { name: "Johan", from: "Sweden", learn: "surfing" }),
(ir:Person { name: "Ian", from: "England", title: "author" }),
(rvb:Person { name: "Rik", from: "Belgium", pet: "Orval" }),
(ally:Person { name: "Allison", from: "California", hobby: "surfing" }),
(ee)-[:KNOWS {since: 2001}]->(js),(ee)-[:KNOWS {rating: 5}]->(ir),
(js)-[:KNOWS]->(ir),(js)-[:KNOWS]->(rvb),
(ir)-[:KNOWS]->(js),(ir)-[:KNOWS]->(ally),
(rvb)-[:KNOWS]->(ally)`),
		),
		slide(
			h3("Pattern matching"),
			lead("Describe what to find in the graph"),
			elc("p", "summary", txt("For instance, a pattern can be used to find Emil's friends:")),
			runnable(`MATCH (ee:Person)-[:KNOWS]-(friends)
WHERE ee.name = "Emil" RETURN ee, friends`),
			el("ul",
				li(code("MATCH"), txt(" clause to describe the pattern from known Nodes to found Nodes")),
				li(code("(ee)"), txt(" starts the pattern with a Person (qualified by WHERE)")),
				li(code("-[:KNOWS]-"), txt(` matches "KNOWS" relationships (in either direction)`)),
				li(code("(friends)"), txt(" will be bound to Emil's friends")),
			),
		),
		slide(
			h3("Recommend"),
			lead("Using patterns"),
			elc("p", "summary", txt("Pattern matching can be used to make recommendations. Johan is learning to surf, so he may want to find a new friend who already does:")),
			runnable(`MATCH (js:Person)-[:KNOWS]-()-[:KNOWS]-(surfer)
WHERE js.name = "Johan" AND surfer.hobby = "surfing"
RETURN DISTINCT surfer`),
			el("ul",
				li(code("()"), txt(" empty parenthesis to ignore these nodes")),
				li(code("DISTINCT"), txt(" because more than one path will match the pattern")),
				li(code("surfer"), txt(" will contain Allison, a friend of a friend who surfs")),
			),
		),
		slide(
			h3("Analyze"),
			lead("Using the visual query plan"),
			elc("p", "summary",
				txt("Understand how your query works by prepending "), code("EXPLAIN"),
				txt(" or "), code("PROFILE"), txt(":"),
			),
			runnable(`PROFILE MATCH (js:Person)-[:KNOWS]-()-[:KNOWS]-(surfer)
WHERE js.name = "Johan" AND surfer.hobby = "surfing"
RETURN DISTINCT surfer`),
		),
		slide(
			h3("Live Cypher warnings"),
			lead("Identify query problems in real time"),
			p(txt("As you type, the query editor notifies you about deprecated features and potentially expensive queries.")),
			img("./assets/images/screen_cypher_warn.png"),
		),
		slide(
			h3("Next steps"),
			p(
				txt("Start your application using Cypher to create and query graph data. See "),
				helpLink("cypher", "Help Cypher"),
				txt(" for more built-in cypher documentation."),
			),
			h3("Documentation"),
			elc("ul", "undecorated",
				li(manualLink("cypher-refcard", "/", "Cypher Refcard")),
				li(manualLink("cypher-manual", "/", "The Cypher chapter"), txt(" of the Neo4j Developer Manual")),
			),
		),
	),
}
