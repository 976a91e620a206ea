package library

import "github.com/jorge-barreto/guidebook/internal/docs"

const relateWarning = "Note you only need to compare property values like this when first creating relationships"

func helpFooter(second, secondLabel string) []node {
	return []node{
		el("hr"),
		p(el("small", txt(":help")), txt(" "), helpLink("cypher", "cypher"), txt(" "), helpLink(second, secondLabel)),
	}
}

var northwindGuide = docs.Record{
	Title:    "Northwind Graph",
	Category: "graphExamples",
	Body: deck(
		slide(
			lead("From RDBMS to Graph, using a classic dataset"),
			p(
				txt("The "), el("em", txt("Northwind Graph")),
				txt(" demonstrates how to migrate from a relational database to Neo4j. The transformation is iterative and deliberate, emphasizing the conceptual shift from relational tables to the nodes and relationships of a graph."),
			),
			p(txt("This guide will show you how to:")),
			elc("ol", "big",
				li(txt("Load: create data from external CSV files")),
				li(txt("Index: index nodes based on label")),
				li(txt("Relate: transform foreign key references into data relationships")),
				li(txt("Promote: transform join records into relationships")),
			),
		),
		slide(append([]node{
			h3("Product Catalog"),
			p(txt("Northwind sells food products in a few categories, provided by suppliers. Let's start by loading the product catalog tables.")),
			p(
				txt("The load statements to the right require public internet access. "),
				code("LOAD CSV"),
				txt(" will retrieve a CSV file from a valid URL, applying a Cypher statement to each row using a named map (here we're using the name `row`)."),
			),
			p(img("./assets/images/northwind/product-category-supplier.png")),
			h4("Load records"),
			runnable(`LOAD CSV WITH HEADERS FROM "http://data.neo4j.com/northwind/products.csv" AS row
CREATE (n:Product)
SET n = row,
n.unitPrice = toFloat(row.unitPrice),
n.unitsInStock = toInteger(row.unitsInStock), n.unitsOnOrder = toInteger(row.unitsOnOrder),
n.reorderLevel = toInteger(row.reorderLevel), n.discontinued = (row.discontinued <> "0")`),
			runnable(`LOAD CSV WITH HEADERS FROM "http://data.neo4j.com/northwind/categories.csv" AS row
CREATE (n:Category)
SET n = row`),
			runnable(`LOAD CSV WITH HEADERS FROM "http://data.neo4j.com/northwind/suppliers.csv" AS row
CREATE (n:Supplier)
SET n = row`),
			h4("Create indexes"),
			runnable("CREATE INDEX ON :Product(productID)"),
			runnable("CREATE INDEX ON :Category(categoryID)"),
			runnable("CREATE INDEX ON :Supplier(supplierID)"),
		}, helpFooter("load-csv", "LOAD CSV")...)...),
		slide(append([]node{
			h3("Product Catalog Graph"),
			p(txt("The products, categories and suppliers are related through foreign key references. Let's promote those to data relationships to realize the graph.")),
			p(img("./assets/images/northwind/product-graph.png")),
			h4("Create data relationships"),
			runnable(`MATCH (p:Product),(c:Category)
WHERE p.categoryID = c.categoryID
CREATE (p)-[:PART_OF]->(c)`),
			warn(relateWarning),
			el("figcaption",
				txt("Calculate join, materialize relationship. (See "),
				externalLink("http://neo4j.com/developer/guide-importing-data-and-etl", "importing guide"),
				txt(" for more details)"),
			),
			runnable(`MATCH (p:Product),(s:Supplier)
WHERE p.supplierID = s.supplierID
CREATE (s)-[:SUPPLIES]->(p)`),
			warn(relateWarning),
		}, helpFooter("match", "MATCH")...)...),
		slide(append([]node{
			h3("Querying Product Catalog Graph"),
			p(txt("Lets try some queries using patterns.")),
			p(img("./assets/images/northwind/product-graph.png")),
			h4("Query using patterns"),
			runnable(`MATCH (s:Supplier)-->(:Product)-->(c:Category)
RETURN s.companyName as Company, collect(distinct c.categoryName) as Categories`),
			el("figcaption", txt("List the product categories provided by each supplier.")),
			runnable(`MATCH (c:Category {categoryName:"Produce"})<--(:Product)<--(s:Supplier)
RETURN DISTINCT s.companyName as ProduceSuppliers`),
			el("figcaption", txt("Find the produce suppliers.")),
		}, helpFooter("match", "MATCH")...)...),
		slide(append([]node{
			h3("Customer Orders"),
			p(
				txt("Northwind customers place orders which may detail multiple products."),
				img("./assets/images/northwind/customer-orders.png"),
			),
			h4("Load and index records"),
			runnable(`LOAD CSV WITH HEADERS FROM "http://data.neo4j.com/northwind/customers.csv" AS row
CREATE (n:Customer)
SET n = row`),
			runnable(`LOAD CSV WITH HEADERS FROM "http://data.neo4j.com/northwind/orders.csv" AS row
CREATE (n:Order)
SET n = row`),
			runnable("CREATE INDEX ON :Customer(customerID)"),
			runnable("CREATE INDEX ON :Order(orderID)"),
			h4("Create data relationships"),
			runnable(`MATCH (c:Customer),(o:Order)
WHERE c.customerID = o.customerID
CREATE (c)-[:PURCHASED]->(o)`),
			warn(relateWarning),
		}, helpFooter("load-csv", "LOAD CSV")...)...),
		slide(append([]node{
			h3("Customer Order Graph"),
			p(
				txt("Notice that Order Details are always part of an Order and that they "),
				el("i", txt("relate")),
				txt(" the Order to a Product, they're a join table. Join tables are always a sign of a data relationship, indicating shared information between two other records."),
			),
			p(
				txt("Here, we'll directly promote each OrderDetail record into a relationship in the graph."),
				img("./assets/images/northwind/order-graph.png"),
			),
			h4("Load and index records"),
			runnable(`LOAD CSV WITH HEADERS FROM "http://data.neo4j.com/northwind/order-details.csv" AS row
MATCH (p:Product), (o:Order)
WHERE p.productID = row.productID AND o.orderID = row.orderID
CREATE (o)-[details:ORDERS]->(p)
SET details = row,
details.quantity = toInteger(row.quantity)`),
			warn(relateWarning),
			h4("Query using patterns"),
			runnable(`MATCH (cust:Customer)-[:PURCHASED]->(:Order)-[o:ORDERS]->(p:Product),
  (p)-[:PART_OF]->(c:Category {categoryName:"Produce"})
RETURN DISTINCT cust.contactName as CustomerName, SUM(o.quantity) AS TotalProductsPurchased`),
		}, helpFooter("load-csv", "LOAD CSV")...)...),
		slide(
			h3("Next steps"),
			elc("ul", "undecorated",
				li(execLink(":guide movie-graph", "Movie Graph"), txt(" - actors & movies")),
				li(execLink(":guide cypher", "Cypher"), txt(" - query language fundamentals")),
			),
			el("br"),
			h3("Reference"),
			elc("ul", "undecorated",
				li(externalLink("https://neo4j.com/developer/guide-importing-data-and-etl/", "Full Northwind import example")),
				li(externalLink("https://neo4j.com/developer/", "Developer resources")),
				li(manualLink("cypher-manual", "/", "Neo4j Cypher Manual")),
			),
		),
	),
}
