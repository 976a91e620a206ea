package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/guidebook/internal/config"
	"github.com/jorge-barreto/guidebook/internal/ux"
)

var configTemplate = `# Extra help topics and guides, relative to this file.
content:
  - content

width: 80
style: auto
`

var contentTemplate = `- kind: help
  key: rest-get
  title: REST GET
  category: restApiCommands
  body:
    tag: fragment
    children:
      - tag: p
        children:
          - text: "Use "
          - tag: code
            children: [{text: ":GET"}]
          - text: " to send HTTP GET to Neo4j's REST interface."
      - tag: pre
        attrs: {class: code runnable, mode: rest}
        children: [{text: ":GET /db/data/"}]

- kind: guide
  key: intro
  title: Getting Started
  category: guides
  body:
    tag: fragment
    children:
      - tag: slide
        children:
          - tag: h3
            children: [{text: Welcome}]
          - tag: p
            children: [{text: "Guides are decks of slides. Each slide is a tree of nodes."}]
      - tag: slide
        children:
          - tag: h3
            children: [{text: Run a query}]
          - tag: pre
            attrs: {class: pre-scrollable code runnable, mode: cypher}
            children: [{text: "MATCH (n) RETURN count(n)"}]
`

// Init writes a starter .guidebook.yaml and content/example.yaml into
// targetDir.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	}

	contentDir := filepath.Join(targetDir, "content")
	if err := os.MkdirAll(contentDir, 0755); err != nil {
		return fmt.Errorf("creating content/: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	examplePath := filepath.Join(contentDir, "example.yaml")
	if err := os.WriteFile(examplePath, []byte(contentTemplate), 0644); err != nil {
		return fmt.Errorf("writing example.yaml: %w", err)
	}

	fmt.Printf("\n%s%s✓ Initialized guidebook content%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s%s%s        — content paths and display settings\n", ux.Cyan, config.FileName, ux.Reset)
	fmt.Printf("    %scontent/example.yaml%s   — one help topic and one guide\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Add topics and guides under %scontent/%s\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %sguidebook guide intro%s to view the example guide\n\n", ux.Cyan, ux.Reset)

	return nil
}
