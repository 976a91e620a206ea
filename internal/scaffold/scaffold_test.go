package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/jorge-barreto/guidebook/internal/catalog"
	"github.com/jorge-barreto/guidebook/internal/config"
	"github.com/jorge-barreto/guidebook/internal/docs"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, path := range []string{
		config.FileName,
		"content",
		filepath.Join("content", "example.yaml"),
	} {
		full := filepath.Join(dir, path)
		info, err := os.Stat(full)
		if err != nil {
			t.Fatalf("%s not created: %v", path, err)
		}
		if !info.IsDir() && info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestInit_GeneratedContentLoads(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("config.Load failed on generated config: %v", err)
	}
	c, err := catalog.Build(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("catalog.Build failed on generated content: %v", err)
	}

	if _, err := c.Help.Lookup("rest-get"); err != nil {
		t.Errorf("rest-get: %v", err)
	}
	intro, err := c.Guides.Lookup("intro")
	if err != nil {
		t.Fatalf("intro: %v", err)
	}
	if n := len(docs.Slides(intro)); n != 2 {
		t.Errorf("intro has %d slides, want 2", n)
	}
}

func TestInit_FailsIfConfigExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("width: 80\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Init(dir)
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected error containing 'already exists', got: %s", err)
	}
}
