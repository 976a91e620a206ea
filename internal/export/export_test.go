package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jorge-barreto/guidebook/internal/docs"
	"github.com/jorge-barreto/guidebook/internal/library"
	"github.com/jorge-barreto/guidebook/internal/loader"
)

func builtinHelp(t *testing.T) []loader.Entry {
	t.Helper()
	reg := docs.New()
	if err := library.RegisterHelp(reg); err != nil {
		t.Fatal(err)
	}
	var out []loader.Entry
	for _, rec := range reg.All() {
		out = append(out, loader.FromRecord(loader.KindHelp, rec))
	}
	return out
}

func TestEncode_YAMLIsContentFile(t *testing.T) {
	entries := builtinHelp(t)
	data, err := Encode(entries, "yaml")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(data), "key: rest-delete") {
		t.Errorf("missing key in output:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "help.yaml")
	if err := WriteFile(path, data); err != nil {
		t.Fatal(err)
	}
	back, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("exported YAML does not load: %v", err)
	}
	for i := range back {
		back[i].Source = ""
	}
	if diff := cmp.Diff(entries, back); diff != "" {
		t.Errorf("reloaded entries differ (-want +got):\n%s", diff)
	}
}

func TestEncode_JSON(t *testing.T) {
	data, err := Encode(builtinHelp(t), "json")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var back []map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || back[0]["category"] != "restApiCommands" || back[0]["kind"] != "help" {
		t.Errorf("unexpected json: %s", data)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if _, err := Encode(nil, "xml"); err == nil || !strings.Contains(err.Error(), "unknown export format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestWriteFile_Basic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "help.yaml")

	if err := WriteFile(path, []byte("- key: x\n")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "- key: x\n" {
		t.Fatalf("got %q", string(data))
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file should not exist after atomic write")
	}
}

func TestWriteFile_OverwriteExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "help.json")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("new")); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Fatalf("got %q, want %q", string(data), "new")
	}
}

func TestWriteFile_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.yaml")
	if err := WriteFile(path, []byte("x")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
