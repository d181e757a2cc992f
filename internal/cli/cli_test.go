package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"generate": false, "serve": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"html", "pdf", "png"}},
		{"pdf", []string{"pdf"}},
		{"html,png", []string{"html", "png"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadServeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labelgen.toml")
	content := `
addr = ":9090"

[store]
backend = "redis"
redis_addr = "redis.internal:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadServeConfig(path)
	if err != nil {
		t.Fatalf("loadServeConfig() error = %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Store.Backend != "redis" {
		t.Errorf("Store.Backend = %q, want redis", cfg.Store.Backend)
	}
	if cfg.Store.RedisAddr != "redis.internal:6379" {
		t.Errorf("Store.RedisAddr = %q", cfg.Store.RedisAddr)
	}
	// Untouched keys keep their defaults.
	if cfg.Store.MongoDB != appName {
		t.Errorf("Store.MongoDB = %q, want %q", cfg.Store.MongoDB, appName)
	}
}

func TestLoadServeConfigDefaults(t *testing.T) {
	cfg, err := loadServeConfig("")
	if err != nil {
		t.Fatalf("loadServeConfig() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Store.Backend = %q, want file", cfg.Store.Backend)
	}
}

func TestLoadServeConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labelgen.toml")
	if err := os.WriteFile(path, []byte("adress = \":8080\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadServeConfig(path); err == nil {
		t.Fatal("loadServeConfig() accepted unknown key")
	}
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	reqPath := filepath.Join(dir, "paleta.json")
	body := `{
		"recipe_title": "Coconut Paleta",
		"recipe_data": {
			"items": [{"fdc_id": 1103575, "description": "Coconut milk"}],
			"total": {"calories": 180}
		},
		"business_info": {"business_name": "Curado Kitchen"},
		"nutrition_adjustments": {"calories": 180, "fat": 15, "saturated_fat": 13}
	}`
	if err := os.WriteFile(reqPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	opts := &generateOpts{
		output:  filepath.Join(dir, "out"),
		formats: []string{"html", "pdf", "png"},
	}
	if err := c.runGenerate(context.Background(), reqPath, opts); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	for _, format := range opts.formats {
		data, err := os.ReadFile(filepath.Join(dir, "out."+format))
		if err != nil {
			t.Fatalf("read %s artifact: %v", format, err)
		}
		if len(data) == 0 {
			t.Errorf("%s artifact is empty", format)
		}
	}
	pdf, _ := os.ReadFile(filepath.Join(dir, "out.pdf"))
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("pdf artifact missing header")
	}
}

func TestRunGenerateRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	reqPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(reqPath, []byte(`{"recipe_titel": "typo"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	err := c.runGenerate(context.Background(), reqPath, &generateOpts{formats: []string{"html"}})
	if err == nil {
		t.Fatal("runGenerate() accepted unknown request field")
	}
}
