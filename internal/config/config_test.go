package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"pagegen/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("PAGEGEN_CONFIG", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if cfg.Paths.Root != wd {
		t.Fatalf("unexpected root: got %q want %q", cfg.Paths.Root, wd)
	}
	if cfg.Paths.AssetsDir != filepath.Join(wd, "assets") {
		t.Fatalf("unexpected assets dir: %q", cfg.Paths.AssetsDir)
	}
	if cfg.Paths.PagesDir != filepath.Join(wd, "pages") {
		t.Fatalf("unexpected pages dir: %q", cfg.Paths.PagesDir)
	}
	wantLogs := filepath.Join(tempHome, ".local", "share", "pagegen", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.Generator.DescriptorName != "index.ini" {
		t.Fatalf("unexpected descriptor name: %q", cfg.Generator.DescriptorName)
	}
	if cfg.Generator.PageExtension != ".md" {
		t.Fatalf("unexpected page extension: %q", cfg.Generator.PageExtension)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "pagegen.toml")

	type payload struct {
		Paths struct {
			Root      string `toml:"root"`
			AssetsDir string `toml:"assets_dir"`
			PagesDir  string `toml:"pages_dir"`
		} `toml:"paths"`
		Generator struct {
			DescriptorName string `toml:"descriptor_name"`
			PageExtension  string `toml:"page_extension"`
		} `toml:"generator"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.Root = tempDir
	custom.Paths.AssetsDir = "content"
	custom.Paths.PagesDir = "out"
	custom.Generator.DescriptorName = "page.ini"
	custom.Generator.PageExtension = "markdown"
	custom.Logging.Format = "json"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.AssetsDir != filepath.Join(tempDir, "content") {
		t.Fatalf("expected assets dir anchored to root, got %q", cfg.Paths.AssetsDir)
	}
	if cfg.Paths.PagesDir != filepath.Join(tempDir, "out") {
		t.Fatalf("expected pages dir anchored to root, got %q", cfg.Paths.PagesDir)
	}
	if cfg.Generator.DescriptorName != "page.ini" {
		t.Fatalf("expected descriptor override, got %q", cfg.Generator.DescriptorName)
	}
	if cfg.Generator.PageExtension != ".markdown" {
		t.Fatalf("expected leading dot added to extension, got %q", cfg.Generator.PageExtension)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadHonorsEnvConfigPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "from-env.toml")

	type payload struct {
		Paths struct {
			Root string `toml:"root"`
		} `toml:"paths"`
	}
	custom := payload{}
	custom.Paths.Root = tempDir
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	t.Setenv("PAGEGEN_CONFIG", configPath)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.Root != tempDir {
		t.Fatalf("unexpected root: got %q want %q", cfg.Paths.Root, tempDir)
	}
}

func TestLogLevelEnvOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "pagegen.toml")

	type payload struct {
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Logging.Level = "warn"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	t.Setenv("PAGEGEN_LOG_LEVEL", "debug")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "assets_dir") {
		t.Fatalf("sample config missing assets_dir: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Generator.DescriptorName != "index.ini" {
		t.Fatalf("unexpected descriptor name in sample: %q", cfg.Generator.DescriptorName)
	}
	if cfg.Generator.PageExtension != ".md" {
		t.Fatalf("unexpected page extension in sample: %q", cfg.Generator.PageExtension)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.AssetsDir = "/tmp/site"
	cfg.Paths.PagesDir = "/tmp/site"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when assets and pages collide")
	}

	cfg = config.Default()
	cfg.Generator.DescriptorName = "sub/index.ini"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for descriptor name with separator")
	}

	cfg = config.Default()
	cfg.Generator.PageExtension = "."
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for bare dot extension")
	}
}

func TestEnsureDirectoriesCreatesLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(cfg.Paths.LogDir)
	if err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be a directory", cfg.Paths.LogDir)
	}
	if !strings.HasPrefix(cfg.LockPath(), cfg.Paths.LogDir) {
		t.Fatalf("expected lock path under log dir, got %q", cfg.LockPath())
	}
}
