package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	assetsDir  string
	pagesDir   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("PAGEGEN_CONFIG", "")
	t.Setenv("PAGEGEN_LOG_LEVEL", "")

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		assetsDir:  filepath.Join(base, "assets"),
		pagesDir:   filepath.Join(base, "pages"),
	}
	if err := os.MkdirAll(env.assetsDir, 0o755); err != nil {
		t.Fatalf("mkdir assets: %v", err)
	}
	writeTestConfig(t, env)
	return env
}

func writeTestConfig(t *testing.T, env *cliTestEnv) {
	t.Helper()

	content := fmt.Sprintf(
		"[paths]\nroot = %q\nassets_dir = %q\npages_dir = %q\nlog_dir = %q\n\n[logging]\nformat = \"console\"\nlevel = \"error\"\n",
		env.baseDir,
		env.assetsDir,
		env.pagesDir,
		filepath.Join(env.baseDir, "logs"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func (env *cliTestEnv) writeAsset(t *testing.T, rel, body string) {
	t.Helper()

	path := filepath.Join(env.assetsDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func (env *cliTestEnv) writePage(t *testing.T, name, body string) {
	t.Helper()

	if err := os.MkdirAll(env.pagesDir, 0o755); err != nil {
		t.Fatalf("mkdir pages: %v", err)
	}
	if err := os.WriteFile(filepath.Join(env.pagesDir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write page %s: %v", name, err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
