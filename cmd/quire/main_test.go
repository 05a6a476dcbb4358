package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quire/internal/testsupport"
)

func writeTestConfig(t *testing.T, root string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`collection_root = "` + root + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		"[pieces]",
		"overwrite_pause_seconds = 0",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	root := testsupport.NewPieceDir(t, "bach_bwv846", ".ly")
	cfg := writeTestConfig(t, root)

	out, err := runCommand(t, "--config", cfg, "list")
	if err != nil {
		t.Fatalf("list: %v\n%s", err, out)
	}
	if !strings.Contains(out, "bach_bwv846") {
		t.Fatalf("listing missing piece: %s", out)
	}
}

func TestShowCommand(t *testing.T) {
	root := testsupport.NewPieceDir(t, "bach_bwv846", ".ly", ".mid")
	cfg := writeTestConfig(t, root)

	out, err := runCommand(t, "--config", cfg, "show", "bach_bwv846")
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}
	for _, fragment := range []string{"Authority: ly", "bach_bwv846.mid"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("show output missing %q:\n%s", fragment, out)
		}
	}
}

func TestPerfAddAndList(t *testing.T) {
	root := testsupport.NewPieceDir(t, "bach_bwv846", ".ly")
	cfg := writeTestConfig(t, root)

	audio := filepath.Join(t.TempDir(), "rec.wav")
	testsupport.WriteFile(t, audio, []byte("audio"))

	out, err := runCommand(t, "--config", cfg, "perf", "add", "bach_bwv846", "take1", "--audio", audio)
	if err != nil {
		t.Fatalf("perf add: %v\n%s", err, out)
	}

	out, err = runCommand(t, "--config", cfg, "perf", "list", "bach_bwv846")
	if err != nil {
		t.Fatalf("perf list: %v\n%s", err, out)
	}
	if !strings.Contains(out, "take1") {
		t.Fatalf("perf list missing take1:\n%s", out)
	}
}

func TestAuthorityCommandRejectsMissingEncoding(t *testing.T) {
	root := testsupport.NewPieceDir(t, "bach_bwv846", ".ly")
	cfg := writeTestConfig(t, root)

	if _, err := runCommand(t, "--config", cfg, "authority", "bach_bwv846", "mxml"); err == nil {
		t.Fatal("expected failure for absent mxml encoding")
	}
}

func TestConfigShowSkipsConfigLoad(t *testing.T) {
	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "collection_root") {
		t.Fatalf("sample config missing keys:\n%s", out)
	}
}
