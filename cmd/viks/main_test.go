package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunNormalize(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"normalize", "<S-A>x", "<cr>"}, &stdout, &stderr)
	if status != 0 {
		t.Fatalf("status = %d, stderr = %s", status, stderr.String())
	}
	want := "Ax\n<enter>\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunNormalizeInvalid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	status := run([]string{"normalize", "<oops>"}, &stdout, &stderr)
	if status != 1 {
		t.Errorf("status = %d, want 1", status)
	}
	if !strings.Contains(stderr.String(), "<oops>") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.toml")
	if err := os.WriteFile(good, []byte("[[bindings]]\nkeys = \"ZZ\"\naction = \"quit\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[[bindings]]\nkeys = \"<oops>\"\naction = \"quit\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if status := run([]string{"check", good}, &stdout, &stderr); status != 0 {
		t.Errorf("check good: status = %d, stderr = %s", status, stderr.String())
	}
	if !strings.Contains(stdout.String(), "1 bindings ok") {
		t.Errorf("stdout = %q", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	if status := run([]string{"check", bad}, &stdout, &stderr); status != 1 {
		t.Errorf("check bad: status = %d", status)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if status := run([]string{"frobnicate"}, &stdout, &stderr); status != 2 {
		t.Errorf("status = %d, want 2", status)
	}
	if status := run(nil, &stdout, &stderr); status != 2 {
		t.Errorf("no args: status = %d, want 2", status)
	}
}
