package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line    string
		key     string
		val     string
		wantHit bool
	}{
		{"PORT=9090", "PORT", "9090", true},
		{"export MONGODB_URI=\"mongodb://localhost:27017\"", "MONGODB_URI", "mongodb://localhost:27017", true},
		{"  LLM_MODEL = 'gpt-4o-mini' ", "LLM_MODEL", "gpt-4o-mini", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"NOEQUALS", "", "", false},
		{"=value", "", "", false},
	}
	for _, tc := range cases {
		key, val, ok := parseEnvLine(tc.line)
		if ok != tc.wantHit || key != tc.key || val != tc.val {
			t.Fatalf("parseEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)", tc.line, key, val, ok, tc.key, tc.val, tc.wantHit)
		}
	}
}

func TestLoadEnvFilesKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("RB_TEST_EXISTING=file\nRB_TEST_NEW=file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("RB_TEST_EXISTING", "process")
	t.Cleanup(func() { _ = os.Unsetenv("RB_TEST_NEW") })

	loadEnvFiles(filepath.Join(dir, "missing.env"), path)

	if got := os.Getenv("RB_TEST_EXISTING"); got != "process" {
		t.Fatalf("expected process value to win, got %q", got)
	}
	if got := os.Getenv("RB_TEST_NEW"); got != "file" {
		t.Fatalf("expected file value, got %q", got)
	}
}
