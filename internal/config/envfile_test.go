package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n")
}

func TestUpdateEnvFileCreatesFile(t *testing.T) {
	t.Setenv("SITE_NAME", "")
	path := filepath.Join(t.TempDir(), ".env")

	require.NoError(t, UpdateEnvFile(path, "SITE_NAME", "Acme"))

	require.Equal(t, []string{"SITE_NAME=Acme"}, readLines(t, path))
	// The process environment is refreshed after the rewrite.
	require.Equal(t, "Acme", os.Getenv("SITE_NAME"))
}

func TestUpdateEnvFileQuotesWhitespaceAndHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	t.Setenv("SITE_NAME", "")
	t.Setenv("NOTE", "")

	require.NoError(t, UpdateEnvFile(path, "SITE_NAME", "Acme Store"))
	require.NoError(t, UpdateEnvFile(path, "NOTE", "50% off #deal"))

	lines := readLines(t, path)
	require.Contains(t, lines, `SITE_NAME="Acme Store"`)
	require.Contains(t, lines, `NOTE="50% off #deal"`)
}

func TestUpdateEnvFileReplacesInPlace(t *testing.T) {
	t.Setenv("SITE_NAME", "")
	path := filepath.Join(t.TempDir(), ".env")
	seed := "APP_ENV=dev\nSITE_NAME=Old\nPORT=5000\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	require.NoError(t, UpdateEnvFile(path, "SITE_NAME", "New"))

	// Replaced where it stood: surrounding keys keep their positions.
	require.Equal(t, []string{"APP_ENV=dev", "SITE_NAME=New", "PORT=5000"}, readLines(t, path))
}

func TestUpdateEnvFileAppendsNewKey(t *testing.T) {
	t.Setenv("EXTRA_KEY", "")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=dev\n"), 0o644))

	require.NoError(t, UpdateEnvFile(path, "EXTRA_KEY", "v"))

	require.Equal(t, []string{"APP_ENV=dev", "EXTRA_KEY=v"}, readLines(t, path))
}

func TestUpdateEnvFileCollapsesNewlines(t *testing.T) {
	t.Setenv("SITE_NAME", "")
	path := filepath.Join(t.TempDir(), ".env")

	require.NoError(t, UpdateEnvFile(path, "SITE_NAME", "line one\nline two"))

	require.Equal(t, []string{`SITE_NAME="line one line two"`}, readLines(t, path))
}

func TestNormalizeEnvValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{"", ""},
		{"two words", `"two words"`},
		{"a#b", `"a#b"`},
		{`say "hi"`, `"say \"hi\""`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, normalizeEnvValue(tt.in), "input %q", tt.in)
	}
}
