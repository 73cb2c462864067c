package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

var newlineRE = regexp.MustCompile(`\r?\n`)

// normalizeEnvValue prepares a value for storage in an env file.  Newlines
// collapse to spaces and surrounding whitespace is trimmed.  Values that
// contain whitespace or a '#' would otherwise be truncated by env parsers,
// so they are double-quoted with embedded quotes escaped.
func normalizeEnvValue(value string) string {
	s := strings.TrimSpace(newlineRE.ReplaceAllString(value, " "))
	if s == "" {
		return ""
	}
	if strings.ContainsAny(s, " \t#") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}

// UpdateEnvFile sets key=value in the env file at path, rewriting the file
// in place.  An existing line for the key is replaced where it stands so the
// file layout survives; a new key is appended at the end.  The file always
// ends with exactly one newline.  After writing, the process environment is
// refreshed so the new value is visible without a restart.
func UpdateEnvFile(path, key, value string) error {
	var lines []string
	if b, err := os.ReadFile(path); err == nil {
		lines = newlineRE.Split(string(b), -1)
	} else if !os.IsNotExist(err) {
		return err
	}
	// Drop the dangling empty final line from the split so appends do not
	// accumulate blank lines across repeated rewrites.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	entry := key + "="
	line := entry + normalizeEnvValue(value)
	replaced := false
	for i, l := range lines {
		if strings.HasPrefix(l, entry) {
			lines[i] = line
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append(lines, line)
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return err
	}
	// Best effort: godotenv ignores the error when the file is unreadable,
	// the write above already succeeded.
	_ = godotenv.Overload(path)
	return nil
}
