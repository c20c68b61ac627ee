package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/document"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\nDuct tape.\n"

func noEnv(string) (string, bool) { return "", false }

func envWith(key, value string) config.LookupFunc {
	return func(k string) (string, bool) {
		if k == key {
			return value, true
		}
		return "", false
	}
}

// runCommand executes the search command and returns stdout.
func runCommand(t *testing.T, lookup config.LookupFunc, args ...string) (string, error) {
	t.Helper()
	cmd := NewSearchCommand(lookup)
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writePoem(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(path, []byte(poem), 0644); err != nil {
		t.Fatalf("Failed to create poem: %v", err)
	}
	return path
}

func TestNewSearchCommand(t *testing.T) {
	cmd := NewSearchCommand(noEnv)

	if cmd.Use != "minigrep <query> <file_path>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"ignore-case", "line-number", "count", "unicode-fold", "output", "config", "debug", "log-file"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}

	if !strings.Contains(cmd.Long, "CASE_INSENSITIVE") {
		t.Error("Long description should document CASE_INSENSITIVE")
	}
}

func TestRunSearch_CaseSensitive(t *testing.T) {
	path := writePoem(t)

	out, err := runCommand(t, noEnv, "duct", path)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "safe, fast, productive.\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunSearch_EnvCaseInsensitive(t *testing.T) {
	path := writePoem(t)

	out, err := runCommand(t, envWith(config.EnvCaseInsensitive, ""), "rUsT", path)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "Rust:\nTrust me.\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunSearch_IgnoreCaseFlag(t *testing.T) {
	path := writePoem(t)

	out, err := runCommand(t, noEnv, "-i", "DUCT", path)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "safe, fast, productive.\nDuct tape.\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunSearch_LineNumberAndCount(t *testing.T) {
	path := writePoem(t)

	out, err := runCommand(t, noEnv, "-n", "st", path)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "1:Rust:\n2:safe, fast, productive.\n4:Trust me.\n" {
		t.Errorf("stdout = %q", out)
	}

	out, err = runCommand(t, noEnv, "--count", "st", path)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "3\n" {
		t.Errorf("stdout = %q, want count", out)
	}
}

func TestRunSearch_JSONOutput(t *testing.T) {
	path := writePoem(t)

	out, err := runCommand(t, noEnv, "-o", "json", "three", path)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	var parsed struct {
		Query   string `json:"query"`
		Matches []struct {
			LineNum int    `json:"line_num"`
			Line    string `json:"line"`
		} `json:"matches"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(parsed.Matches) != 1 || parsed.Matches[0].LineNum != 3 || parsed.Matches[0].Line != "Pick three." {
		t.Errorf("Matches = %+v", parsed.Matches)
	}
}

func TestRunSearch_SettingsFile(t *testing.T) {
	path := writePoem(t)
	settingsPath := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(settingsPath, []byte("line_number: true\n"), 0644); err != nil {
		t.Fatalf("Failed to create settings: %v", err)
	}

	out, err := runCommand(t, noEnv, "--config", settingsPath, "Pick", path)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "3:Pick three.\n" {
		t.Errorf("stdout = %q", out)
	}

	// An explicit flag overrides the file.
	out, err = runCommand(t, noEnv, "--config", settingsPath, "--line-number=false", "Pick", path)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if out != "Pick three.\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRunSearch_MissingArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"none", []string{}, "didn't get a query string"},
		{"query only", []string{"duct"}, "didn't get a file path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, noEnv, tt.args...)
			if !errors.Is(err, config.ErrMissingArgument) {
				t.Fatalf("error = %v, want ErrMissingArgument", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRunSearch_MissingFile(t *testing.T) {
	_, err := runCommand(t, noEnv, "duct", "/nonexistent/poem.txt")
	if !errors.Is(err, document.ErrIo) {
		t.Errorf("error = %v, want ErrIo", err)
	}
}

func TestRunSearch_InvalidOutput(t *testing.T) {
	path := writePoem(t)

	_, err := runCommand(t, noEnv, "-o", "xml", "duct", path)
	if err == nil {
		t.Error("Expected error for unknown output format")
	}
}

func TestRunSearch_InvalidSettingsFile(t *testing.T) {
	path := writePoem(t)

	_, err := runCommand(t, noEnv, "--config", "/nonexistent/settings.yaml", "duct", path)
	if err == nil {
		t.Error("Expected error for missing settings file")
	}
}

func TestCreateFormatter(t *testing.T) {
	tests := []struct {
		output  config.OutputFormat
		want    string
		wantErr bool
	}{
		{config.OutputText, "text", false},
		{config.OutputJSON, "json", false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.output), func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.Output = tt.output

			f, err := createFormatter(settings)
			if (err != nil) != tt.wantErr {
				t.Fatalf("createFormatter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && f.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", f.Name(), tt.want)
			}
		})
	}
}
