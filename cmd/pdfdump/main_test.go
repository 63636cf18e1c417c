package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/porticus-lab/pdfdump/internal/config"
	"github.com/porticus-lab/pdfdump/internal/pdftest"
)

func runWithEnv(t *testing.T, vars map[string]string) (stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), &out, &errOut, func(key string) string { return vars[key] })
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	return out.String(), errOut.String()
}

func TestRunDumpsConfiguredFile(t *testing.T) {
	path := pdftest.WriteFile(t, "CA Automator.pdf", pdftest.Build("Balance sheet", "Notes"))

	for _, providers := range []string{"", "rscpdf", "ledongthuc"} {
		t.Run("providers="+providers, func(t *testing.T) {
			out, _ := runWithEnv(t, map[string]string{
				config.EnvFile:      path,
				config.EnvProviders: providers,
			})
			want := "--- START PDF CONTENT (2 pages) ---\n" +
				"--- PAGE 1 ---\nBalance sheet\n" +
				"--- PAGE 2 ---\nNotes\n" +
				"--- END PDF CONTENT ---\n"
			if out != want {
				t.Errorf("stdout = %q, want %q", out, want)
			}
		})
	}
}

func TestRunMissingLib(t *testing.T) {
	out, _ := runWithEnv(t, map[string]string{
		config.EnvProviders: "pypdf,PyPDF2",
	})
	if out != "MISSING_LIB\n" {
		t.Errorf("stdout = %q, want MISSING_LIB", out)
	}
}

func TestRunDefaultPathMissing(t *testing.T) {
	out, stderr := runWithEnv(t, nil)
	if !strings.HasPrefix(out, "ERROR: ") || strings.Count(out, "\n") != 1 {
		t.Errorf("stdout = %q, want a single ERROR line", out)
	}
	if !strings.Contains(stderr, "dump failed") {
		t.Errorf("stderr = %q, want a dump failure log", stderr)
	}
}

func TestRunInvalidLogLevel(t *testing.T) {
	path := pdftest.WriteFile(t, "doc.pdf", pdftest.Build("x"))
	out, stderr := runWithEnv(t, map[string]string{
		config.EnvFile:     path,
		config.EnvLogLevel: "loud",
	})
	if !strings.Contains(stderr, "ignoring invalid configuration") {
		t.Errorf("stderr = %q, want a configuration warning", stderr)
	}
	if !strings.HasPrefix(out, "--- START PDF CONTENT (1 pages) ---\n") {
		t.Errorf("stdout = %q, want the dump to proceed", out)
	}
}

func TestRunDiagnosticsStayOffStdout(t *testing.T) {
	path := pdftest.WriteFile(t, "doc.pdf", pdftest.Build("quiet"))
	out, stderr := runWithEnv(t, map[string]string{
		config.EnvFile:     path,
		config.EnvLogLevel: "debug",
	})
	if strings.Contains(out, "level=") {
		t.Errorf("log output leaked to stdout: %q", out)
	}
	if !strings.Contains(stderr, "provider selected") {
		t.Errorf("stderr = %q, want debug logs", stderr)
	}
}
