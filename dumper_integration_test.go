package pdfdump_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/porticus-lab/pdfdump"
	"github.com/porticus-lab/pdfdump/internal/pdftest"
	"github.com/porticus-lab/pdfdump/provider/ledongthuc"
	"github.com/porticus-lab/pdfdump/provider/rscpdf"
)

func dump(t *testing.T, opts ...pdfdump.Option) string {
	t.Helper()
	var buf bytes.Buffer
	err := pdfdump.New(append(opts, pdfdump.WithOutput(&buf))...).Run(context.Background())
	if err != nil {
		t.Logf("Run: %v", err)
	}
	return buf.String()
}

func TestDumpSameAcrossProviders(t *testing.T) {
	path := pdftest.WriteFile(t, "doc.pdf", pdftest.Build("Quarterly report", "", "Totals: 42"))

	want := "--- START PDF CONTENT (3 pages) ---\n" +
		"--- PAGE 1 ---\nQuarterly report\n" +
		"--- PAGE 2 ---\n\n" +
		"--- PAGE 3 ---\nTotals: 42\n" +
		"--- END PDF CONTENT ---\n"

	for _, name := range []string{ledongthuc.Name, rscpdf.Name} {
		t.Run(name, func(t *testing.T) {
			got := dump(t, pdfdump.WithPath(path), pdfdump.WithCandidates(name))
			if got != want {
				t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestDumpFallbackToSecondCandidate(t *testing.T) {
	path := pdftest.WriteFile(t, "doc.pdf", pdftest.Build("fallback"))

	fallback := dump(t, pdfdump.WithPath(path), pdfdump.WithCandidates("pypdf", rscpdf.Name))
	only := dump(t, pdfdump.WithPath(path), pdfdump.WithCandidates(rscpdf.Name))
	if fallback != only {
		t.Errorf("fallback output %q differs from %q", fallback, only)
	}
}

func TestDumpNonexistentFile(t *testing.T) {
	var buf bytes.Buffer
	err := pdfdump.New(
		pdfdump.WithPath(t.TempDir()+"/missing.pdf"),
		pdfdump.WithOutput(&buf),
	).Run(context.Background())

	var de *pdfdump.DocumentError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DocumentError", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "ERROR: ") || strings.Count(out, "\n") != 1 {
		t.Errorf("output = %q, want a single ERROR line", out)
	}
	if strings.Contains(out, "---") {
		t.Errorf("banner written for a missing file: %q", out)
	}
}

func TestDumpCorruptFile(t *testing.T) {
	path := pdftest.WriteFile(t, "corrupt.pdf", []byte("%PDF-1.4\ngarbage without xref or trailer\n%%EOF\n"))

	for _, name := range []string{ledongthuc.Name, rscpdf.Name} {
		t.Run(name, func(t *testing.T) {
			out := dump(t, pdfdump.WithPath(path), pdfdump.WithCandidates(name))
			if !strings.HasPrefix(out, "ERROR: ") {
				t.Errorf("output = %q, want an ERROR line", out)
			}
		})
	}
}

func TestDumpIdempotent(t *testing.T) {
	path := pdftest.WriteFile(t, "doc.pdf", pdftest.Build("one", "two\nlines"))
	first := dump(t, pdfdump.WithPath(path))
	second := dump(t, pdfdump.WithPath(path))
	if first != second {
		t.Errorf("outputs differ:\n%q\n%q", first, second)
	}
}
