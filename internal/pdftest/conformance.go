package pdftest

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/porticus-lab/pdfdump"
)

// RunProviderTests checks the behavior every pdfdump provider must share:
// page counting, text extraction, empty pages, page bounds and open errors.
// name is the name p is expected to be registered under.
func RunProviderTests(t *testing.T, name string, p pdfdump.Provider) {
	t.Helper()

	open := func(t *testing.T, pages ...string) pdfdump.Document {
		t.Helper()
		path := WriteFile(t, "doc.pdf", Build(pages...))
		doc, err := p.Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		t.Cleanup(func() { doc.Close() })
		return doc
	}
	text := func(t *testing.T, doc pdfdump.Document, i int) string {
		t.Helper()
		pg, err := doc.Page(i)
		if err != nil {
			t.Fatalf("Page(%d): %v", i, err)
		}
		s, err := pg.Text()
		if err != nil {
			t.Fatalf("Text(): %v", err)
		}
		return s
	}

	t.Run("Registered", func(t *testing.T) {
		if p.Name() != name {
			t.Errorf("Name() = %q, want %q", p.Name(), name)
		}
		sel, err := pdfdump.Select(name)
		if err != nil {
			t.Fatalf("Select(%q): %v", name, err)
		}
		if sel.Name() != name {
			t.Errorf("selected %q, want %q", sel.Name(), name)
		}
	})

	t.Run("PageCount", func(t *testing.T) {
		for _, n := range []int{0, 1, 3} {
			pages := make([]string, n)
			for i := range pages {
				pages[i] = "page"
			}
			if got := open(t, pages...).NumPages(); got != n {
				t.Errorf("NumPages() = %d, want %d", got, n)
			}
		}
	})

	t.Run("ExtractText", func(t *testing.T) {
		doc := open(t, "Hello, World!", "Second (page)")
		for i, want := range []string{"Hello, World!", "Second (page)"} {
			if got := text(t, doc, i); got != want {
				t.Errorf("page %d text = %q, want %q", i, got, want)
			}
		}
	})

	t.Run("ExtractMultiline", func(t *testing.T) {
		got := text(t, open(t, "First line\nSecond line"), 0)
		for _, want := range []string{"First line", "Second line"} {
			if !strings.Contains(got, want) {
				t.Errorf("expected %q in output, got: %q", want, got)
			}
		}
		if strings.Index(got, "First") > strings.Index(got, "Second") {
			t.Errorf("lines out of order: %q", got)
		}
	})

	t.Run("EmptyPage", func(t *testing.T) {
		if got := text(t, open(t, ""), 0); got != "" {
			t.Errorf("empty page text = %q, want empty", got)
		}
	})

	t.Run("PageOutOfRange", func(t *testing.T) {
		doc := open(t, "only page")
		for _, i := range []int{-1, 1, 5} {
			if _, err := doc.Page(i); err == nil {
				t.Errorf("Page(%d): expected error", i)
			}
		}
	})

	t.Run("OpenMissingFile", func(t *testing.T) {
		_, err := p.Open("/nonexistent/dir/missing.pdf")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("err = %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("OpenNotPDF", func(t *testing.T) {
		path := WriteFile(t, "notes.pdf", []byte("this is plain text, not a PDF document at all\n"))
		if _, err := p.Open(path); err == nil {
			t.Fatal("expected error opening a non-PDF file")
		}
	})
}
