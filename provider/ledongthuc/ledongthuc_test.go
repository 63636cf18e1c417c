//go:build !pdfdump_no_ledongthuc

package ledongthuc

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/porticus-lab/pdfdump/internal/pdftest"
)

func TestProvider(t *testing.T) {
	pdftest.RunProviderTests(t, Name, New())
}

func TestOpenPanicClosesFile(t *testing.T) {
	var opened *os.File
	orig := newReader
	newReader = func(ra io.ReaderAt, size int64) (*pdf.Reader, error) {
		opened = ra.(*os.File)
		panic("malformed xref stream")
	}
	t.Cleanup(func() { newReader = orig })

	path := pdftest.WriteFile(t, "doc.pdf", pdftest.Build("x"))
	doc, err := New().Open(path)
	if err == nil || doc != nil {
		t.Fatalf("Open = %v, %v; want an error", doc, err)
	}
	if opened == nil {
		t.Fatal("reader was never built")
	}
	if err := opened.Close(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("file left open after panic: Close() = %v", err)
	}
}
