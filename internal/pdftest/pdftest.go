// Package pdftest builds small, valid PDF files for tests.
//
// The documents use a single uncompressed content stream per page and the
// standard Helvetica font with WinAnsiEncoding and explicit glyph widths,
// which every provider can decode without embedded font programs.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Build returns a PDF with one page per element of pages. Lines within a
// page are separated by "\n" and laid out top to bottom; an empty string
// produces a page with an empty content stream.
func Build(pages ...string) []byte {
	streams := make([][]byte, len(pages))
	for i, p := range pages {
		streams[i] = TextStream(p)
	}
	return BuildStreams(streams...)
}

// TextStream returns a content stream that shows text using T* to move
// between lines.
func TextStream(text string) []byte {
	if text == "" {
		return nil
	}
	var b bytes.Buffer
	b.WriteString("BT /F1 12 Tf 14 TL 72 720 Td")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString(" T*")
		}
		b.WriteString(" (" + escape(line) + ") Tj")
	}
	b.WriteString(" ET")
	return b.Bytes()
}

// BuildStreams returns a PDF whose pages carry the given raw content streams.
func BuildStreams(streams ...[]byte) []byte {
	var buf bytes.Buffer
	offsets := map[int]int{}
	obj := func(id int, body string) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
	}

	buf.WriteString("%PDF-1.4\n")

	numPages := len(streams)
	fontID := 3 + numPages*2
	kids := make([]string, numPages)
	for i := range streams {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i*2)
	}

	obj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	obj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), numPages))

	for i, cs := range streams {
		pageID := 3 + i*2
		csID := pageID + 1
		obj(pageID, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792]"+
			" /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>", csID, fontID))

		offsets[csID] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n", csID, len(cs))
		buf.Write(cs)
		buf.WriteString("\nendstream\nendobj\n")
	}

	obj(fontID, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding"+
		" /FirstChar 32 /LastChar 126 /Widths ["+glyphWidths+"] >>")
	size := fontID + 1

	xrefOff := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id < size; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\n", size)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xrefOff)
	return buf.Bytes()
}

// WriteFile writes data to a file named name inside a fresh temporary
// directory and returns its path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// glyphWidths gives every printable ASCII glyph the same advance, so that
// word gaps are visible to providers that position glyphs individually.
var glyphWidths = strings.TrimSpace(strings.Repeat("500 ", 126-32+1))

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
