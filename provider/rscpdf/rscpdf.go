//go:build !pdfdump_no_rscpdf

package rscpdf

import (
	"fmt"
	"os"
	"strings"

	"rsc.io/pdf"

	"github.com/porticus-lab/pdfdump"
)

// Name is the name the provider is registered under.
const Name = "rscpdf"

func init() {
	pdfdump.Register(Name, func() (pdfdump.Provider, error) {
		return New(), nil
	})
}

// Provider opens documents with rsc.io/pdf.
type Provider struct{}

// New returns a Provider.
func New() *Provider {
	return &Provider{}
}

// Name implements pdfdump.Provider.
func (*Provider) Name() string { return Name }

// Open implements pdfdump.Provider. rsc.io/pdf.Open never closes its file,
// so the file is opened here and owned by the returned document.
func (*Provider) Open(path string) (doc pdfdump.Document, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("malformed PDF: %v", r)
		}
		if err != nil {
			f.Close()
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return nil, err
	}
	return &document{f: f, r: r, n: r.NumPage()}, nil
}

type document struct {
	f *os.File
	r *pdf.Reader
	n int
}

func (d *document) NumPages() int {
	return d.n
}

func (d *document) Page(i int) (pdfdump.Page, error) {
	if i < 0 || i >= d.n {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", i, d.n)
	}
	p := d.r.Page(i + 1)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", i+1)
	}
	return page{p: p}, nil
}

func (d *document) Close() error {
	return d.f.Close()
}

type page struct {
	p pdf.Page
}

// wordGap is the horizontal gap, as a fraction of the font size, above
// which two glyphs on the same baseline are taken to be separate words.
const wordGap = 0.2

// Text joins the page's glyphs in content-stream order. rsc.io/pdf drops
// space glyphs, so spaces are restored from the gaps between glyphs, and a
// new line starts whenever the baseline moves.
func (pg page) Text() (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("extracting text: %v", r)
		}
	}()

	glyphs := pg.p.Content().Text
	var b strings.Builder
	for i, t := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			switch {
			case t.Y != prev.Y:
				b.WriteByte('\n')
			case t.X-(prev.X+prev.W) > wordGap*t.FontSize:
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	return b.String(), nil
}
