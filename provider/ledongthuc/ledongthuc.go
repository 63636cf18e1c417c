//go:build !pdfdump_no_ledongthuc

package ledongthuc

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/porticus-lab/pdfdump"
)

// Name is the name the provider is registered under.
const Name = "ledongthuc"

func init() {
	pdfdump.Register(Name, func() (pdfdump.Provider, error) {
		return New(), nil
	})
}

// Provider opens documents with github.com/ledongthuc/pdf.
type Provider struct{}

// New returns a Provider.
func New() *Provider {
	return &Provider{}
}

// Name implements pdfdump.Provider.
func (*Provider) Name() string { return Name }

// newReader builds the reader over an opened file. Replaced in tests.
var newReader = pdf.NewReader

// Open implements pdfdump.Provider. The file is closed again if the reader
// cannot be built, including when ledongthuc/pdf panics on a malformed file.
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
	r, err := newReader(f, fi.Size())
	if err != nil {
		return nil, err
	}
	return &document{f: f, r: r}, nil
}

type document struct {
	f *os.File
	r *pdf.Reader
}

func (d *document) NumPages() int {
	return d.r.NumPage()
}

func (d *document) Page(i int) (pdfdump.Page, error) {
	if i < 0 || i >= d.r.NumPage() {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", i, d.r.NumPage())
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

// Text resolves the page's own font resources before extracting, since
// resource names such as /F1 are only unique within a page.
func (pg page) Text() (string, error) {
	fonts := make(map[string]*pdf.Font)
	for _, name := range pg.p.Fonts() {
		f := pg.p.Font(name)
		fonts[name] = &f
	}
	return pg.p.GetPlainText(fonts)
}
