package pdfdump

import (
	"context"
	"fmt"
	"io"
)

// Output markers. They are part of the output format and must not change.
const (
	MissingLib  = "MISSING_LIB"
	startBanner = "--- START PDF CONTENT (%d pages) ---"
	pageBanner  = "--- PAGE %d ---"
	endBanner   = "--- END PDF CONTENT ---"
	errorLine   = "ERROR: %s"
)

// Dumper writes the text content of one PDF document to an output stream.
//
// A Dumper is configured once with [New] and may be run any number of
// times; each run selects a provider and reopens the document.
type Dumper struct {
	cfg dumperConfig
}

// New creates a Dumper with the given options.
func New(opts ...Option) *Dumper {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Dumper{cfg: cfg}
}

// Run selects a provider and dumps the document.
//
// Every outcome is reported on the output: the MISSING_LIB sentinel when no
// provider is available, or an ERROR line when the document cannot be
// processed. The returned error ([ErrProviderUnavailable] or a
// [*DocumentError]) is informational; callers need not report it again.
func (d *Dumper) Run(ctx context.Context) error {
	logger := d.cfg.logger

	p, err := selectProvider(logger, d.cfg.candidates)
	if err != nil {
		logger.Warn("no PDF provider available", "candidates", d.cfg.candidates)
		fmt.Fprintln(d.cfg.out, MissingLib)
		return err
	}

	if err := d.dump(ctx, p); err != nil {
		fmt.Fprintf(d.cfg.out, errorLine+"\n", err.Error())
		return err
	}
	return nil
}

// dump opens the document with p and writes the banners and page text.
// Panics raised by the provider are converted into a *DocumentError.
func (d *Dumper) dump(ctx context.Context, p Provider) (err error) {
	page := 0
	fail := func(cause error) error {
		return &DocumentError{Path: d.cfg.path, Page: page, Err: cause}
	}
	defer func() {
		if r := recover(); r != nil {
			err = fail(panicError(r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	logger := d.cfg.logger.With("provider", p.Name(), "path", d.cfg.path)
	doc, err := p.Open(d.cfg.path)
	if err != nil {
		return fail(err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			logger.Debug("closing document", "error", cerr)
		}
	}()

	w := &lineWriter{w: d.cfg.out}
	n := doc.NumPages()
	logger.Debug("document opened", "pages", n)

	w.printf(startBanner, n)
	for i := 0; i < n; i++ {
		page = i + 1
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		w.printf(pageBanner, page)

		pg, err := doc.Page(i)
		if err != nil {
			return fail(err)
		}
		text, err := pg.Text()
		if err != nil {
			return fail(err)
		}
		w.println(text)
		if w.err != nil {
			return fail(w.err)
		}
	}
	page = 0
	w.println(endBanner)
	if w.err != nil {
		return fail(w.err)
	}
	return nil
}

// lineWriter writes whole lines and remembers the first write error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	lw.println(fmt.Sprintf(format, args...))
}

func (lw *lineWriter) println(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s+"\n")
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
