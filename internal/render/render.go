// Package render produces sample PDF documents from HTML with headless
// Chrome, driven over the Chrome DevTools Protocol.
//
// It exists so that realistic, multi-page documents with embedded fonts can
// be generated for dumping; hand-built fixtures only cover the simplest
// text encodings.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrClosed is returned when rendering with a closed [Renderer].
var ErrClosed = errors.New("render: renderer is closed")

// Renderer converts HTML into PDF documents.
//
// A Renderer owns one browser process that is reused across renders. It is
// safe for concurrent use; each render runs in its own tab. Call
// [Renderer.Close] to stop the browser.
type Renderer struct {
	cfg           rendererConfig
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// New starts a headless browser and returns a Renderer using it.
func New(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	execPath, err := resolveBrowser(cfg)
	if err != nil {
		return nil, err
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.NoSandbox)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser now so launch errors surface here.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("render: starting browser: %w", err)
	}

	return &Renderer{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close stops the browser. Close is idempotent.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.browserCancel()
	r.allocCancel()
	return nil
}

// HTML renders an HTML document to PDF. A nil pg uses [DefaultPageConfig].
func (r *Renderer) HTML(ctx context.Context, html string, pg *PageConfig) ([]byte, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "pdfdump-*.html")
	if err != nil {
		return nil, fmt.Errorf("render: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return nil, fmt.Errorf("render: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("render: closing temp file: %w", err)
	}
	return r.render(ctx, name, pg)
}

// File renders a local HTML file to PDF. A nil pg uses [DefaultPageConfig].
func (r *Renderer) File(ctx context.Context, path string, pg *PageConfig) ([]byte, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return r.render(ctx, path, pg)
}

func (r *Renderer) render(ctx context.Context, path string, pg *PageConfig) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("render: resolving path: %w", err)
	}

	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	// The tab derives from the browser context; stop it when ctx ends.
	tabCtx, tabCancel := chromedp.NewContext(r.browserCtx)
	defer tabCancel()
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	resolved := pg.resolved()
	width, height, margin := resolved.paperInches()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(abs)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(margin).
				WithMarginRight(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithPrintBackground(resolved.PrintBackground).
				Do(ctx)
			return err
		}),
	); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("render: %w", ctx.Err())
		}
		return nil, fmt.Errorf("render: printing to PDF: %w", err)
	}
	return buf, nil
}

func (r *Renderer) checkClosed() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	return nil
}
