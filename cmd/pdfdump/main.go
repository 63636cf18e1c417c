// pdfdump prints the text content of a PDF document, page by page.
//
// The document path is fixed at build time and can only be changed through
// the environment:
//
//	PDFDUMP_FILE       PDF document to dump
//	PDFDUMP_PROVIDERS  comma-separated provider preference order (default: ledongthuc,rscpdf)
//	PDFDUMP_LOG_LEVEL  stderr log level: debug, info, warn, error (default: warn)
//
// The command always exits with status 0. MISSING_LIB on standard output
// means no PDF provider was built in; an "ERROR: " line means the document
// could not be read.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/porticus-lab/pdfdump"
	"github.com/porticus-lab/pdfdump/internal/config"
	_ "github.com/porticus-lab/pdfdump/provider/ledongthuc"
	_ "github.com/porticus-lab/pdfdump/provider/rscpdf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// run dumps the configured document to stdout and returns the exit status.
func run(ctx context.Context, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, cfgErr := config.Load(getenv)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if cfgErr != nil {
		logger.Warn("ignoring invalid configuration", "error", cfgErr)
	}
	logger.Debug("starting", "path", cfg.Path, "candidates", cfg.Candidates, "registered", pdfdump.Registered())

	d := pdfdump.New(
		pdfdump.WithPath(cfg.Path),
		pdfdump.WithCandidates(cfg.Candidates...),
		pdfdump.WithOutput(stdout),
		pdfdump.WithLogger(logger),
	)

	err := d.Run(ctx)
	var de *pdfdump.DocumentError
	if errors.As(err, &de) {
		logger.Warn("dump failed", "path", de.Path, "page", de.Page, "error", de.Err)
	}
	return 0
}
