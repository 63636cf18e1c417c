// pdfsample renders an HTML file to a PDF document, producing sample input
// for pdfdump.
//
// Usage:
//
//	pdfsample [options] <file.html>
//
// Options:
//
//	-o <file>      Output PDF path (default: input name with .pdf extension)
//	-size <name>   Paper size: a4, letter, legal (default: a4)
//	-landscape     Landscape orientation
//	-no-sandbox    Disable the Chrome sandbox (needed when running as root)
//	-download      Download Chromium if no browser is installed
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/porticus-lab/pdfdump/internal/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

type options struct {
	input     string
	output    string
	page      render.PageConfig
	noSandbox bool
	download  bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("pdfsample", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	size := fs.String("size", "a4", "paper size: a4, letter, legal")
	fs.StringVar(&o.output, "o", "", "output PDF path")
	fs.BoolVar(&o.page.Landscape, "landscape", false, "landscape orientation")
	fs.BoolVar(&o.noSandbox, "no-sandbox", false, "disable the Chrome sandbox")
	fs.BoolVar(&o.download, "download", false, "download Chromium if none is installed")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if fs.NArg() != 1 {
		return o, fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	o.input = fs.Arg(0)

	ps, ok := render.PageSizes[strings.ToLower(*size)]
	if !ok {
		return o, fmt.Errorf("unknown paper size %q", *size)
	}
	o.page.Size = ps
	o.page.PrintBackground = true

	if o.output == "" {
		o.output = strings.TrimSuffix(o.input, filepath.Ext(o.input)) + ".pdf"
	}
	return o, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	o, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	var opts []render.Option
	if o.noSandbox {
		opts = append(opts, render.WithNoSandbox())
	}
	if o.download {
		opts = append(opts, render.WithAutoDownload())
	}

	r, err := render.New(opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	data, err := r.File(ctx, o.input, &o.page)
	if err != nil {
		return err
	}
	if err := os.WriteFile(o.output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", o.output, err)
	}
	fmt.Fprintf(stderr, "wrote %s (%d bytes)\n", o.output, len(data))
	return nil
}
