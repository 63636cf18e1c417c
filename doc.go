// Package pdfdump prints the text content of a PDF document, page by page,
// using the first PDF-reading provider available in the build.
//
// # Providers
//
// Providers register themselves the way database/sql drivers do. Import the
// ones you want for their side effects:
//
//	import (
//	    _ "github.com/porticus-lab/pdfdump/provider/ledongthuc"
//	    _ "github.com/porticus-lab/pdfdump/provider/rscpdf"
//	)
//
// A provider can be compiled out with its build tag (pdfdump_no_ledongthuc,
// pdfdump_no_rscpdf). [Select] walks [DefaultCandidates] in order and returns
// the first provider whose factory succeeds.
//
// # Dumping
//
//	d := pdfdump.New(pdfdump.WithPath("report.pdf"))
//	if err := d.Run(ctx); err != nil {
//	    log.Print(err) // already reported on the output as well
//	}
//
// The output is line oriented:
//
//	--- START PDF CONTENT (2 pages) ---
//	--- PAGE 1 ---
//	<text of page 1>
//	--- PAGE 2 ---
//	<text of page 2>
//	--- END PDF CONTENT ---
//
// When no provider is available the single line MISSING_LIB is written.
// Any failure while opening the document or extracting text is written as
// a single "ERROR: <message>" line; lines already written are kept.
package pdfdump
