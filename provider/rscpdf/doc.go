// Package rscpdf registers a pdfdump provider backed by rsc.io/pdf. It is
// the fallback candidate, used when the ledongthuc provider is not built in.
//
// Build with the pdfdump_no_rscpdf tag to leave it out.
package rscpdf
