// Package ledongthuc registers a pdfdump provider backed by
// github.com/ledongthuc/pdf. It is the first candidate tried by default.
//
// Build with the pdfdump_no_ledongthuc tag to leave it out.
package ledongthuc
