// Package llmscrape turns a single web page into a training-data sample.
// It fetches the page, strips boilerplate markup, normalizes whitespace,
// and truncates the remaining text to a character budget.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, rod/).
package llmscrape
