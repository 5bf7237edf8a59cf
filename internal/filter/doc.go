// Package filter narrows and orders scraped episode candidates.
//
// A subscription owns a Spec (include/exclude terms, an optional regex, and
// source/group restrictions); the pipeline applies the spec together with the
// process-wide Globals in a fixed stage order: include, global include,
// exclude, regex, age cutoff, dedup by episode number, and optional
// keyword-weight ranking. Every stage either narrows or reorders the working
// set. A bad user regex is reported and skipped rather than dropping the
// whole candidate list.
package filter
