// Package store persists shows, bindings, manual links, subscriptions, and
// queued downloads in SQLite.
//
// All reads and writes go through a single Store backed by one database
// file. The schema is created on first open and verified by version on
// subsequent opens. Scanning a row with an out-of-range weekday fails the
// read; that condition means the scraper wrote corrupt data and must not
// propagate silently.
package store
