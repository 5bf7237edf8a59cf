// Package update drives the update-all-subscriptions workflow.
//
// A run takes a file lock so only one update touches the database at a time,
// refreshes per-source show records, binds unbound records to canonical
// shows, then fans out across subscriptions with a bounded worker pool:
// each worker gathers episodes from the sources feeding its show, numbers
// and filters them, and queues the survivors for download. Lookup tables
// (manual links, global filter config) are loaded once per run and read
// concurrently without locking.
package update
