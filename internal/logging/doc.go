// Package logging provides slog construction and shared attribute helpers.
//
// Components receive a *slog.Logger and tag it with their name through
// NewComponentLogger; a nil base logger degrades to a no-op so library code
// never has to nil-check before logging. Two output formats are supported:
// a human-oriented console format (key=value pairs after the message) and
// line-delimited JSON for ingestion.
package logging
