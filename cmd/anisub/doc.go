// Command anisub tracks anime subscriptions: it binds tracker-site show
// records to canonical shows, filters scraped episodes, and queues the
// survivors for download.
package main
