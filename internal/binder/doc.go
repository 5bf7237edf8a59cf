// Package binder reconciles per-source show records with canonical shows.
//
// Each tracker site keeps its own copy of a show under its own keyword; the
// binder matches those unbound copies against the canonical show list by name
// similarity and records a binding when the best score clears the threshold.
// Bindings are write-once: the binder never unsets a canonical id, and
// re-running a pass over the same inputs changes nothing. After binding it
// recomputes each canonical show's has-data-source flag so subscriptions know
// whether any site is actually feeding them.
package binder
