// Package registry holds the shared state behind a resource context: the
// resource metadata registry and the asset-binding table.
//
// Each structure owns its own reader-writer lock. No operation takes both
// locks, so there is no lock ordering to respect between them. Neither
// structure invokes a user callback while its lock is held.
//
// Go locks do not poison, so each lock is wrapped in a guard that does: a
// panic raised while the write lock is held marks the guard poisoned, and
// every later operation panics with *gpures.PoisonError.
package registry
