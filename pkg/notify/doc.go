// Package notify provides the single-slot notification mailbox used to
// surface auth, mutation and import/export outcomes to the presentation
// layer. Replace-and-clear semantics only: no queueing, no history.
package notify
