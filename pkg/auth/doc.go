// Package auth implements the session gate for the single local
// administrator: credential validation against the profile email and the
// stored admin secret, and the anonymous / viewing / editing state machine.
// Sessions are transient; only the admin secret itself lives in the store.
package auth
