// Package defaults is the schema defaults registry: the default value for
// every entity in the domain store. Stored profiles are reconciled against
// Profile() so an old backup never loses a nested config key introduced by
// a newer build, and a fresh store is seeded from New().
package defaults
