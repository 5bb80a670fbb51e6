// Package redis provides the Redis client wiring used by guards that cache
// lookups against external state: retried Connect, env-tagged Config, and a
// readiness probe.
package redis
