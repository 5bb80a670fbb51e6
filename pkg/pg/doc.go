// Package pg wires the PostgreSQL connection pool used by repositories and
// business-rule guards that consult the relational store: retried Connect,
// env-tagged Config, an embedded-FS goose migration runner, and a readiness
// probe.
package pg
