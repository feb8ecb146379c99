// Package store provides SQLite-backed durable storage for recorded
// reading series.
//
// The store is an append-only log of readings: each row is one observed
// value for a named series with the instant it was taken. Summaries for
// the running accumulator (internal/series) are rebuilt from the log on
// demand, so the log remains the single source of truth.
//
// The arithmetic core (internal/measure, internal/interval) performs no
// I/O; only the recorder utility and the CLI touch the store.
//
// Database configuration:
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//
// All queries order by recorded_at then id to keep listings
// deterministic when timestamps collide.
package store
