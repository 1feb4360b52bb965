// Package sqlite provides a SQLite-based implementation of the
// HistoryStore driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
//
// The history database is an append-only audit log of answered
// questions. It is never consulted while answering; every question
// re-fetches and re-chunks the article from scratch.
//
// # Data Location
//
// By default, the database is stored at ~/.wikiqa/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
