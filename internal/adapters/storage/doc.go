// Package storage persists the task collection in a durable key-value store.
//
// The whole collection is one JSON document stored under a single key and
// replaced on every save. Two backends implement the key-value contract:
// SQLite (via github.com/mattn/go-sqlite3) and a directory of files written
// atomically. Persister layers the best-effort contract used by the rest of
// the service on top: failures are logged and never block task actions.
package storage
