// Package archive is the sqlite-backed store of generated puzzles.
//
// Each record holds a generated puzzle's identity and wire forms: a
// UUID, the "WxH" parameter string, the generation seed, the persisted
// description, and the creation time. Save validates the description
// against its board before writing, so the archive never holds a
// puzzle that cannot be opened.
//
// Open creates or opens a database file and migrates the schema;
// OpenMemory backs the store with an in-memory database, which the
// tests use. The store is safe for concurrent use; connection pooling
// is database/sql's.
//
// Errors: ErrNotFound for missing records; codec sentinels for
// rejected parameters or descriptions; everything else is the
// database's.
package archive
