// Package catalog persists scan-run history in SQLite.
//
// The Store manages the database connection, schema initialization, and a
// file lock that enforces a single writer per catalog directory. Each
// recorded run captures the source path, the threshold used, and how many
// titles were extracted and reported, so `reelscan history` can show how a
// dump has evolved over time.
//
// The database is a convenience cache, not an archive: schema changes bump
// the version in schema.go and users delete the database to adopt the new
// schema.
package catalog
