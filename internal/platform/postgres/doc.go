// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles query
// execution, mapping between rows and domain entities, translation of
// constraint violations into store errors, and the embedded goose migrations.
package postgres
