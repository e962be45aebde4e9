// Package postgres provides the PostgreSQL implementation of the
// persistence interfaces defined in internal/store. It handles query
// execution and mapping between domain entities and database records,
// including jsonb payload serialization.
package postgres
