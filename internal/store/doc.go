// Package store defines interfaces for task persistence and the
// transaction discipline the service layer relies on. It keeps the
// application core independent of the concrete database technology;
// the PostgreSQL implementation lives in internal/platform/postgres.
package store
