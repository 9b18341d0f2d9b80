// Package persistence provides GORM-backed repository implementations for
// the domain contracts, plus connection management for the postgres
// production backend and the sqlite test backend.
package persistence
