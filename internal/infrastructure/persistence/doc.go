// Package persistence implements the domain repositories on GORM, against
// SQLite for local development and tests or PostgreSQL in production.
package persistence
