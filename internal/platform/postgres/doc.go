// Package postgres provides PostgreSQL implementations of the store
// interfaces. Database errors are translated to store sentinel errors at
// this boundary so nothing above it depends on driver error types.
package postgres
