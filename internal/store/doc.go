// Package store provides abstractions and implementations for data persistence.
// It defines repository interfaces consumed by the service layer, the sentinel
// errors they surface, and transaction helpers. Concrete SQL implementations
// live in internal/platform/postgres.
package store
