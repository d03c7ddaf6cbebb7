// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, the in-memory
// stores and stub services here are shared across test packages. Mocks expose
// optional function fields (CreateFn, GetByIDFn, ...) so individual tests can
// override behavior without redefining the whole type.
package mocks
