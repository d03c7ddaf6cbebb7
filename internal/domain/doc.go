// Package domain defines the core business entities of the task service:
// users, tasks, and the pagination envelope returned by list operations.
// Entities are created through NewX constructors that validate their
// invariants; persistence and transport concerns live elsewhere.
package domain
