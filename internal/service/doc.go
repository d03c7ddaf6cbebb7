// Package service provides application-level services for authentication and
// task management. Services own the business rules, such as duplicate-email
// rejection, credential verification, task ownership, and pagination clamping,
// and depend on store interfaces injected through their constructors.
package service
