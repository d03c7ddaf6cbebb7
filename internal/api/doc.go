// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts HTTP concerns to the service layer and maps
// internal errors to sanitized status codes and messages.
package api
