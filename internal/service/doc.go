// Package service orchestrates store operations for the task API.
// It owns the request-scoped transaction discipline and the one piece
// of presentation logic in the system: synthesizing the mock result
// block for optimize_route task views.
package service
