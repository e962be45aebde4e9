// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts between external clients and the
// internal task service, translating domain outcomes to transport
// outcomes.
package api
