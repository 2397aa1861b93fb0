// Package http implements the HTTP transport layer of the contacts API.
//
// It exposes route wiring, JSON request handlers, and middleware. Request
// tracing, access logging, CORS, bearer token authentication and the mapping
// of error kinds to status codes are handled in this package before requests
// are delegated to the service layer.
package http
