// Package http implements the HTTP transport layer of the report catalog.
//
// It exposes route wiring, request handlers, and middleware for the
// server-rendered catalog pages. Request tracing, access logging, metrics,
// session loading and the login/admin gates are handled in this package
// before requests are delegated to the service layer.
package http
