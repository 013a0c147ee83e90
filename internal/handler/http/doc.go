// Package http implements the HTTP transport layer of fortuna.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// session cookie resolution and login rate limiting are handled in this
// package before requests are delegated to the service layer.
package http
