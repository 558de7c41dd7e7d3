// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, the CORS policy, bearer token
// authentication and rule-based authorization are handled in this package
// before requests are delegated to the service layer.
package http
