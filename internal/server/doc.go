// Package server runs the HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling (SIGTERM, SIGINT,
// SIGQUIT) and graceful shutdown bounded by the configured timeout.
package server
