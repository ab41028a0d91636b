// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure: the HTTP port and the API key.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the middleware package to decide whether authentication is enforced.
package server
