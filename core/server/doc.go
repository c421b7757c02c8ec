// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structures for server settings, such as
// the listening port, the API key, and the reconciliation worker count.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the populate feature to size its worker pool.
package server
