// Package server runs the HTTP transport of the remote file server,
// including signal handling and graceful shutdown.
package server
