// Package http implements the REST transport of the remote file server.
//
// Documents are addressed by path under /api/files/ and scoped to the owner
// carried by the bearer token. Tracing, access logging, compression and
// authentication run as middleware before a request reaches the file
// service.
package http
