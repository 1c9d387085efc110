// Package config provides configuration loading, merging, and validation
// facilities for the shopping-list client and the remote file server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags (or the client CLI overrides)
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the remote file server and
// [GetClientConfig] for the client.
package config
