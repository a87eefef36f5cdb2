// Package config provides configuration loading, merging, and validation
// facilities for the backup client and the blob store server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every non-zero field):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] and [GetServerConfig]; both
// are views over [GetStructuredConfig].
package config
