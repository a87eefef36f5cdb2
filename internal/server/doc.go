// Package server runs the blob store's transport servers.
//
// It listens on the configured HTTP and gRPC addresses, runs the background
// workers alongside them and shuts everything down gracefully on a stop
// signal or context cancellation.
package server
