// Package grpc implements the gRPC transport of the blob store.
//
// The service is registered with the JSON codec from package rpc. Failed
// calls carry the retry-after and backup-status trailers the client adapter
// relies on to tell rate limiting and storage outages apart from network
// errors.
package grpc
