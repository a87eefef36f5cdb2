// Package rpc describes the backup.v1.BlobStore gRPC service shared by the
// server handler and the client transport.
//
// Messages are plain Go structs carried by a JSON codec registered under the
// "json" content subtype, so no generated protobuf code is involved. Both
// sides must select the codec with grpc.CallContentSubtype(CodecName) or
// grpc.ForceServerCodec.
package rpc
