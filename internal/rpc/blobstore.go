// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-backup-keeper/models"
)

const (
	ServiceName = "backup.v1.BlobStore"

	UploadMethod   = "/" + ServiceName + "/Upload"
	DownloadMethod = "/" + ServiceName + "/Download"
)

// Trailer keys set by the server on failed calls.
const (
	// RetryAfterTrailer carries the number of seconds to wait after a
	// ResourceExhausted response.
	RetryAfterTrailer = "retry-after"
	// StatusTrailer distinguishes a storage outage reported by the server
	// from an Unavailable status produced by the connection itself.
	StatusTrailer = "backup-status"

	StatusStorageUnavailable = "storage-unavailable"
)

type UploadRequest struct {
	StorageKey   string    `json:"storage_key"`
	Blob         []byte    `json:"blob"`
	BackupTime   time.Time `json:"backup_time"`
	OriginalSize int64     `json:"original_size"`
	// Hash is the hex HMAC-SHA256 of Blob, empty when no hash key is set.
	Hash string `json:"hash,omitempty"`
}

type UploadResponse = models.UploadResult

type DownloadRequest struct {
	StorageKey string `json:"storage_key"`
}

type DownloadResponse struct {
	Blob []byte `json:"blob"`
}

// BlobStoreServer is implemented by the gRPC handler.
type BlobStoreServer interface {
	Upload(ctx context.Context, req *UploadRequest) (*UploadResponse, error)
	Download(ctx context.Context, req *DownloadRequest) (*DownloadResponse, error)
}

// BlobStoreClient is the client side of [BlobStoreServer].
type BlobStoreClient interface {
	Upload(ctx context.Context, req *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error)
	Download(ctx context.Context, req *DownloadRequest, opts ...grpc.CallOption) (*DownloadResponse, error)
}

// RegisterBlobStoreServer attaches srv to s.
func RegisterBlobStoreServer(s grpc.ServiceRegistrar, srv BlobStoreServer) {
	s.RegisterService(&blobStoreServiceDesc, srv)
}

var blobStoreServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BlobStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Upload", Handler: uploadHandler},
		{MethodName: "Download", Handler: downloadHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "backup/v1/blobstore",
}

func uploadHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlobStoreServer).Upload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UploadMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BlobStoreServer).Upload(ctx, req.(*UploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func downloadHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DownloadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlobStoreServer).Download(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DownloadMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BlobStoreServer).Download(ctx, req.(*DownloadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

type blobStoreClient struct {
	cc grpc.ClientConnInterface
}

// NewBlobStoreClient wraps cc. Every call is sent with the JSON codec.
func NewBlobStoreClient(cc grpc.ClientConnInterface) BlobStoreClient {
	return &blobStoreClient{cc: cc}
}

func (c *blobStoreClient) Upload(ctx context.Context, req *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error) {
	out := new(UploadResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, UploadMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blobStoreClient) Download(ctx context.Context, req *DownloadRequest, opts ...grpc.CallOption) (*DownloadResponse, error) {
	out := new(DownloadResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, DownloadMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
