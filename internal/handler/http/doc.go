// Package http implements the HTTP transport of the blob store.
//
// It exposes route wiring, the backup upload and download handlers and the
// middleware around them: request tracing, access logging, metrics, rate
// limiting, body size limits and the HMAC integrity check. Requests are then
// delegated to the service layer.
package http
