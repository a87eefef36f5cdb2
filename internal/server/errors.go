package server

import "errors"

// errNoServersAreCreated means the config enabled neither the HTTP nor the
// gRPC listener, or the matching handler was not built.
var errNoServersAreCreated = errors.New("server: neither HTTP nor gRPC listener is configured")
