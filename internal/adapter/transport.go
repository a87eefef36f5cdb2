package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-backup-keeper/internal/config"
	"github.com/MKhiriev/go-backup-keeper/internal/logger"
)

// NewTransport returns the transport selected by adapterCfg.Protocol.
func NewTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (Transport, error) {
	switch adapterCfg.Protocol {
	case config.ProtocolHTTP, "":
		return NewHTTPTransport(adapterCfg, appCfg, logger)
	case config.ProtocolGRPC:
		return NewGRPCTransport(adapterCfg, appCfg, logger)
	default:
		return nil, fmt.Errorf("unknown adapter protocol %q", adapterCfg.Protocol)
	}
}
