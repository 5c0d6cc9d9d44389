package model

import (
	"context"
	"net"
)

// SecurityLayer decides how the dashboard's listener is opened: TLS in
// production, plain TCP behind a local proxy.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a lifecycle-managed network server.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
