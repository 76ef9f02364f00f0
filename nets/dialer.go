package nets

import (
	"context"
	"net"

	"github.com/reusee/taibf/logs"
)

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Dialer connects loopback and private addresses directly and everything else
// through the configured proxy, if any.
func (Module) Dialer(
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Dialer {
	var direct net.Dialer
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		// resolved first so that a bad proxy config fails every dial
		proxyDialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		if isLocalAddr(addr) {
			logger.DebugContext(ctx, "dial direct", "addr", addr)
			return direct.DialContext(ctx, network, addr)
		}
		logger.DebugContext(ctx, "dial", "addr", addr)
		return proxyDialer.DialContext(ctx, network, addr)
	})
}

type DialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}
