package nets

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

// GetProxyAddr resolves the proxy from the proxy_addr config key, then from
// the environment. Development mode never uses a proxy.
type GetProxyAddr func() (ProxyAddr, error)

func (Module) GetProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) GetProxyAddr {
	return sync.OnceValues(func() (ProxyAddr, error) {
		if mode == modes.ModeDevelopment {
			return "", nil
		}

		var addr ProxyAddr
		err := loader.AssignFirst("proxy_addr", &addr)
		if err != nil && !errors.Is(err, configs.ErrValueNotFound) {
			return "", fmt.Errorf("proxy_addr: %w", err)
		}
		if addr == "" {
			for _, name := range []string{
				"ALL_PROXY", "all_proxy",
				"SOCKS_PROXY", "socks_proxy",
			} {
				if env := os.Getenv(name); env != "" {
					addr = ProxyAddr(env)
					break
				}
			}
		}
		if addr != "" {
			logger.Info("proxy", "addr", addr)
		}
		return addr, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getProxyAddr GetProxyAddr,
) GetProxyDialer {
	return sync.OnceValues(func() (Dialer, error) {
		direct := &net.Dialer{}
		proxyAddr, err := getProxyAddr()
		if err != nil {
			return nil, err
		}
		if proxyAddr == "" {
			return direct, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		if d, ok := proxyDialer.(Dialer); ok {
			return d, nil
		}
		return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
			return proxyDialer.Dial(network, addr)
		}), nil
	})
}
