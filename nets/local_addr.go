package nets

import "net"

type IsLocalAddr func(addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if host == "localhost" {
			return true
		}
		if ip := net.ParseIP(host); ip != nil {
			return ip.IsLoopback() || ip.IsPrivate()
		}
		ips, err := net.LookupIP(host)
		if err != nil {
			// unresolvable names go through the proxy
			return false
		}
		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true
			}
		}
		return false
	}
}
