package nets

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/modes"
)

func TestDialerDirect(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Write([]byte("ok"))
		conn.Close()
	}()

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		dialer Dialer,
		getProxyAddr GetProxyAddr,
	) {
		proxyAddr, err := getProxyAddr()
		if err != nil {
			t.Fatal(err)
		}
		if proxyAddr != "" {
			t.Fatalf("got %v", proxyAddr)
		}
		conn, err := dialer.DialContext(t.Context(), "tcp", ln.Addr().String())
		if err != nil {
			t.Fatal(err)
		}
		defer conn.Close()
		buf := make([]byte, 2)
		if _, err := io.ReadFull(conn, buf); err != nil {
			t.Fatal(err)
		}
		if string(buf) != "ok" {
			t.Fatalf("got %q", buf)
		}
	})
}

func TestBadProxyConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proxy.cue")
	if err := os.WriteFile(path, []byte("proxy_addr: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForProduction(),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{path}, `proxy_addr?: string`)),
	).Call(func(
		dialer Dialer,
	) {
		_, err := dialer.DialContext(t.Context(), "tcp", "127.0.0.1:1")
		if err == nil || !strings.Contains(err.Error(), "proxy_addr") {
			t.Fatalf("got %v", err)
		}
	})
}
