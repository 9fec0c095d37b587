package config

import (
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Reachable reports whether the web app at base answers on its TCP port
// and serves at least one of the well-known entry paths.
func Reachable(base string) bool {
	u, err := url.Parse(base)
	if err != nil {
		return false
	}
	host := u.Host
	if !strings.Contains(host, ":") {
		if u.Scheme == "https" {
			host += ":443"
		} else {
			host += ":80"
		}
	}
	d := net.Dialer{Timeout: 250 * time.Millisecond}
	conn, err := d.Dial("tcp", host)
	if err != nil {
		return false
	}
	_ = conn.Close()

	client := &http.Client{Timeout: 800 * time.Millisecond}
	for _, path := range []string{"/healthz", "/signin", "/"} {
		resp, err := client.Get(base + path)
		if err == nil {
			_ = resp.Body.Close()
			return true
		}
	}
	return false
}
