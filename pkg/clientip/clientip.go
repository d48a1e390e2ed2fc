package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Config lists the forwarding headers set by the proxy in front of the service.
type Config struct {
	TrustedHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:","` // TrustedHeaders are consulted in order before RemoteAddr.
}

// FromRequest returns the client address of r. Only the given headers are
// consulted, in order, before falling back to r.RemoteAddr. It returns an
// empty string when no valid address is found.
func FromRequest(r *http.Request, trustedHeaders ...string) string {
	for _, name := range trustedHeaders {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parse(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}
