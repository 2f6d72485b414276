package links

import (
	"net"
	"net/url"
	"strings"
)

// schemes that require an authority, with their default ports
var specialSchemes = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// NormalizeURL returns the canonical form of raw when it parses as an absolute
// URL, and raw unchanged otherwise. Malformed targets are never rejected.
func NormalizeURL(raw string) string {
	u, ok := parseStrict(raw)
	if !ok {
		return raw
	}

	u.Host = strings.ToLower(u.Host)
	if defaultPort, special := specialSchemes[u.Scheme]; special {
		if host, port, err := net.SplitHostPort(u.Host); err == nil && port == defaultPort {
			u.Host = host
			if strings.Contains(host, ":") {
				u.Host = "[" + host + "]"
			}
		}
		if u.Path == "" && u.RawPath == "" {
			u.Path = "/"
		}
	}

	return u.String()
}

func parseStrict(raw string) (*url.URL, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	if _, special := specialSchemes[u.Scheme]; special {
		if u.Opaque != "" || strings.TrimSpace(u.Hostname()) == "" {
			return nil, false
		}
	}

	return u, true
}
