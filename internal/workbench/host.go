package workbench

import (
	"errors"
	"net/url"
	"strings"
)

// ErrMissingHost reports a host value with no usable host part.
var ErrMissingHost = errors.New("missing or invalid workbench host")

// NormalizeHost turns a possibly-malformed host value into a canonical
// scheme://netloc base URL with no trailing slash. A missing scheme
// defaults to https; an explicit http scheme is preserved; a duplicated
// scheme marker is collapsed.
func NormalizeHost(raw string) (string, error) {
	host := strings.TrimSpace(raw)
	if host == "" {
		return "", ErrMissingHost
	}

	for _, dup := range []string{"https://https://", "https://http://", "http://https://", "http://http://"} {
		if strings.HasPrefix(host, dup) {
			scheme := dup[:strings.Index(dup, "://")]
			host = scheme + "://" + host[len(dup):]
			break
		}
	}

	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}

	host = strings.TrimRight(host, "/")

	parsed, err := url.Parse(host)
	if err != nil || parsed.Host == "" {
		return "", ErrMissingHost
	}

	return host, nil
}
