package clientip

import (
	"net"
	"net/http"
	"net/textproto"
	"strings"
)

// RemoteAddrField is the metadata key holding the TCP peer address. It is
// always present in Meta built by MetaFromRequest.
const RemoteAddrField = "REMOTE_ADDR"

const cgiHeaderPrefix = "HTTP_"

// Meta maps request metadata field names to values.
type Meta map[string]string

// MetaFromRequest builds Meta from an HTTP request. Each header is available
// under its canonical name ("X-Forwarded-For") and its CGI name
// ("HTTP_X_FORWARDED_FOR"); repeated header lines are joined with ", ".
// Headers whose names contain an underscore get no CGI name.
// RemoteAddrField holds the host part of r.RemoteAddr.
func MetaFromRequest(r *http.Request) Meta {
	meta := make(Meta, 2*len(r.Header)+1)
	for name, values := range r.Header {
		if len(values) == 0 {
			continue
		}
		value := strings.Join(values, ", ")
		meta[textproto.CanonicalMIMEHeaderKey(name)] = value
		// Underscores would let a client header collide with the CGI name of
		// a proxy header ("X_Forwarded_For" vs "X-Forwarded-For").
		if !strings.Contains(name, "_") {
			meta[cgiName(name)] = value
		}
	}
	meta[RemoteAddrField] = remoteHost(r.RemoteAddr)
	return meta
}

// Get returns the value stored under field. Header names are matched
// case-insensitively.
func (m Meta) Get(field string) string {
	if v, ok := m[field]; ok {
		return v
	}
	return m[textproto.CanonicalMIMEHeaderKey(field)]
}

func cgiName(header string) string {
	return cgiHeaderPrefix + strings.ToUpper(strings.ReplaceAll(header, "-", "_"))
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		// No port, keep the raw value.
		return addr
	}
	return host
}
