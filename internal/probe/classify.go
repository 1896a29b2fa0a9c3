package probe

import (
	"context"
	"errors"
	"net"
	"syscall"
)

// failKind enumerates every way a check can fail before a usable HTTP
// response arrives. Protocol-level outcomes (404, 403, other statuses) are
// handled separately because they carry a status code.
type failKind int

const (
	failNone failKind = iota
	failMissingScheme
	failMalformed
	failTimeout
	failDNS
	failRefused
	failNetwork
)

const (
	explainMissingScheme = "Invalid URL: Missing protocol (http:// or https://)"
	explainMalformed     = "Invalid URL: Malformed URL format"
	explainTimeout       = "Connection timeout: Request took too long to respond"
	explainDNS           = "DNS resolution failed: Unable to resolve domain name"
	explainRefused       = "Connection refused: Server is not accepting connections"
	explainNetwork       = "Network connection error: Unable to connect to server"
	explainNotFound      = "404 Not Found"
	explainAccessible    = "URL is accessible"
)

func (k failKind) explanation() string {
	switch k {
	case failMissingScheme:
		return explainMissingScheme
	case failMalformed:
		return explainMalformed
	case failTimeout:
		return explainTimeout
	case failDNS:
		return explainDNS
	case failRefused:
		return explainRefused
	case failNetwork:
		return explainNetwork
	}
	return ""
}

// classifyTransportErr maps an error returned by http.Client.Do to a
// failKind. Timeouts win over everything else, so a resolver that times out
// reports as a timeout rather than a DNS failure; only then are DNS errors
// and refused connections picked out. Anything left is a generic network
// failure (unreachable host, TLS handshake, reset, ...).
func classifyTransportErr(err error) failKind {
	if err == nil {
		return failNone
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return failTimeout
	}
	var de *net.DNSError
	if errors.As(err, &de) {
		return failDNS
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return failRefused
	}
	return failNetwork
}
