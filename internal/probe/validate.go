package probe

import (
	"net/url"
	"strings"
)

// validateTarget checks that a raw URL is well-formed enough to dispatch a
// request. The scheme prefix is checked first and case-sensitively, so bare
// strings like "www.example.com" and non-HTTP schemes like "ftp://host" are
// both rejected as missing-protocol before general parsing runs.
func validateTarget(raw string) failKind {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return failMissingScheme
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return failMalformed
	}
	return failNone
}
