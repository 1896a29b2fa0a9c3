package probe

import "testing"

func TestValidateTarget(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want failKind
	}{
		{"plain string", "not-a-valid-url", failMissingScheme},
		{"bare host", "www.example.com", failMissingScheme},
		{"empty", "", failMissingScheme},
		{"uppercase scheme", "HTTP://example.com", failMissingScheme},
		{"ftp scheme", "ftp://example.com", failMissingScheme},
		{"scheme only", "http://", failMalformed},
		{"space in host", "http://exa mple.com", failMalformed},
		{"unterminated ipv6", "http://[::1", failMalformed},
		{"http ok", "http://example.com", failNone},
		{"https with path", "https://example.com/a/b?q=1", failNone},
		{"https with port", "https://example.com:8443", failNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validateTarget(tc.raw); got != tc.want {
				t.Fatalf("validateTarget(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
