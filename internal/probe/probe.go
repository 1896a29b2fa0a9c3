package probe

import "context"

// Result is the outcome of a single URL check.
//
// Fields:
// - StatusCode: final HTTP status when a response was received; 0 for
//   syntax and transport failures.
// - RedirectTarget: absolute target of the first redirect hop, set when the
//   initial response (or any intermediate one) was a 3xx with a Location
//   header.
type Result struct {
	Accessible     bool    `json:"accessible"`
	Explanation    string  `json:"explanation"`
	StatusCode     int     `json:"status_code,omitempty"`
	RedirectTarget string  `json:"redirect_target,omitempty"`
	LatencyMS      float64 `json:"latency_ms,omitempty"`
}

// Checker performs a single check for a given target URL.
type Checker interface {
	Check(ctx context.Context, target string) Result
}
