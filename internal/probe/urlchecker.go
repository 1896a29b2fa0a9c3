package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a check when the caller does not supply a timeout.
const DefaultTimeout = 5 * time.Second

const maxRedirects = 10

// Browser identity sent when BrowserAgent is on. Some sites reject the
// default Go user-agent outright, so this mimics a current Chrome on
// Windows, Accept headers included.
const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	browserAccept    = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	browserAcceptLng = "en-US,en;q=0.9"
)

// URLChecker performs a single synchronous reachability check. It holds no
// state between calls; concurrent checks from multiple goroutines are safe.
type URLChecker struct {
	// Timeout bounds the whole request. Values <= 0 fall back to
	// DefaultTimeout.
	Timeout time.Duration

	// BrowserAgent switches the outbound headers to a desktop-browser
	// identity. It never changes how the outcome is classified.
	BrowserAgent bool

	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
}

func NewURLChecker(timeout time.Duration, browserAgent bool) *URLChecker {
	return &URLChecker{Timeout: timeout, BrowserAgent: browserAgent}
}

// Check validates the target URL, dispatches one GET request and classifies
// the outcome. Every input produces a well-formed Result; no transport or
// parsing error escapes to the caller.
func (c *URLChecker) Check(ctx context.Context, target string) Result {
	if kind := validateTarget(target); kind != failNone {
		return Result{Accessible: false, Explanation: kind.explanation()}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// The client follows redirects but records where the first hop pointed;
	// the stdlib resolves the Location header against the previous URL
	// before invoking CheckRedirect, so firstHop is already absolute.
	var firstHop string
	client := &http.Client{
		Timeout:   timeout,
		Transport: c.Transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if firstHop == "" {
				firstHop = req.URL.String()
			}
			if len(via) >= maxRedirects {
				return errors.New("too many redirects")
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{Accessible: false, Explanation: explainMalformed}
	}
	if c.BrowserAgent {
		req.Header.Set("User-Agent", browserUserAgent)
		req.Header.Set("Accept", browserAccept)
		req.Header.Set("Accept-Language", browserAcceptLng)
	}

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if resp != nil {
		defer resp.Body.Close()
	}

	// A redirect was observed, so the URL is reachable even if a later hop
	// failed or the chain was cut off.
	if firstHop != "" {
		r := Result{
			Accessible:     true,
			Explanation:    "Redirects to " + firstHop,
			RedirectTarget: firstHop,
			LatencyMS:      latency,
		}
		if resp != nil {
			r.StatusCode = resp.StatusCode
		}
		return r
	}

	if err != nil {
		kind := classifyTransportErr(err)
		return Result{Accessible: false, Explanation: kind.explanation(), LatencyMS: latency}
	}

	return classifyStatus(resp.StatusCode, latency)
}

// classifyStatus maps a final, non-redirected HTTP status to a Result.
// 404 keeps its dedicated message; other 2xx are accessible; everything
// else gets the generic "HTTP <code> error".
func classifyStatus(code int, latency float64) Result {
	r := Result{StatusCode: code, LatencyMS: latency}
	switch {
	case code == http.StatusNotFound:
		r.Explanation = explainNotFound
	case code >= 200 && code < 300:
		r.Accessible = true
		r.Explanation = explainAccessible
	default:
		r.Explanation = fmt.Sprintf("HTTP %d error", code)
	}
	return r
}

// Check is the package-level form of the single exposed operation.
func Check(ctx context.Context, target string, timeout time.Duration, browserAgent bool) Result {
	c := URLChecker{Timeout: timeout, BrowserAgent: browserAgent}
	return c.Check(ctx, target)
}
