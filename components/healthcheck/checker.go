// Package healthcheck checks companion processes the agents depend on.
package healthcheck

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout is the liveness check timeout
const DefaultTimeout = 3 * time.Second

// Status is the liveness check result
type Status struct {
	// URL checked address
	URL string
	// Up reports whether the process answered
	Up bool
	// StatusCode is the http status code, zero when the request failed
	StatusCode int
	// Err describes why the process is considered down
	Err error
}

func (s Status) String() string {
	if s.Up {
		return fmt.Sprintf("running (status: %d)", s.StatusCode)
	}
	return fmt.Sprintf("possible problem: %v", s.Err)
}

// Checker checks a companion http process is alive
type Checker struct {
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*Checker)

func WithHttpClient(clt *http.Client) Option {
	return func(p *Checker) {
		p.httpClient = clt
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(p *Checker) {
		p.timeout = timeout
	}
}

// New returns a new Checker
func New(opts ...Option) *Checker {
	ret := new(Checker)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.timeout <= 0 {
		ret.timeout = DefaultTimeout
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Check sends a GET request to the url. Any response below 400 means the process is up,
// and so do 400, 404 and 405 because endpoints that only accept POST or a specific path still prove liveness.
func (p *Checker) Check(ctx context.Context, url string) Status {
	ret := Status{URL: url}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ret.Err = err
		return ret
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		ret.Err = err
		return ret
	}
	defer resp.Body.Close()
	ret.StatusCode = resp.StatusCode
	switch {
	case resp.StatusCode < http.StatusBadRequest,
		resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusNotFound,
		resp.StatusCode == http.StatusMethodNotAllowed:
		ret.Up = true
	default:
		ret.Err = fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return ret
}
