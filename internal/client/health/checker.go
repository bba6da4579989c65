package health

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/thentamil/novelreader/internal/logging"
)

// Status is the result of a single backend health check.
type Status struct {
	Reachable     bool
	BackendStatus string
	BackendPort   int
	Err           string
	Timestamp     time.Time
}

// ProbeResult is one entry of a diagnostics run.
type ProbeResult struct {
	Name     string
	URL      string
	OK       bool
	Status   int
	Duration time.Duration
	Err      string
}

// Checker probes the backend health endpoint and a small fixed set of API
// routes. The health endpoint lives next to the API root, not under it, so
// the checker strips the /api suffix from the configured base URL.
type Checker struct {
	baseURL string
	client  *http.Client
	logger  logging.Logger
}

func NewChecker(baseURL string, timeout time.Duration, logger logging.Logger) *Checker {
	return &Checker{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Checker) healthURL() string {
	return strings.TrimSuffix(c.baseURL, "/api") + "/health"
}

func (c *Checker) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.client.Do(req)
}

// CheckBackend reports whether the backend answers its health endpoint.
// Failures are folded into the returned Status, never into an error.
func (c *Checker) CheckBackend(ctx context.Context) Status {
	st := Status{Timestamp: time.Now()}

	resp, err := c.get(ctx, c.healthURL())
	if err != nil {
		st.Err = err.Error()
		return st
	}
	defer resp.Body.Close()

	st.Reachable = true

	var body struct {
		Status string `json:"status"`
		Port   int    `json:"port"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		st.BackendStatus = body.Status
		st.BackendPort = body.Port
	}
	return st
}

// VerifyOnStartup runs a health check and logs the outcome. It is called
// once before the interactive session starts; an unreachable backend only
// produces a warning with troubleshooting hints.
func (c *Checker) VerifyOnStartup(ctx context.Context) Status {
	c.logger.Info(ctx, "verifying backend connection", "url", c.healthURL())

	st := c.CheckBackend(ctx)
	if st.Reachable {
		c.logger.Info(ctx, "backend is reachable", "status", st.BackendStatus, "port", st.BackendPort)
	} else {
		c.logger.Warn(ctx, "backend is not reachable", "base_url", c.baseURL, "error", st.Err)
	}
	return st
}

// RunDiagnostics probes the health endpoint and a couple of API routes and
// reports per-probe latency. The auth probe is expected to answer 401 when
// no session exists; any HTTP answer still proves the backend is up.
func (c *Checker) RunDiagnostics(ctx context.Context) []ProbeResult {
	probes := []struct {
		name string
		url  string
	}{
		{"backend health", c.healthURL()},
		{"novels endpoint", c.baseURL + "/novels"},
		{"auth endpoint", c.baseURL + "/auth/verify"},
	}

	results := make([]ProbeResult, 0, len(probes))
	for _, p := range probes {
		results = append(results, c.probe(ctx, p.name, p.url))
	}
	return results
}

func (c *Checker) probe(ctx context.Context, name, url string) ProbeResult {
	res := ProbeResult{Name: name, URL: url}

	start := time.Now()
	resp, err := c.get(ctx, url)
	res.Duration = time.Since(start)

	if err != nil {
		res.Err = err.Error()
		c.logger.Warn(ctx, "diagnostic probe failed", "probe", name, "url", url, "error", err.Error())
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	res.OK = resp.StatusCode >= 200 && resp.StatusCode < 300
	c.logger.Info(ctx, "diagnostic probe finished",
		"probe", name, "url", url, "status", resp.StatusCode, "duration_ms", res.Duration.Milliseconds())
	return res
}
