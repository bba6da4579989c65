package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thentamil/novelreader/internal/logging"
)

const (
	defaultTimeout = 30 * time.Second

	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-Id"
)

// Client is the transport contract the domain services depend on.
// Dispatcher is the production implementation.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any, abortKey string) error
	Post(ctx context.Context, path string, body, out any, abortKey string) error
	Patch(ctx context.Context, path string, body, out any, abortKey string) error
	Delete(ctx context.Context, path string, out any, abortKey string) error
	AbortRequest(key string)
	AbortAllRequests()
}

// TokenSource yields the persisted bearer token and clears it when the
// server invalidates the session. *session.Manager satisfies this interface.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	ClearAuth(ctx context.Context) error
}

// Config holds the construction-time settings of a Dispatcher.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:4000/api".
	BaseURL string
	// Timeout bounds each request end to end. Defaults to 30s.
	Timeout time.Duration
	// Environment gates verbose request/response logging ("development")
	// and server-error logging (everything but "production"). It never
	// changes behavior beyond logging.
	Environment string

	Tokens TokenSource
	Logger logging.Logger

	// OnSessionInvalidated fires after a 401 response has cleared the
	// persisted session. The hosting application decides what "go to
	// login" means; the dispatcher does not.
	OnSessionInvalidated func()
	// OnForbidden fires on a 403 response.
	OnForbidden func()
}

type pendingRequest struct {
	id     string
	cancel context.CancelCauseFunc
}

// Dispatcher issues every HTTP call the client makes.
type Dispatcher struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
	verbose    bool
	production bool

	onSessionInvalidated func()
	onForbidden          func()

	mu       sync.Mutex
	inflight map[string]*pendingRequest
}

// NewDispatcher validates cfg and builds a Dispatcher.
func NewDispatcher(cfg Config) (*Dispatcher, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid api base url: %s", cfg.BaseURL)
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("token source is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NewSlogLogger(slog.Default())
	}

	return &Dispatcher{
		baseURL:              base,
		httpClient:           &http.Client{Timeout: timeout},
		tokens:               cfg.Tokens,
		log:                  log,
		verbose:              cfg.Environment == "development",
		production:           cfg.Environment == "production",
		onSessionInvalidated: cfg.OnSessionInvalidated,
		onForbidden:          cfg.OnForbidden,
		inflight:             make(map[string]*pendingRequest),
	}, nil
}

// BaseURL returns the configured API root.
func (d *Dispatcher) BaseURL() string { return d.baseURL }

func (d *Dispatcher) Get(ctx context.Context, path string, query url.Values, out any, abortKey string) error {
	return d.do(ctx, http.MethodGet, path, query, nil, out, abortKey)
}

func (d *Dispatcher) Post(ctx context.Context, path string, body, out any, abortKey string) error {
	return d.do(ctx, http.MethodPost, path, nil, body, out, abortKey)
}

func (d *Dispatcher) Patch(ctx context.Context, path string, body, out any, abortKey string) error {
	return d.do(ctx, http.MethodPatch, path, nil, body, out, abortKey)
}

func (d *Dispatcher) Delete(ctx context.Context, path string, out any, abortKey string) error {
	return d.do(ctx, http.MethodDelete, path, nil, nil, out, abortKey)
}

// AbortRequest cancels and deregisters the in-flight request registered
// under key. Calling it for an unknown or already-settled key is a no-op.
func (d *Dispatcher) AbortRequest(key string) {
	d.mu.Lock()
	p, ok := d.inflight[key]
	if ok {
		delete(d.inflight, key)
	}
	d.mu.Unlock()

	if ok {
		p.cancel(ErrRequestAborted)
	}
}

// AbortAllRequests cancels and deregisters every in-flight keyed request.
func (d *Dispatcher) AbortAllRequests() {
	d.mu.Lock()
	pending := make([]*pendingRequest, 0, len(d.inflight))
	for key, p := range d.inflight {
		pending = append(pending, p)
		delete(d.inflight, key)
	}
	d.mu.Unlock()

	for _, p := range pending {
		p.cancel(ErrRequestAborted)
	}
}

// registerAbort cancels any in-flight request registered under key and
// registers the new call's cancellation handle in its place. The returned
// cleanup removes the entry only if it still belongs to this call, so a
// superseded request never deregisters its successor.
func (d *Dispatcher) registerAbort(ctx context.Context, key string) (context.Context, func()) {
	if key == "" {
		return ctx, func() {}
	}

	ctx, cancel := context.WithCancelCause(ctx)
	p := &pendingRequest{id: uuid.NewString(), cancel: cancel}

	d.mu.Lock()
	prev := d.inflight[key]
	d.inflight[key] = p
	d.mu.Unlock()

	if prev != nil {
		prev.cancel(ErrRequestAborted)
	}

	return ctx, func() {
		d.mu.Lock()
		if cur, ok := d.inflight[key]; ok && cur.id == p.id {
			delete(d.inflight, key)
		}
		d.mu.Unlock()
		cancel(nil)
	}
}

// envelope is the platform's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []FieldError    `json:"errors"`
	Code    string          `json:"code"`
}

func (d *Dispatcher) do(ctx context.Context, method, path string, query url.Values, body, out any, abortKey string) error {
	ctx, settled := d.registerAbort(ctx, abortKey)
	defer settled()

	fullURL := d.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Expires", "0")
	req.Header.Set(requestIDHeader, uuid.NewString())

	token, err := d.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		req.Header.Set(authorizationHeader, "Bearer "+token)
	}

	if d.verbose {
		d.log.Debug(ctx, "api request",
			"method", method, "url", fullURL, "authenticated", token != "")
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return d.classifyTransport(ctx, err, fullURL)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return d.classifyTransport(ctx, err, fullURL)
	}

	if d.verbose {
		d.log.Debug(ctx, "api response",
			"method", method, "url", fullURL, "status", resp.StatusCode, "size", len(raw))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return d.classifyStatus(ctx, resp.StatusCode, raw)
	}

	var env envelope
	if len(raw) == 0 || json.Unmarshal(raw, &env) != nil {
		return &Error{Status: nonZeroStatus(resp.StatusCode), Message: invalidResponseMessage}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallbackErrorMessage
		}
		return &Error{Status: resp.StatusCode, Message: msg, Errors: env.Errors, Code: env.Code}
	}

	if out != nil {
		if len(env.Data) == 0 {
			return &Error{Status: resp.StatusCode, Message: invalidResponseMessage}
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Status: resp.StatusCode, Message: invalidResponseMessage, cause: err}
		}
	}

	return nil
}

func nonZeroStatus(status int) int {
	if status == 0 {
		return http.StatusInternalServerError
	}
	return status
}
