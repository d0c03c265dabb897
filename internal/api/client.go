package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/store"
)

// TestAPI covers the regular (fixed-length) assessment endpoints.
type TestAPI interface {
	GetConfig(ctx context.Context, token string) (*TestConfig, error)
	Start(ctx context.Context, token string, guest *GuestInfo) (*StartResult, error)
	GetQuestions(ctx context.Context, token string) ([]Question, error)
	SubmitAnswer(ctx context.Context, token string, payload AnswerPayload) (*CheckResult, error)
	// UpdateState and ToggleFlag are fire-and-forget persistence: at
	// most one attempt, failures reported only to the caller.
	UpdateState(ctx context.Context, token string, index int) error
	ToggleFlag(ctx context.Context, token, questionID string) error
	Submit(ctx context.Context, token string) (*SubmitResult, error)
	GetAnswers(ctx context.Context, token string) (*SavedState, error)
}

// PracticeAPI covers the adaptive session endpoints. The server owns
// question selection; the client never fabricates ids.
type PracticeAPI interface {
	CreateSession(ctx context.Context, skillIDs []string, questionCount int) (*PracticeSession, error)
	StartSession(ctx context.Context, sessionID string) (*PracticeStart, error)
	SubmitPracticeAnswer(ctx context.Context, sessionID string, payload AnswerPayload) (*PracticeCheck, error)
	CompleteSession(ctx context.Context, sessionID string) (*PracticeResult, error)
}

// AuthAPI establishes an identity for assessments that require one.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*AuthToken, error)
	RegisterGuest(ctx context.Context, guest GuestInfo) (*AuthToken, error)
}

// Client is the full collaborator surface consumed by the session core.
type Client interface {
	TestAPI
	PracticeAPI
	AuthAPI
}

// HTTPClient talks JSON over HTTP with bearer auth.
type HTTPClient struct {
	baseURL string
	bearer  string
	httpc   *http.Client
	retry   RetryConfig
	log     zerolog.Logger
	events  store.EventRepo
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithLogger sets the structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *HTTPClient) { c.log = log }
}

// WithEventRepo records every exchange in the local event log, so
// best-effort failures can be counted without surfacing them.
func WithEventRepo(repo store.EventRepo) Option {
	return func(c *HTTPClient) { c.events = repo }
}

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpc = hc }
}

// NewClient creates an HTTPClient from cfg.
func NewClient(cfg Config, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: cfg.BaseURL,
		bearer:  cfg.Token,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		retry:   cfg.Retry,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token for subsequent calls.
func (c *HTTPClient) SetToken(token string) {
	c.bearer = token
}

// Token returns the current bearer token ("" if none).
func (c *HTTPClient) Token() string {
	return c.bearer
}

func (c *HTTPClient) GetConfig(ctx context.Context, token string) (*TestConfig, error) {
	var out TestConfig
	err := c.doRetry(ctx, http.MethodGet, "/tests/"+token+"/config", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Start(ctx context.Context, token string, guest *GuestInfo) (*StartResult, error) {
	var out StartResult
	err := c.doRetry(ctx, http.MethodPost, "/tests/"+token+"/start", startRequest{Guest: guest}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetQuestions(ctx context.Context, token string) ([]Question, error) {
	var out questionsResponse
	err := c.doRetry(ctx, http.MethodGet, "/tests/"+token+"/questions", nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Questions, nil
}

func (c *HTTPClient) SubmitAnswer(ctx context.Context, token string, payload AnswerPayload) (*CheckResult, error) {
	var out CheckResult
	err := c.doRetry(ctx, http.MethodPost, "/tests/"+token+"/answers", payload, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateState(ctx context.Context, token string, index int) error {
	return c.do(ctx, http.MethodPut, "/tests/"+token+"/state", updateStateRequest{CurrentQuestionIndex: index}, nil, true)
}

func (c *HTTPClient) ToggleFlag(ctx context.Context, token, questionID string) error {
	return c.do(ctx, http.MethodPost, "/tests/"+token+"/flags", toggleFlagRequest{QuestionID: questionID}, nil, true)
}

func (c *HTTPClient) Submit(ctx context.Context, token string) (*SubmitResult, error) {
	var out SubmitResult
	err := c.doRetry(ctx, http.MethodPost, "/tests/"+token+"/submit", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetAnswers(ctx context.Context, token string) (*SavedState, error) {
	var out SavedState
	err := c.doRetry(ctx, http.MethodGet, "/tests/"+token+"/answers", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateSession(ctx context.Context, skillIDs []string, questionCount int) (*PracticeSession, error) {
	var out PracticeSession
	req := createSessionRequest{SkillIDs: skillIDs, QuestionCount: questionCount}
	err := c.doRetry(ctx, http.MethodPost, "/practice/sessions", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) StartSession(ctx context.Context, sessionID string) (*PracticeStart, error) {
	var out PracticeStart
	err := c.doRetry(ctx, http.MethodPost, "/practice/sessions/"+sessionID+"/start", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SubmitPracticeAnswer(ctx context.Context, sessionID string, payload AnswerPayload) (*PracticeCheck, error) {
	var out PracticeCheck
	err := c.doRetry(ctx, http.MethodPost, "/practice/sessions/"+sessionID+"/answers", payload, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CompleteSession(ctx context.Context, sessionID string) (*PracticeResult, error) {
	var out PracticeResult
	err := c.doRetry(ctx, http.MethodPost, "/practice/sessions/"+sessionID+"/complete", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (*AuthToken, error) {
	var out AuthToken
	err := c.do(ctx, http.MethodPost, "/auth/login", creds, &out, false)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RegisterGuest(ctx context.Context, guest GuestInfo) (*AuthToken, error) {
	var out AuthToken
	err := c.do(ctx, http.MethodPost, "/auth/register", guest, &out, false)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs a single exchange. bestEffort marks fire-and-forget
// calls in the event log so their failure rate can be monitored.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, bestEffort bool) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	latencyMs := time.Since(start).Milliseconds()

	if err != nil {
		c.record(ctx, method, path, 0, latencyMs, bestEffort, err)
		return &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := c.statusError(resp)
		c.record(ctx, method, path, resp.StatusCode, latencyMs, bestEffort, statusErr)
		return statusErr
	}

	c.record(ctx, method, path, resp.StatusCode, latencyMs, bestEffort, nil)

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ErrBadResponse{Err: err}
	}
	return nil
}

// statusError maps a non-2xx response to a typed error.
func (c *HTTPClient) statusError(resp *http.Response) error {
	msg := readErrorMessage(resp.Body)
	base := fmt.Errorf("%s: %s", resp.Status, msg)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &ErrUnauthorized{Err: base}
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return &ErrNotFound{Resource: "assessment", Err: base}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &ErrRateLimit{RetryAfter: retryAfter(resp), Err: base}
	case resp.StatusCode >= 500:
		return &ErrUnavailable{Err: base}
	default:
		return base
	}
}

// record appends the exchange to the event log and emits a debug line.
// Logging failures never fail the request.
func (c *HTTPClient) record(ctx context.Context, method, path string, status int, latencyMs int64, bestEffort bool, reqErr error) {
	evt := c.log.Debug()
	if reqErr != nil {
		evt = c.log.Warn().Err(reqErr)
	}
	evt.Str("method", method).
		Str("path", path).
		Int("status", status).
		Int64("latency_ms", latencyMs).
		Bool("best_effort", bestEffort).
		Msg("api request")

	if c.events == nil {
		return
	}
	data := store.APIRequestEventData{
		Method:     method,
		Endpoint:   path,
		Status:     status,
		LatencyMs:  latencyMs,
		Success:    reqErr == nil,
		BestEffort: bestEffort,
	}
	if reqErr != nil {
		data.ErrorMessage = reqErr.Error()
	}
	if logErr := c.events.AppendAPIRequest(ctx, data); logErr != nil {
		c.log.Warn().Err(logErr).Msg("failed to log api request event")
	}
}

// readErrorMessage extracts a server-provided message, if any.
func readErrorMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(b) == 0 {
		return "no response body"
	}
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(b, &parsed) == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return string(b)
}

// retryAfter parses the Retry-After header (seconds form only).
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	secs, err := strconv.Atoi(h)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
