package api

import (
	"context"
	"sync"
)

// Mock is a scriptable Client for tests. Each method delegates to its
// function field when set and returns ErrUnavailable otherwise; every
// call is counted so tests can assert on exchange counts.
type Mock struct {
	mu    sync.Mutex
	calls map[string]int

	GetConfigFn            func(ctx context.Context, token string) (*TestConfig, error)
	StartFn                func(ctx context.Context, token string, guest *GuestInfo) (*StartResult, error)
	GetQuestionsFn         func(ctx context.Context, token string) ([]Question, error)
	SubmitAnswerFn         func(ctx context.Context, token string, payload AnswerPayload) (*CheckResult, error)
	UpdateStateFn          func(ctx context.Context, token string, index int) error
	ToggleFlagFn           func(ctx context.Context, token, questionID string) error
	SubmitFn               func(ctx context.Context, token string) (*SubmitResult, error)
	GetAnswersFn           func(ctx context.Context, token string) (*SavedState, error)
	CreateSessionFn        func(ctx context.Context, skillIDs []string, questionCount int) (*PracticeSession, error)
	StartSessionFn         func(ctx context.Context, sessionID string) (*PracticeStart, error)
	SubmitPracticeAnswerFn func(ctx context.Context, sessionID string, payload AnswerPayload) (*PracticeCheck, error)
	CompleteSessionFn      func(ctx context.Context, sessionID string) (*PracticeResult, error)
	LoginFn                func(ctx context.Context, creds Credentials) (*AuthToken, error)
	RegisterGuestFn        func(ctx context.Context, guest GuestInfo) (*AuthToken, error)
}

var _ Client = (*Mock)(nil)

// Calls returns the number of calls made to the named method.
func (m *Mock) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *Mock) count(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *Mock) GetConfig(ctx context.Context, token string) (*TestConfig, error) {
	m.count("GetConfig")
	if m.GetConfigFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.GetConfigFn(ctx, token)
}

func (m *Mock) Start(ctx context.Context, token string, guest *GuestInfo) (*StartResult, error) {
	m.count("Start")
	if m.StartFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.StartFn(ctx, token, guest)
}

func (m *Mock) GetQuestions(ctx context.Context, token string) ([]Question, error) {
	m.count("GetQuestions")
	if m.GetQuestionsFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.GetQuestionsFn(ctx, token)
}

func (m *Mock) SubmitAnswer(ctx context.Context, token string, payload AnswerPayload) (*CheckResult, error) {
	m.count("SubmitAnswer")
	if m.SubmitAnswerFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.SubmitAnswerFn(ctx, token, payload)
}

func (m *Mock) UpdateState(ctx context.Context, token string, index int) error {
	m.count("UpdateState")
	if m.UpdateStateFn == nil {
		return &ErrUnavailable{}
	}
	return m.UpdateStateFn(ctx, token, index)
}

func (m *Mock) ToggleFlag(ctx context.Context, token, questionID string) error {
	m.count("ToggleFlag")
	if m.ToggleFlagFn == nil {
		return &ErrUnavailable{}
	}
	return m.ToggleFlagFn(ctx, token, questionID)
}

func (m *Mock) Submit(ctx context.Context, token string) (*SubmitResult, error) {
	m.count("Submit")
	if m.SubmitFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.SubmitFn(ctx, token)
}

func (m *Mock) GetAnswers(ctx context.Context, token string) (*SavedState, error) {
	m.count("GetAnswers")
	if m.GetAnswersFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.GetAnswersFn(ctx, token)
}

func (m *Mock) CreateSession(ctx context.Context, skillIDs []string, questionCount int) (*PracticeSession, error) {
	m.count("CreateSession")
	if m.CreateSessionFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.CreateSessionFn(ctx, skillIDs, questionCount)
}

func (m *Mock) StartSession(ctx context.Context, sessionID string) (*PracticeStart, error) {
	m.count("StartSession")
	if m.StartSessionFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.StartSessionFn(ctx, sessionID)
}

func (m *Mock) SubmitPracticeAnswer(ctx context.Context, sessionID string, payload AnswerPayload) (*PracticeCheck, error) {
	m.count("SubmitPracticeAnswer")
	if m.SubmitPracticeAnswerFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.SubmitPracticeAnswerFn(ctx, sessionID, payload)
}

func (m *Mock) CompleteSession(ctx context.Context, sessionID string) (*PracticeResult, error) {
	m.count("CompleteSession")
	if m.CompleteSessionFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.CompleteSessionFn(ctx, sessionID)
}

func (m *Mock) Login(ctx context.Context, creds Credentials) (*AuthToken, error) {
	m.count("Login")
	if m.LoginFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.LoginFn(ctx, creds)
}

func (m *Mock) RegisterGuest(ctx context.Context, guest GuestInfo) (*AuthToken, error) {
	m.count("RegisterGuest")
	if m.RegisterGuestFn == nil {
		return nil, &ErrUnavailable{}
	}
	return m.RegisterGuestFn(ctx, guest)
}
