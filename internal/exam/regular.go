package exam

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/prepdeck/internal/api"
)

// Regular drives a fixed-length test attempt against the remote
// platform. It performs the remote calls and converts wire shapes; it
// never mutates State. Callers apply returned results through the
// named State transitions, so async completions stay race-free.
type Regular struct {
	api api.TestAPI
	log zerolog.Logger
}

// NewRegular creates a regular-mode controller.
func NewRegular(client api.TestAPI, log zerolog.Logger) *Regular {
	return &Regular{api: client, log: log}
}

// Config fetches the test configuration for a token.
func (r *Regular) Config(ctx context.Context, token string) (*api.TestConfig, error) {
	cfg, err := r.api.GetConfig(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch test config: %w", err)
	}
	return cfg, nil
}

// Start starts (or resumes) the attempt. guest is nil when an
// authenticated identity already exists.
func (r *Regular) Start(ctx context.Context, token string, guest *api.GuestInfo) (*api.StartResult, error) {
	res, err := r.api.Start(ctx, token, guest)
	if err != nil {
		return nil, fmt.Errorf("start test: %w", err)
	}
	return res, nil
}

// Questions fetches the full question sequence, ordered by the server.
func (r *Regular) Questions(ctx context.Context, token string) ([]Question, error) {
	qs, err := r.api.GetQuestions(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	return QuestionsFromAPI(qs), nil
}

// Check submits one answer and returns the correctness disclosure.
// The exchange is a single logical operation: the server records the
// answer and resolves it atomically, so a retried request is idempotent
// on its side.
func (r *Regular) Check(ctx context.Context, token string, q Question, ans Answer, timeSpentSeconds int) (CheckedResult, error) {
	res, err := r.api.SubmitAnswer(ctx, token, payloadFor(q, ans, timeSpentSeconds))
	if err != nil {
		return CheckedResult{}, fmt.Errorf("check answer: %w", err)
	}
	return checkedFromAPI(*res), nil
}

// Record submits one answer without surfacing the disclosure, for
// attempts where reveal is disabled. The server response is discarded;
// correctness is disclosed only by the final submit.
func (r *Regular) Record(ctx context.Context, token string, q Question, ans Answer, timeSpentSeconds int) error {
	if _, err := r.api.SubmitAnswer(ctx, token, payloadFor(q, ans, timeSpentSeconds)); err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	return nil
}

// SavePosition persists the current question index. Fire-and-forget:
// one attempt, failure logged and swallowed. Losing a saved position
// degrades resume to the first-unchecked fallback, nothing worse.
func (r *Regular) SavePosition(ctx context.Context, token string, index int) {
	if err := r.api.UpdateState(ctx, token, index); err != nil {
		r.log.Warn().Err(err).Int("index", index).Msg("save position failed")
	}
}

// SaveFlag persists a mark-for-review toggle. Fire-and-forget, same
// contract as SavePosition: the local toggle already happened and is
// never rolled back.
func (r *Regular) SaveFlag(ctx context.Context, token, questionID string) {
	if err := r.api.ToggleFlag(ctx, token, questionID); err != nil {
		r.log.Warn().Err(err).Str("question", questionID).Msg("save flag failed")
	}
}

// Submit finalizes the attempt and returns the score.
func (r *Regular) Submit(ctx context.Context, token string) (*api.SubmitResult, error) {
	res, err := r.api.Submit(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("submit test: %w", err)
	}
	return res, nil
}
