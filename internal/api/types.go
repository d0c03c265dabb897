package api

// Wire types for the assessment platform API. Field names follow the
// server's JSON contract; optional fields are pointers so "absent" and
// "zero" stay distinguishable.

// TestConfig describes a regular assessment before it is started.
type TestConfig struct {
	Title                string `json:"title"`
	TutorName            string `json:"tutorName"`
	SubjectArea          string `json:"subjectArea"`
	QuestionCount        int    `json:"questionCount"`
	TimeLimitMinutes     int    `json:"timeLimitMinutes"`
	RequiresAuth         bool   `json:"requiresAuth"`
	RevealAnswers        bool   `json:"revealAnswers"`
	HasInProgressSession bool   `json:"hasInProgressSession"`
	QuestionsAnswered    int    `json:"questionsAnswered"`
}

// StartResult is returned when a test attempt is started or resumed.
type StartResult struct {
	IsResuming           bool `json:"isResuming"`
	TimeLimitMinutes     int  `json:"timeLimitMinutes"`
	CurrentQuestionIndex int  `json:"currentQuestionIndex"`
}

// Choice is a single answer option for a multiple-choice question.
type Choice struct {
	Content string `json:"content"`
}

// AnswerType values on the wire.
const (
	AnswerTypeMCQ = "mcq"
	AnswerTypeSPR = "spr"
)

// Question is one question as delivered by the server. Immutable once
// fetched; the server owns ids and ordering.
type Question struct {
	QuestionID  string   `json:"questionId"`
	Order       int      `json:"order"`
	PromptHTML  string   `json:"promptHtml"`
	PassageHTML string   `json:"passageHtml,omitempty"`
	AnswerType  string   `json:"answerType"`
	Choices     []Choice `json:"choices,omitempty"`
}

type questionsResponse struct {
	Questions []Question `json:"questions"`
}

// AnswerPayload carries one submitted answer. Exactly one of Index
// (MCQ) or Answer (SPR) is set.
type AnswerPayload struct {
	QuestionID       string  `json:"questionId"`
	Index            *int    `json:"index,omitempty"`
	Answer           *string `json:"answer,omitempty"`
	TimeSpentSeconds int     `json:"timeSpentSeconds"`
}

// CheckResult is the correctness disclosure for one answer.
type CheckResult struct {
	IsCorrect       bool     `json:"isCorrect"`
	CorrectIndex    *int     `json:"correctIndex,omitempty"`
	CorrectAnswers  []string `json:"correctAnswers,omitempty"`
	ExplanationHTML string   `json:"explanationHtml,omitempty"`
}

// SubmitResult is the final score for a submitted test.
type SubmitResult struct {
	ScorePercentage  float64 `json:"scorePercentage"`
	QuestionsCorrect int     `json:"questionsCorrect"`
	TotalQuestions   int     `json:"totalQuestions"`
	TimeSpentSeconds int     `json:"timeSpentSeconds"`
}

// SavedAnswer is one entry of a server-side answer snapshot. Checked
// reports whether correctness was resolved during the original attempt;
// IsCorrect may be absent on older sessions even when Checked is set.
type SavedAnswer struct {
	Index           *int     `json:"index,omitempty"`
	Answer          *string  `json:"answer,omitempty"`
	Checked         bool     `json:"checked"`
	IsCorrect       *bool    `json:"isCorrect,omitempty"`
	CorrectIndex    *int     `json:"correctIndex,omitempty"`
	CorrectAnswers  []string `json:"correctAnswers,omitempty"`
	ExplanationHTML string   `json:"explanationHtml,omitempty"`
}

// SavedState is the snapshot used by the resume protocol.
type SavedState struct {
	Answers              map[string]SavedAnswer `json:"answers"`
	FlaggedQuestionIDs   []string               `json:"flaggedQuestionIds"`
	CurrentQuestionIndex *int                   `json:"currentQuestionIndex,omitempty"`
}

// PracticeSession identifies a created adaptive session.
type PracticeSession struct {
	SessionID      string  `json:"sessionId"`
	CurrentAbility float64 `json:"currentAbility"`
}

// PracticeStart is returned when an adaptive session begins serving.
type PracticeStart struct {
	CurrentQuestion Question `json:"currentQuestion"`
	CurrentAbility  float64  `json:"currentAbility"`
}

// PracticeCheck is the adaptive check response: correctness plus the
// updated ability estimate and, unless the session is complete, the
// next question chosen by the estimator.
type PracticeCheck struct {
	IsCorrect       bool      `json:"isCorrect"`
	CorrectIndex    *int      `json:"correctIndex,omitempty"`
	CorrectAnswers  []string  `json:"correctAnswers,omitempty"`
	ExplanationHTML string    `json:"explanationHtml,omitempty"`
	AbilityAfter    float64   `json:"abilityAfter"`
	NextQuestion    *Question `json:"nextQuestion,omitempty"`
	SessionComplete bool      `json:"sessionComplete"`
}

// PracticeResult is the final summary of an adaptive session.
type PracticeResult struct {
	ScorePercentage  float64            `json:"scorePercentage"`
	QuestionsCorrect int                `json:"questionsCorrect"`
	TotalQuestions   int                `json:"totalQuestions"`
	SkillProgress    map[string]float64 `json:"skillProgress,omitempty"`
}

type createSessionRequest struct {
	SkillIDs      []string `json:"skillIds"`
	QuestionCount int      `json:"questionCount,omitempty"`
}

// Credentials are login credentials for an existing account.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GuestInfo identifies a guest taking a tutor-assigned test.
type GuestInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthToken is a bearer token issued by login or guest registration.
type AuthToken struct {
	Token string `json:"token"`
}

type startRequest struct {
	Guest *GuestInfo `json:"guest,omitempty"`
}

type updateStateRequest struct {
	CurrentQuestionIndex int `json:"currentQuestionIndex"`
}

type toggleFlagRequest struct {
	QuestionID string `json:"questionId"`
}
