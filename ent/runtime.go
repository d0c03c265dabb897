// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepdeck/ent/answerevent"
	"github.com/abhisek/prepdeck/ent/apirequestevent"
	"github.com/abhisek/prepdeck/ent/result"
	"github.com/abhisek/prepdeck/ent/schema"
	"github.com/abhisek/prepdeck/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apirequesteventMixin := schema.APIRequestEvent{}.Mixin()
	apirequesteventMixinFields0 := apirequesteventMixin[0].Fields()
	_ = apirequesteventMixinFields0
	apirequesteventFields := schema.APIRequestEvent{}.Fields()
	_ = apirequesteventFields
	// apirequesteventDescTimestamp is the schema descriptor for timestamp field.
	apirequesteventDescTimestamp := apirequesteventMixinFields0[1].Descriptor()
	// apirequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	apirequestevent.DefaultTimestamp = apirequesteventDescTimestamp.Default.(func() time.Time)
	// apirequesteventDescMethod is the schema descriptor for method field.
	apirequesteventDescMethod := apirequesteventFields[0].Descriptor()
	// apirequestevent.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	apirequestevent.MethodValidator = apirequesteventDescMethod.Validators[0].(func(string) error)
	// apirequesteventDescEndpoint is the schema descriptor for endpoint field.
	apirequesteventDescEndpoint := apirequesteventFields[1].Descriptor()
	// apirequestevent.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	apirequestevent.EndpointValidator = apirequesteventDescEndpoint.Validators[0].(func(string) error)
	// apirequesteventDescStatus is the schema descriptor for status field.
	apirequesteventDescStatus := apirequesteventFields[2].Descriptor()
	// apirequestevent.DefaultStatus holds the default value on creation for the status field.
	apirequestevent.DefaultStatus = apirequesteventDescStatus.Default.(int)
	// apirequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	apirequesteventDescLatencyMs := apirequesteventFields[3].Descriptor()
	// apirequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apirequestevent.DefaultLatencyMs = apirequesteventDescLatencyMs.Default.(int64)
	// apirequesteventDescBestEffort is the schema descriptor for best_effort field.
	apirequesteventDescBestEffort := apirequesteventFields[5].Descriptor()
	// apirequestevent.DefaultBestEffort holds the default value on creation for the best_effort field.
	apirequestevent.DefaultBestEffort = apirequesteventDescBestEffort.Default.(bool)
	// apirequesteventDescErrorMessage is the schema descriptor for error_message field.
	apirequesteventDescErrorMessage := apirequesteventFields[6].Descriptor()
	// apirequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	apirequestevent.DefaultErrorMessage = apirequesteventDescErrorMessage.Default.(string)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescAnswerKind is the schema descriptor for answer_kind field.
	answereventDescAnswerKind := answereventFields[2].Descriptor()
	// answerevent.AnswerKindValidator is a validator for the "answer_kind" field. It is called by the builders before save.
	answerevent.AnswerKindValidator = answereventDescAnswerKind.Validators[0].(func(string) error)
	// answereventDescCorrect is the schema descriptor for correct field.
	answereventDescCorrect := answereventFields[5].Descriptor()
	// answerevent.DefaultCorrect holds the default value on creation for the correct field.
	answerevent.DefaultCorrect = answereventDescCorrect.Default.(bool)
	// answereventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	answereventDescTimeSpentSecs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	answerevent.DefaultTimeSpentSecs = answereventDescTimeSpentSecs.Default.(int)
	resultFields := schema.Result{}.Fields()
	_ = resultFields
	// resultDescAttemptID is the schema descriptor for attempt_id field.
	resultDescAttemptID := resultFields[0].Descriptor()
	// result.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	result.AttemptIDValidator = resultDescAttemptID.Validators[0].(func(string) error)
	// resultDescMode is the schema descriptor for mode field.
	resultDescMode := resultFields[1].Descriptor()
	// result.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	result.ModeValidator = resultDescMode.Validators[0].(func(string) error)
	// resultDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	resultDescTimeSpentSecs := resultFields[6].Descriptor()
	// result.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	result.DefaultTimeSpentSecs = resultDescTimeSpentSecs.Default.(int)
	// resultDescByTimer is the schema descriptor for by_timer field.
	resultDescByTimer := resultFields[7].Descriptor()
	// result.DefaultByTimer holds the default value on creation for the by_timer field.
	result.DefaultByTimer = resultDescByTimer.Default.(bool)
	// resultDescAbilityStart is the schema descriptor for ability_start field.
	resultDescAbilityStart := resultFields[8].Descriptor()
	// result.DefaultAbilityStart holds the default value on creation for the ability_start field.
	result.DefaultAbilityStart = resultDescAbilityStart.Default.(float64)
	// resultDescAbilityEnd is the schema descriptor for ability_end field.
	resultDescAbilityEnd := resultFields[9].Descriptor()
	// result.DefaultAbilityEnd holds the default value on creation for the ability_end field.
	result.DefaultAbilityEnd = resultDescAbilityEnd.Default.(float64)
	// resultDescTakenAt is the schema descriptor for taken_at field.
	resultDescTakenAt := resultFields[10].Descriptor()
	// result.DefaultTakenAt holds the default value on creation for the taken_at field.
	result.DefaultTakenAt = resultDescTakenAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescAttemptID is the schema descriptor for attempt_id field.
	sessioneventDescAttemptID := sessioneventFields[0].Descriptor()
	// sessionevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	sessionevent.AttemptIDValidator = sessioneventDescAttemptID.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[1].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTitle is the schema descriptor for title field.
	sessioneventDescTitle := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTitle holds the default value on creation for the title field.
	sessionevent.DefaultTitle = sessioneventDescTitle.Default.(string)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescByTimer is the schema descriptor for by_timer field.
	sessioneventDescByTimer := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultByTimer holds the default value on creation for the by_timer field.
	sessionevent.DefaultByTimer = sessioneventDescByTimer.Default.(bool)
	// sessioneventDescDetail is the schema descriptor for detail field.
	sessioneventDescDetail := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDetail holds the default value on creation for the detail field.
	sessionevent.DefaultDetail = sessioneventDescDetail.Default.(string)
}
