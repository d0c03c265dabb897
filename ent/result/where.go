// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldAttemptID, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldMode, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTitle, v))
}

// ScorePercentage applies equality check predicate on the "score_percentage" field. It's identical to ScorePercentageEQ.
func ScorePercentage(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldScorePercentage, v))
}

// QuestionsCorrect applies equality check predicate on the "questions_correct" field. It's identical to QuestionsCorrectEQ.
func QuestionsCorrect(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldQuestionsCorrect, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTotalQuestions, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// ByTimer applies equality check predicate on the "by_timer" field. It's identical to ByTimerEQ.
func ByTimer(v bool) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldByTimer, v))
}

// AbilityStart applies equality check predicate on the "ability_start" field. It's identical to AbilityStartEQ.
func AbilityStart(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldAbilityStart, v))
}

// AbilityEnd applies equality check predicate on the "ability_end" field. It's identical to AbilityEndEQ.
func AbilityEnd(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldAbilityEnd, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTakenAt, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldAttemptID, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldMode, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldTitle, v))
}

// ScorePercentageEQ applies the EQ predicate on the "score_percentage" field.
func ScorePercentageEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldScorePercentage, v))
}

// ScorePercentageNEQ applies the NEQ predicate on the "score_percentage" field.
func ScorePercentageNEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldScorePercentage, v))
}

// ScorePercentageIn applies the In predicate on the "score_percentage" field.
func ScorePercentageIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldScorePercentage, vs...))
}

// ScorePercentageNotIn applies the NotIn predicate on the "score_percentage" field.
func ScorePercentageNotIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldScorePercentage, vs...))
}

// ScorePercentageGT applies the GT predicate on the "score_percentage" field.
func ScorePercentageGT(v float64) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldScorePercentage, v))
}

// ScorePercentageGTE applies the GTE predicate on the "score_percentage" field.
func ScorePercentageGTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldScorePercentage, v))
}

// ScorePercentageLT applies the LT predicate on the "score_percentage" field.
func ScorePercentageLT(v float64) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldScorePercentage, v))
}

// ScorePercentageLTE applies the LTE predicate on the "score_percentage" field.
func ScorePercentageLTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldScorePercentage, v))
}

// QuestionsCorrectEQ applies the EQ predicate on the "questions_correct" field.
func QuestionsCorrectEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldQuestionsCorrect, v))
}

// QuestionsCorrectNEQ applies the NEQ predicate on the "questions_correct" field.
func QuestionsCorrectNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldQuestionsCorrect, v))
}

// QuestionsCorrectIn applies the In predicate on the "questions_correct" field.
func QuestionsCorrectIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldQuestionsCorrect, vs...))
}

// QuestionsCorrectNotIn applies the NotIn predicate on the "questions_correct" field.
func QuestionsCorrectNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldQuestionsCorrect, vs...))
}

// QuestionsCorrectGT applies the GT predicate on the "questions_correct" field.
func QuestionsCorrectGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldQuestionsCorrect, v))
}

// QuestionsCorrectGTE applies the GTE predicate on the "questions_correct" field.
func QuestionsCorrectGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldQuestionsCorrect, v))
}

// QuestionsCorrectLT applies the LT predicate on the "questions_correct" field.
func QuestionsCorrectLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldQuestionsCorrect, v))
}

// QuestionsCorrectLTE applies the LTE predicate on the "questions_correct" field.
func QuestionsCorrectLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldQuestionsCorrect, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTotalQuestions, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// ByTimerEQ applies the EQ predicate on the "by_timer" field.
func ByTimerEQ(v bool) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldByTimer, v))
}

// ByTimerNEQ applies the NEQ predicate on the "by_timer" field.
func ByTimerNEQ(v bool) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldByTimer, v))
}

// AbilityStartEQ applies the EQ predicate on the "ability_start" field.
func AbilityStartEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldAbilityStart, v))
}

// AbilityStartNEQ applies the NEQ predicate on the "ability_start" field.
func AbilityStartNEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldAbilityStart, v))
}

// AbilityStartIn applies the In predicate on the "ability_start" field.
func AbilityStartIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldAbilityStart, vs...))
}

// AbilityStartNotIn applies the NotIn predicate on the "ability_start" field.
func AbilityStartNotIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldAbilityStart, vs...))
}

// AbilityStartGT applies the GT predicate on the "ability_start" field.
func AbilityStartGT(v float64) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldAbilityStart, v))
}

// AbilityStartGTE applies the GTE predicate on the "ability_start" field.
func AbilityStartGTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldAbilityStart, v))
}

// AbilityStartLT applies the LT predicate on the "ability_start" field.
func AbilityStartLT(v float64) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldAbilityStart, v))
}

// AbilityStartLTE applies the LTE predicate on the "ability_start" field.
func AbilityStartLTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldAbilityStart, v))
}

// AbilityEndEQ applies the EQ predicate on the "ability_end" field.
func AbilityEndEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldAbilityEnd, v))
}

// AbilityEndNEQ applies the NEQ predicate on the "ability_end" field.
func AbilityEndNEQ(v float64) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldAbilityEnd, v))
}

// AbilityEndIn applies the In predicate on the "ability_end" field.
func AbilityEndIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldAbilityEnd, vs...))
}

// AbilityEndNotIn applies the NotIn predicate on the "ability_end" field.
func AbilityEndNotIn(vs ...float64) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldAbilityEnd, vs...))
}

// AbilityEndGT applies the GT predicate on the "ability_end" field.
func AbilityEndGT(v float64) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldAbilityEnd, v))
}

// AbilityEndGTE applies the GTE predicate on the "ability_end" field.
func AbilityEndGTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldAbilityEnd, v))
}

// AbilityEndLT applies the LT predicate on the "ability_end" field.
func AbilityEndLT(v float64) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldAbilityEnd, v))
}

// AbilityEndLTE applies the LTE predicate on the "ability_end" field.
func AbilityEndLTE(v float64) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldAbilityEnd, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Result) predicate.Result {
	return predicate.Result(sql.NotPredicates(p))
}
