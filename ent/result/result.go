// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the result type in the database.
	Label = "result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldScorePercentage holds the string denoting the score_percentage field in the database.
	FieldScorePercentage = "score_percentage"
	// FieldQuestionsCorrect holds the string denoting the questions_correct field in the database.
	FieldQuestionsCorrect = "questions_correct"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldByTimer holds the string denoting the by_timer field in the database.
	FieldByTimer = "by_timer"
	// FieldAbilityStart holds the string denoting the ability_start field in the database.
	FieldAbilityStart = "ability_start"
	// FieldAbilityEnd holds the string denoting the ability_end field in the database.
	FieldAbilityEnd = "ability_end"
	// FieldTakenAt holds the string denoting the taken_at field in the database.
	FieldTakenAt = "taken_at"
	// Table holds the table name of the result in the database.
	Table = "results"
)

// Columns holds all SQL columns for result fields.
var Columns = []string{
	FieldID,
	FieldAttemptID,
	FieldMode,
	FieldTitle,
	FieldScorePercentage,
	FieldQuestionsCorrect,
	FieldTotalQuestions,
	FieldTimeSpentSecs,
	FieldByTimer,
	FieldAbilityStart,
	FieldAbilityEnd,
	FieldTakenAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultTimeSpentSecs holds the default value on creation for the "time_spent_secs" field.
	DefaultTimeSpentSecs int
	// DefaultByTimer holds the default value on creation for the "by_timer" field.
	DefaultByTimer bool
	// DefaultAbilityStart holds the default value on creation for the "ability_start" field.
	DefaultAbilityStart float64
	// DefaultAbilityEnd holds the default value on creation for the "ability_end" field.
	DefaultAbilityEnd float64
	// DefaultTakenAt holds the default value on creation for the "taken_at" field.
	DefaultTakenAt func() time.Time
)

// OrderOption defines the ordering options for the Result queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByScorePercentage orders the results by the score_percentage field.
func ByScorePercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScorePercentage, opts...).ToFunc()
}

// ByQuestionsCorrect orders the results by the questions_correct field.
func ByQuestionsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsCorrect, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByByTimer orders the results by the by_timer field.
func ByByTimer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldByTimer, opts...).ToFunc()
}

// ByAbilityStart orders the results by the ability_start field.
func ByAbilityStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbilityStart, opts...).ToFunc()
}

// ByAbilityEnd orders the results by the ability_end field.
func ByAbilityEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbilityEnd, opts...).ToFunc()
}

// ByTakenAt orders the results by the taken_at field.
func ByTakenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakenAt, opts...).ToFunc()
}
