// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdeck/ent/predicate"
	"github.com/abhisek/prepdeck/ent/result"
)

// ResultUpdate is the builder for updating Result entities.
type ResultUpdate struct {
	config
	hooks    []Hook
	mutation *ResultMutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdate) Where(ps ...predicate.Result) *ResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ResultUpdate) SetAttemptID(v string) *ResultUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableAttemptID(v *string) *ResultUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ResultUpdate) SetMode(v string) *ResultUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableMode(v *string) *ResultUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ResultUpdate) SetTitle(v string) *ResultUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTitle(v *string) *ResultUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetScorePercentage sets the "score_percentage" field.
func (_u *ResultUpdate) SetScorePercentage(v float64) *ResultUpdate {
	_u.mutation.ResetScorePercentage()
	_u.mutation.SetScorePercentage(v)
	return _u
}

// SetNillableScorePercentage sets the "score_percentage" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableScorePercentage(v *float64) *ResultUpdate {
	if v != nil {
		_u.SetScorePercentage(*v)
	}
	return _u
}

// AddScorePercentage adds value to the "score_percentage" field.
func (_u *ResultUpdate) AddScorePercentage(v float64) *ResultUpdate {
	_u.mutation.AddScorePercentage(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *ResultUpdate) SetQuestionsCorrect(v int) *ResultUpdate {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableQuestionsCorrect(v *int) *ResultUpdate {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *ResultUpdate) AddQuestionsCorrect(v int) *ResultUpdate {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ResultUpdate) SetTotalQuestions(v int) *ResultUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTotalQuestions(v *int) *ResultUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ResultUpdate) AddTotalQuestions(v int) *ResultUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ResultUpdate) SetTimeSpentSecs(v int) *ResultUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTimeSpentSecs(v *int) *ResultUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ResultUpdate) AddTimeSpentSecs(v int) *ResultUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetByTimer sets the "by_timer" field.
func (_u *ResultUpdate) SetByTimer(v bool) *ResultUpdate {
	_u.mutation.SetByTimer(v)
	return _u
}

// SetNillableByTimer sets the "by_timer" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableByTimer(v *bool) *ResultUpdate {
	if v != nil {
		_u.SetByTimer(*v)
	}
	return _u
}

// SetAbilityStart sets the "ability_start" field.
func (_u *ResultUpdate) SetAbilityStart(v float64) *ResultUpdate {
	_u.mutation.ResetAbilityStart()
	_u.mutation.SetAbilityStart(v)
	return _u
}

// SetNillableAbilityStart sets the "ability_start" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableAbilityStart(v *float64) *ResultUpdate {
	if v != nil {
		_u.SetAbilityStart(*v)
	}
	return _u
}

// AddAbilityStart adds value to the "ability_start" field.
func (_u *ResultUpdate) AddAbilityStart(v float64) *ResultUpdate {
	_u.mutation.AddAbilityStart(v)
	return _u
}

// SetAbilityEnd sets the "ability_end" field.
func (_u *ResultUpdate) SetAbilityEnd(v float64) *ResultUpdate {
	_u.mutation.ResetAbilityEnd()
	_u.mutation.SetAbilityEnd(v)
	return _u
}

// SetNillableAbilityEnd sets the "ability_end" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableAbilityEnd(v *float64) *ResultUpdate {
	if v != nil {
		_u.SetAbilityEnd(*v)
	}
	return _u
}

// AddAbilityEnd adds value to the "ability_end" field.
func (_u *ResultUpdate) AddAbilityEnd(v float64) *ResultUpdate {
	_u.mutation.AddAbilityEnd(v)
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *ResultUpdate) SetTakenAt(v time.Time) *ResultUpdate {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *ResultUpdate) SetNillableTakenAt(v *time.Time) *ResultUpdate {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdate) Mutation() *ResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := result.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Result.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := result.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Result.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(result.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(result.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(result.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePercentage(); ok {
		_spec.SetField(result.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercentage(); ok {
		_spec.AddField(result.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(result.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(result.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(result.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(result.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(result.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(result.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ByTimer(); ok {
		_spec.SetField(result.FieldByTimer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AbilityStart(); ok {
		_spec.SetField(result.FieldAbilityStart, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbilityStart(); ok {
		_spec.AddField(result.FieldAbilityStart, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AbilityEnd(); ok {
		_spec.SetField(result.FieldAbilityEnd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbilityEnd(); ok {
		_spec.AddField(result.FieldAbilityEnd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(result.FieldTakenAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultUpdateOne is the builder for updating a single Result entity.
type ResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ResultUpdateOne) SetAttemptID(v string) *ResultUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableAttemptID(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ResultUpdateOne) SetMode(v string) *ResultUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableMode(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ResultUpdateOne) SetTitle(v string) *ResultUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTitle(v *string) *ResultUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetScorePercentage sets the "score_percentage" field.
func (_u *ResultUpdateOne) SetScorePercentage(v float64) *ResultUpdateOne {
	_u.mutation.ResetScorePercentage()
	_u.mutation.SetScorePercentage(v)
	return _u
}

// SetNillableScorePercentage sets the "score_percentage" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableScorePercentage(v *float64) *ResultUpdateOne {
	if v != nil {
		_u.SetScorePercentage(*v)
	}
	return _u
}

// AddScorePercentage adds value to the "score_percentage" field.
func (_u *ResultUpdateOne) AddScorePercentage(v float64) *ResultUpdateOne {
	_u.mutation.AddScorePercentage(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *ResultUpdateOne) SetQuestionsCorrect(v int) *ResultUpdateOne {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableQuestionsCorrect(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *ResultUpdateOne) AddQuestionsCorrect(v int) *ResultUpdateOne {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ResultUpdateOne) SetTotalQuestions(v int) *ResultUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTotalQuestions(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ResultUpdateOne) AddTotalQuestions(v int) *ResultUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ResultUpdateOne) SetTimeSpentSecs(v int) *ResultUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTimeSpentSecs(v *int) *ResultUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ResultUpdateOne) AddTimeSpentSecs(v int) *ResultUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetByTimer sets the "by_timer" field.
func (_u *ResultUpdateOne) SetByTimer(v bool) *ResultUpdateOne {
	_u.mutation.SetByTimer(v)
	return _u
}

// SetNillableByTimer sets the "by_timer" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableByTimer(v *bool) *ResultUpdateOne {
	if v != nil {
		_u.SetByTimer(*v)
	}
	return _u
}

// SetAbilityStart sets the "ability_start" field.
func (_u *ResultUpdateOne) SetAbilityStart(v float64) *ResultUpdateOne {
	_u.mutation.ResetAbilityStart()
	_u.mutation.SetAbilityStart(v)
	return _u
}

// SetNillableAbilityStart sets the "ability_start" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableAbilityStart(v *float64) *ResultUpdateOne {
	if v != nil {
		_u.SetAbilityStart(*v)
	}
	return _u
}

// AddAbilityStart adds value to the "ability_start" field.
func (_u *ResultUpdateOne) AddAbilityStart(v float64) *ResultUpdateOne {
	_u.mutation.AddAbilityStart(v)
	return _u
}

// SetAbilityEnd sets the "ability_end" field.
func (_u *ResultUpdateOne) SetAbilityEnd(v float64) *ResultUpdateOne {
	_u.mutation.ResetAbilityEnd()
	_u.mutation.SetAbilityEnd(v)
	return _u
}

// SetNillableAbilityEnd sets the "ability_end" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableAbilityEnd(v *float64) *ResultUpdateOne {
	if v != nil {
		_u.SetAbilityEnd(*v)
	}
	return _u
}

// AddAbilityEnd adds value to the "ability_end" field.
func (_u *ResultUpdateOne) AddAbilityEnd(v float64) *ResultUpdateOne {
	_u.mutation.AddAbilityEnd(v)
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *ResultUpdateOne) SetTakenAt(v time.Time) *ResultUpdateOne {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *ResultUpdateOne) SetNillableTakenAt(v *time.Time) *ResultUpdateOne {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// Mutation returns the ResultMutation object of the builder.
func (_u *ResultUpdateOne) Mutation() *ResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultUpdate builder.
func (_u *ResultUpdateOne) Where(ps ...predicate.Result) *ResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultUpdateOne) Select(field string, fields ...string) *ResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Result entity.
func (_u *ResultUpdateOne) Save(ctx context.Context) (*Result, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultUpdateOne) SaveX(ctx context.Context) *Result {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := result.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Result.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := result.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Result.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultUpdateOne) sqlSave(ctx context.Context) (_node *Result, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(result.Table, result.Columns, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Result.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, result.FieldID)
		for _, f := range fields {
			if !result.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != result.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(result.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(result.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(result.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePercentage(); ok {
		_spec.SetField(result.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercentage(); ok {
		_spec.AddField(result.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(result.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(result.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(result.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(result.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(result.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(result.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ByTimer(); ok {
		_spec.SetField(result.FieldByTimer, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AbilityStart(); ok {
		_spec.SetField(result.FieldAbilityStart, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbilityStart(); ok {
		_spec.AddField(result.FieldAbilityStart, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AbilityEnd(); ok {
		_spec.SetField(result.FieldAbilityEnd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbilityEnd(); ok {
		_spec.AddField(result.FieldAbilityEnd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(result.FieldTakenAt, field.TypeTime, value)
	}
	_node = &Result{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{result.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
