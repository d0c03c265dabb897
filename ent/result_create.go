// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepdeck/ent/result"
)

// ResultCreate is the builder for creating a Result entity.
type ResultCreate struct {
	config
	mutation *ResultMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ResultCreate) SetAttemptID(v string) *ResultCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ResultCreate) SetMode(v string) *ResultCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ResultCreate) SetTitle(v string) *ResultCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetScorePercentage sets the "score_percentage" field.
func (_c *ResultCreate) SetScorePercentage(v float64) *ResultCreate {
	_c.mutation.SetScorePercentage(v)
	return _c
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_c *ResultCreate) SetQuestionsCorrect(v int) *ResultCreate {
	_c.mutation.SetQuestionsCorrect(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ResultCreate) SetTotalQuestions(v int) *ResultCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *ResultCreate) SetTimeSpentSecs(v int) *ResultCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *ResultCreate) SetNillableTimeSpentSecs(v *int) *ResultCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetByTimer sets the "by_timer" field.
func (_c *ResultCreate) SetByTimer(v bool) *ResultCreate {
	_c.mutation.SetByTimer(v)
	return _c
}

// SetNillableByTimer sets the "by_timer" field if the given value is not nil.
func (_c *ResultCreate) SetNillableByTimer(v *bool) *ResultCreate {
	if v != nil {
		_c.SetByTimer(*v)
	}
	return _c
}

// SetAbilityStart sets the "ability_start" field.
func (_c *ResultCreate) SetAbilityStart(v float64) *ResultCreate {
	_c.mutation.SetAbilityStart(v)
	return _c
}

// SetNillableAbilityStart sets the "ability_start" field if the given value is not nil.
func (_c *ResultCreate) SetNillableAbilityStart(v *float64) *ResultCreate {
	if v != nil {
		_c.SetAbilityStart(*v)
	}
	return _c
}

// SetAbilityEnd sets the "ability_end" field.
func (_c *ResultCreate) SetAbilityEnd(v float64) *ResultCreate {
	_c.mutation.SetAbilityEnd(v)
	return _c
}

// SetNillableAbilityEnd sets the "ability_end" field if the given value is not nil.
func (_c *ResultCreate) SetNillableAbilityEnd(v *float64) *ResultCreate {
	if v != nil {
		_c.SetAbilityEnd(*v)
	}
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *ResultCreate) SetTakenAt(v time.Time) *ResultCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *ResultCreate) SetNillableTakenAt(v *time.Time) *ResultCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// Mutation returns the ResultMutation object of the builder.
func (_c *ResultCreate) Mutation() *ResultMutation {
	return _c.mutation
}

// Save creates the Result in the database.
func (_c *ResultCreate) Save(ctx context.Context) (*Result, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultCreate) SaveX(ctx context.Context) *Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := result.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.ByTimer(); !ok {
		v := result.DefaultByTimer
		_c.mutation.SetByTimer(v)
	}
	if _, ok := _c.mutation.AbilityStart(); !ok {
		v := result.DefaultAbilityStart
		_c.mutation.SetAbilityStart(v)
	}
	if _, ok := _c.mutation.AbilityEnd(); !ok {
		v := result.DefaultAbilityEnd
		_c.mutation.SetAbilityEnd(v)
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := result.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "Result.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := result.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Result.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Result.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := result.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Result.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Result.title"`)}
	}
	if _, ok := _c.mutation.ScorePercentage(); !ok {
		return &ValidationError{Name: "score_percentage", err: errors.New(`ent: missing required field "Result.score_percentage"`)}
	}
	if _, ok := _c.mutation.QuestionsCorrect(); !ok {
		return &ValidationError{Name: "questions_correct", err: errors.New(`ent: missing required field "Result.questions_correct"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "Result.total_questions"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "Result.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.ByTimer(); !ok {
		return &ValidationError{Name: "by_timer", err: errors.New(`ent: missing required field "Result.by_timer"`)}
	}
	if _, ok := _c.mutation.AbilityStart(); !ok {
		return &ValidationError{Name: "ability_start", err: errors.New(`ent: missing required field "Result.ability_start"`)}
	}
	if _, ok := _c.mutation.AbilityEnd(); !ok {
		return &ValidationError{Name: "ability_end", err: errors.New(`ent: missing required field "Result.ability_end"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "Result.taken_at"`)}
	}
	return nil
}

func (_c *ResultCreate) sqlSave(ctx context.Context) (*Result, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultCreate) createSpec() (*Result, *sqlgraph.CreateSpec) {
	var (
		_node = &Result{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(result.Table, sqlgraph.NewFieldSpec(result.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(result.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(result.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(result.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ScorePercentage(); ok {
		_spec.SetField(result.FieldScorePercentage, field.TypeFloat64, value)
		_node.ScorePercentage = value
	}
	if value, ok := _c.mutation.QuestionsCorrect(); ok {
		_spec.SetField(result.FieldQuestionsCorrect, field.TypeInt, value)
		_node.QuestionsCorrect = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(result.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(result.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.ByTimer(); ok {
		_spec.SetField(result.FieldByTimer, field.TypeBool, value)
		_node.ByTimer = value
	}
	if value, ok := _c.mutation.AbilityStart(); ok {
		_spec.SetField(result.FieldAbilityStart, field.TypeFloat64, value)
		_node.AbilityStart = value
	}
	if value, ok := _c.mutation.AbilityEnd(); ok {
		_spec.SetField(result.FieldAbilityEnd, field.TypeFloat64, value)
		_node.AbilityEnd = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(result.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	return _node, _spec
}

// ResultCreateBulk is the builder for creating many Result entities in bulk.
type ResultCreateBulk struct {
	config
	err      error
	builders []*ResultCreate
}

// Save creates the Result entities in the database.
func (_c *ResultCreateBulk) Save(ctx context.Context) ([]*Result, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Result, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResultCreateBulk) SaveX(ctx context.Context) []*Result {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
