package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdeck/ent"
	"github.com/abhisek/prepdeck/ent/result"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Save(ctx context.Context, res *Result) error {
	_, err := r.client.Result.Create().
		SetAttemptID(res.AttemptID).
		SetMode(res.Mode).
		SetTitle(res.Title).
		SetScorePercentage(res.ScorePercentage).
		SetQuestionsCorrect(res.QuestionsCorrect).
		SetTotalQuestions(res.TotalQuestions).
		SetTimeSpentSecs(res.TimeSpentSecs).
		SetByTimer(res.ByTimer).
		SetAbilityStart(res.AbilityStart).
		SetAbilityEnd(res.AbilityEnd).
		SetTakenAt(res.TakenAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) List(ctx context.Context, limit int) ([]*Result, error) {
	q := r.client.Result.Query().
		Order(ent.Desc(result.FieldTakenAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]*Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, &Result{
			ID:               row.ID,
			AttemptID:        row.AttemptID,
			Mode:             row.Mode,
			Title:            row.Title,
			ScorePercentage:  row.ScorePercentage,
			QuestionsCorrect: row.QuestionsCorrect,
			TotalQuestions:   row.TotalQuestions,
			TimeSpentSecs:    row.TimeSpentSecs,
			ByTimer:          row.ByTimer,
			AbilityStart:     row.AbilityStart,
			AbilityEnd:       row.AbilityEnd,
			TakenAt:          row.TakenAt,
		})
	}
	return out, nil
}
