package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/exam"
	"github.com/abhisek/prepdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		results, err := st.ResultRepo().List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No completed attempts yet.")
			return nil
		}

		for _, r := range results {
			title := r.Title
			if title == "" {
				title = r.Mode
			}
			line := fmt.Sprintf("%s  %-10s  %-32s  %3.0f%%  %d/%d",
				r.TakenAt.Format("2006-01-02 15:04"), r.Mode, title,
				r.ScorePercentage, r.QuestionsCorrect, r.TotalQuestions)
			if r.Mode == "practice" {
				line += fmt.Sprintf("  ability %.2f", r.AbilityEnd)
			} else if r.TimeSpentSecs > 0 {
				line += "  " + exam.FormatClock(r.TimeSpentSecs)
			}
			if r.ByTimer {
				line += "  (timed out)"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results to show (0 for all)")
}
