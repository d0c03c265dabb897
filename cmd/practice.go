package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/app"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an adaptive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, _ := cmd.Flags().GetStringSlice("skills")
		if len(skills) == 0 {
			return fmt.Errorf("at least one --skills value is required")
		}
		count, _ := cmd.Flags().GetInt("count")
		return launch(cmd, app.Options{
			PracticeSkills: skills,
			PracticeCount:  count,
		})
	},
}

func init() {
	practiceCmd.Flags().StringSlice("skills", nil, "Skill ids to practice (comma-separated or repeated)")
	practiceCmd.Flags().Int("count", 0, "Number of questions (0 for an open-ended session)")
}
