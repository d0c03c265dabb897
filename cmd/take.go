package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/app"
)

var takeCmd = &cobra.Command{
	Use:   "take <code>",
	Short: "Take a test by its shared code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, app.Options{TestToken: args[0]})
	},
}
