package cmd

import (
	"context"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start-session [template]",
	Short: "Starts a new training session from a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			if err := s.StartWorkout(ctx, args[0], confirmed); err != nil {
				return err
			}
			return printSession(s)
		})
	},
}

func init() {
	startCmd.Flags().BoolVarP(&confirmed, "force", "f", false, "Replace a session that is still in progress")
	rootCmd.AddCommand(startCmd)
}
