package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current training session without saving any sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			if err := s.DiscardWorkout(ctx, confirmed); err != nil {
				return err
			}
			fmt.Println("✅ Session canceled")
			return nil
		})
	},
}

func init() {
	cancelSessionCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Confirm discarding the logged sets")
	rootCmd.AddCommand(cancelSessionCmd)
}
