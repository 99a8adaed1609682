package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/spf13/cobra"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Finish the current training session and save its sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			sum, ok := s.WorkoutSummary()
			if !ok {
				return fmt.Errorf("no active session")
			}
			n, err := s.FinishWorkout(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Session ended: %d sets, %.1f kg total volume\n", n, sum.Volume)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
