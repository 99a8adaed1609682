package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/spf13/cobra"
)

var nextExerciseCmd = &cobra.Command{
	Use:   "next-ex",
	Short: "Move to the next exercise of the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			moved, err := s.Next(ctx)
			if err != nil {
				return err
			}
			if !moved {
				fmt.Println("Already at the last exercise")
			}
			return printSession(s)
		})
	},
}

var prevExerciseCmd = &cobra.Command{
	Use:   "prev-ex",
	Short: "Move to the previous exercise of the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			moved, err := s.Prev(ctx)
			if err != nil {
				return err
			}
			if !moved {
				fmt.Println("Already at the first exercise")
			}
			return printSession(s)
		})
	},
}

var gotoExerciseCmd = &cobra.Command{
	Use:   "goto-ex [exercise-index]",
	Short: "Jump to an exercise of the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, err := strconv.Atoi(args[0])
		if err != nil || exIdx < 1 {
			return fmt.Errorf("invalid exercise index, must be a positive integer")
		}

		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			if err := s.Jump(ctx, exIdx-1); err != nil {
				return err
			}
			return printSession(s)
		})
	},
}

func init() {
	rootCmd.AddCommand(nextExerciseCmd)
	rootCmd.AddCommand(prevExerciseCmd)
	rootCmd.AddCommand(gotoExerciseCmd)
}
