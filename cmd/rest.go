package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Show the rest timer of the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			return printRest(s)
		})
	},
}

var restStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start or resume the rest timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			started, err := s.StartRest(ctx)
			if err != nil {
				return err
			}
			if !started {
				fmt.Println("Rest timer already running")
			}
			return printRest(s)
		})
	},
}

var restPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the running rest timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			paused, err := s.PauseRest(ctx)
			if err != nil {
				return err
			}
			if !paused {
				fmt.Println("Rest timer is not running")
			}
			return printRest(s)
		})
	},
}

var restResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Stop the rest timer and restore its full duration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			if err := s.ResetRest(ctx); err != nil {
				return err
			}
			return printRest(s)
		})
	},
}

var restSkipCmd = &cobra.Command{
	Use:   "skip",
	Short: "End the current rest early",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			skipped, err := s.SkipRest(ctx)
			if err != nil {
				return err
			}
			if skipped {
				fmt.Println("⏭  Rest skipped")
			} else {
				fmt.Println("No rest to skip")
			}
			return nil
		})
	},
}

var restAdjustCmd = &cobra.Command{
	Use:   "adjust [±seconds]",
	Short: "Add or remove seconds from the rest timer",
	Long: `Add or remove seconds from the rest timer. A running timer moves its end
time; an idle or paused one changes its duration.

Negative values must follow "--", e.g. ironlog rest adjust -- -15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sec, err := strconv.Atoi(args[0])
		if err != nil || sec == 0 {
			return fmt.Errorf("invalid adjustment %q, use e.g. +15 or -15", args[0])
		}
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			if err := s.AdjustRest(ctx, time.Duration(sec)*time.Second); err != nil {
				return err
			}
			return printRest(s)
		})
	},
}

var restWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Count down the running rest timer until it completes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			done := s.RestDone()
			if done == nil {
				return printRest(s)
			}

			ticker := time.NewTicker(250 * time.Millisecond)
			defer ticker.Stop()
			for {
				_, remaining, _ := s.Rest()
				fmt.Printf("\r⏱  %s ", formatClock(remaining))
				select {
				case <-ctx.Done():
					fmt.Println()
					return nil
				case <-done:
					fmt.Println()
					return printRest(s)
				case <-ticker.C:
				}
			}
		})
	},
}

func printRest(s *app.Session) error {
	st, remaining, ok := s.Rest()
	if !ok {
		return fmt.Errorf("no active session")
	}
	fmt.Printf("Rest: %s\n", restStatus(st, remaining))
	return nil
}

func init() {
	restCmd.AddCommand(restStartCmd, restPauseCmd, restResetCmd, restSkipCmd, restAdjustCmd, restWatchCmd)
	rootCmd.AddCommand(restCmd)
}
