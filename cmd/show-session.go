package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/spf13/cobra"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show current session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			return printSession(s)
		})
	},
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}

// printSession renders the active workout as a set table per exercise.
func printSession(s *app.Session) error {
	sum, ok := s.WorkoutSummary()
	if !ok {
		return fmt.Errorf("no active session")
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	tableIndent := "   "
	setColWidth := 6
	weightColWidth := 12
	repsColWidth := 8
	rirColWidth := 8
	border := func(l, m, r string) string {
		return tableIndent + l +
			strings.Repeat("─", setColWidth) + m +
			strings.Repeat("─", weightColWidth) + m +
			strings.Repeat("─", repsColWidth) + m +
			strings.Repeat("─", rirColWidth) + r
	}

	s.View(func(d *models.ProfileData, now time.Time) {
		w := d.ActiveWorkout
		fmt.Printf("%s\n", green(w.Name))
		fmt.Printf("%s %s\n", red("Duration:"), now.Sub(w.StartedAt).Round(time.Second))
		fmt.Printf("%s %d/%d sets, %.1f kg volume\n\n", cyan("Progress:"), sum.SetsDone, sum.SetsPlan, sum.Volume)

		for i, item := range w.Items {
			marker := "  "
			if i == w.CurrentExerciseIndex {
				marker = yellow("▶ ")
			}
			fmt.Printf("%s%d. %s %s\n", marker, i+1, item.Name,
				cyan(fmt.Sprintf("(%s, %d sets)", item.MuscleGroup, item.TargetSets)))
			if len(item.SetsCompleted) == 0 {
				continue
			}
			fmt.Println(border("┌", "┬", "┐"))
			fmt.Printf(tableIndent+"│%-*s│%-*s│%-*s│%-*s│\n",
				setColWidth, "Set", weightColWidth, "Weight", repsColWidth, "Reps", rirColWidth, "RIR")
			fmt.Println(border("├", "┼", "┤"))
			for j, set := range item.SetsCompleted {
				rir := "-"
				if set.RIR != nil {
					rir = fmt.Sprintf("%d", *set.RIR)
				}
				fmt.Printf(tableIndent+"│%-*d│%-*s│%-*d│%-*s│\n",
					setColWidth, j+1,
					weightColWidth, fmt.Sprintf("%.1f kg", set.Weight),
					repsColWidth, set.Reps,
					rirColWidth, rir)
			}
			fmt.Println(border("└", "┴", "┘"))
		}
	})

	st, remaining, _ := s.Rest()
	fmt.Printf("\n%s %s\n", red("Rest:"), restStatus(st, remaining))
	fmt.Printf("%s %s\n", green("Next:"), sum.NextLabel)
	return nil
}

func restStatus(st models.RestState, remaining time.Duration) string {
	switch st.State {
	case models.RestRunning:
		return fmt.Sprintf("running, %s left of %ds", formatClock(remaining), st.DurationSec)
	case models.RestPaused:
		return fmt.Sprintf("paused at %s", formatClock(remaining))
	default:
		return fmt.Sprintf("idle (%ds)", st.DurationSec)
	}
}

// formatClock renders a duration as m:ss, rounding up partial seconds.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	sec := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}
