package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/progress"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	limitDays   int
	historyOnly bool
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-id]",
	Short: "Display detailed information and training history for a particular exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, ok := library.Exercise(args[0])
		if !ok {
			return fmt.Errorf("unknown exercise: %s", args[0])
		}

		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			var sets []models.SetLogEntry
			s.View(func(d *models.ProfileData, _ time.Time) {
				for _, e := range d.SetsLog {
					if e.ExerciseID == ex.ID {
						sets = append(sets, e)
					}
				}
			})

			boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
			boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			magenta := color.New(color.FgMagenta).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()

			if !historyOnly {
				fmt.Println(boldGreen("Exercise Information:"))
				fmt.Printf("  %s: %s\n", boldCyan("Name"), ex.Name)
				fmt.Printf("  %s: %s\n", boldCyan("Muscle Group"), ex.MuscleGroup)
				fmt.Printf("  %s: %s\n", boldCyan("Type"), ex.Type)
				if recs := progress.BestEstimated1RM(sets); len(recs) > 0 {
					r := recs[0]
					fmt.Printf("  %s: %.1fkg × %d on %s (%s: %.1fkg)\n",
						boldCyan("All-time PR"), r.Weight, r.Reps, utils.DateKey(r.Date),
						yellow("Calculated 1RM"), r.Estimated1RM)
				}
				fmt.Printf("  %s: %d\n", boldCyan("Sets logged"), len(sets))
				fmt.Println()
			}

			fmt.Printf("%s %s:\n", boldGreen("History for"), ex.Name)
			if len(sets) == 0 {
				fmt.Println(magenta("  No sets logged."))
				return nil
			}

			// The log is append-only, so the newest days are at the end.
			var days []string
			byDay := make(map[string][]models.SetLogEntry)
			for _, e := range sets {
				key := utils.DateKey(e.Date)
				if _, ok := byDay[key]; !ok {
					days = append(days, key)
				}
				byDay[key] = append(byDay[key], e)
			}
			if limitDays > 0 && len(days) > limitDays {
				days = days[len(days)-limitDays:]
			}
			for i := len(days) - 1; i >= 0; i-- {
				fmt.Printf("\n%s\n", boldGreen(days[i]))
				fmt.Printf("      %-4s | %-12s | %-5s | %-4s\n", "Set", "Weight (kg)", "Reps", "RIR")
				fmt.Println("      " + strings.Repeat("─", 37))
				for j, set := range byDay[days[i]] {
					rir := "-"
					if set.RIR != nil {
						rir = fmt.Sprint(*set.RIR)
					}
					fmt.Printf("      %-4d | %-12.1f | %-5d | %-4s\n", j+1, set.Weight, set.Reps, rir)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(showExCmd)
	showExCmd.Flags().IntVarP(&limitDays, "limit", "l", 5, "Number of training days to display")
	showExCmd.Flags().BoolVarP(&historyOnly, "history-only", "H", false, "Display only history without exercise details")
}
