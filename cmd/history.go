package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterExercise string
	filterMuscle   string
	filterDay      string
	filterDays     int
)

// historyCmd shows the sets log grouped by day and exercise.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the sets log, optionally filtered by exercise, muscle group or day",
	RunE: func(cmd *cobra.Command, args []string) error {
		var dayKey string
		if filterDay != "" {
			parsed, err := utils.ParseDate(filterDay)
			if err != nil {
				parsed, err = time.ParseInLocation("02/01/06", filterDay, utils.Loc)
			}
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}
			dayKey = utils.DateKey(parsed)
		}

		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			var days []string
			byDay := make(map[string][]models.SetLogEntry)
			s.View(func(d *models.ProfileData, now time.Time) {
				cutoff := time.Time{}
				if filterDays > 0 {
					cutoff = utils.StartOfDay(now).AddDate(0, 0, -(filterDays - 1))
				}
				for _, e := range d.SetsLog {
					if filterExercise != "" && e.ExerciseID != filterExercise {
						continue
					}
					if filterMuscle != "" && e.MuscleGroup != filterMuscle {
						continue
					}
					if e.Date.Before(cutoff) {
						continue
					}
					key := utils.DateKey(e.Date)
					if dayKey != "" && key != dayKey {
						continue
					}
					if _, ok := byDay[key]; !ok {
						days = append(days, key)
					}
					byDay[key] = append(byDay[key], e)
				}
			})

			if len(days) == 0 {
				fmt.Println("No sets found")
				return nil
			}

			boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
			cyan := color.New(color.FgCyan).SprintFunc()
			for _, day := range days {
				fmt.Printf("Date: %s\n", boldGreen(day))
				var order []string
				grouped := make(map[string][]models.SetLogEntry)
				for _, e := range byDay[day] {
					if _, ok := grouped[e.ExerciseName]; !ok {
						order = append(order, e.ExerciseName)
					}
					grouped[e.ExerciseName] = append(grouped[e.ExerciseName], e)
				}
				for _, name := range order {
					fmt.Printf("  %s\n", cyan(name))
					for _, e := range grouped[name] {
						fmt.Printf("    %s  %.1f kg × %d\n", e.Date.In(utils.Loc).Format("15:04"), e.Weight, e.Reps)
					}
				}
				fmt.Println()
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterExercise, "exercise", "e", "", "Filter by exercise id")
	historyCmd.Flags().StringVarP(&filterMuscle, "muscle", "m", "", "Filter by muscle group")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVar(&filterDays, "days", 0, "Only show the last N days")
}
