package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/spf13/cobra"
)

var statusWeeks int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the dashboard: today's intake, weekly training volume, streak and records",
	RunE: func(cmd *cobra.Command, args []string) error {
		if statusWeeks < 1 {
			return fmt.Errorf("weeks must be at least 1")
		}
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			d := s.Dashboard(statusWeeks)

			printBoxedHeader("STATUS: " + strings.ToUpper(s.Name()))

			t := d.Today.Totals
			printMetric("Calories today", fmt.Sprintf("%d / %d kcal", t.Calories, d.CalorieGoal))
			printMetric("Macros today", fmt.Sprintf("P %dg  C %dg  F %dg", t.Protein, t.Carbs, t.Fat))
			printMetric("Water today", fmt.Sprintf("%d / %d cups", d.Today.Water, d.WaterGoal))
			if d.AvgCaloriesDays > 0 {
				printMetric("Avg calories (7d)", fmt.Sprintf("%.0f kcal over %d days", d.AvgCalories, d.AvgCaloriesDays))
			} else {
				printMetric("Avg calories (7d)", "no entries")
			}
			if d.HasWeightDelta {
				printMetric("Weight change", fmt.Sprintf("%+.1f kg", d.WeightDelta))
			}
			printMetric("Day streak", fmt.Sprintf("%d days", d.Streak))
			if d.WorkoutActive {
				printMetric("Session", color.GreenString("in progress"))
			}
			fmt.Println()

			fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Sets per week:"))
			for i, n := range d.WeeklySets {
				label := "this week"
				if i > 0 {
					label = fmt.Sprintf("%d weeks ago", i)
				}
				fmt.Printf("  %-12s %s %d\n", label, strings.Repeat("█", n), n)
			}
			fmt.Println()

			fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Sets per muscle (last 7 days):"))
			var muscles []string
			for m := range d.SetsPerMuscle {
				muscles = append(muscles, m)
			}
			sort.Strings(muscles)
			for _, m := range muscles {
				fmt.Printf("  • %s: %d sets\n", color.New(color.FgMagenta, color.Bold).Sprint(m), d.SetsPerMuscle[m])
			}

			if len(d.Records) > 0 {
				fmt.Println()
				fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Best estimated 1RM:"))
				for i, r := range d.Records {
					if i == 5 {
						break
					}
					fmt.Printf("  • %s: %.1f kg (%.1f x %d)\n", r.ExerciseName, r.Estimated1RM, r.Weight, r.Reps)
				}
			}
			fmt.Println()
			return nil
		})
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

func init() {
	statusCmd.Flags().IntVar(&statusWeeks, "weeks", 4, "Number of weeks in the volume chart")
	rootCmd.AddCommand(statusCmd)
}
