package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to enable verbose day details.
var details bool

// calendarCmd prints the month grid. Training days are red, days with diet
// entries are green, and days with both are yellow.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training and diet days",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now().In(utils.Loc)
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, utils.Loc)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			setsByDay := make(map[int][]models.SetLogEntry)
			kcalByDay := make(map[int]int)
			s.View(func(d *models.ProfileData, _ time.Time) {
				for _, e := range d.SetsLog {
					t := e.Date.In(utils.Loc)
					if t.Year() == year && t.Month() == month {
						setsByDay[t.Day()] = append(setsByDay[t.Day()], e)
					}
				}
				for key, day := range d.DietLog {
					t, err := utils.ParseDate(key)
					if err != nil || day == nil || len(day.Entries) == 0 {
						continue
					}
					if t.Year() == year && t.Month() == month {
						kcalByDay[t.Day()] = day.Totals.Calories
					}
				}
			})

			red := color.New(color.FgRed).SprintFunc()
			green := color.New(color.FgGreen).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()

			header := fmt.Sprintf("%s %d", month.String(), year)
			fmt.Println(centerText(header, 20))
			fmt.Println("Su Mo Tu We Th Fr Sa")

			weekday := int(firstOfMonth.Weekday())
			for i := 0; i < weekday; i++ {
				fmt.Print("   ")
			}

			for day := 1; day <= lastOfMonth.Day(); day++ {
				dayStr := fmt.Sprintf("%2d", day)
				_, trained := setsByDay[day]
				_, ate := kcalByDay[day]
				switch {
				case trained && ate:
					dayStr = yellow(dayStr)
				case trained:
					dayStr = red(dayStr)
				case ate:
					dayStr = green(dayStr)
				}
				fmt.Printf("%s ", dayStr)
				weekday++
				if weekday%7 == 0 {
					fmt.Println()
				}
			}
			fmt.Print("\n\n")

			fmt.Println("Legend:")
			fmt.Printf("  %s: training\n", red("██"))
			fmt.Printf("  %s: diet logged\n", green("██"))
			fmt.Printf("  %s: both\n", yellow("██"))

			if details {
				fmt.Println("\nDay Details:")
				var days []int
				seen := make(map[int]bool)
				for d := range setsByDay {
					days = append(days, d)
					seen[d] = true
				}
				for d := range kcalByDay {
					if !seen[d] {
						days = append(days, d)
					}
				}
				sort.Ints(days)
				for _, day := range days {
					dayDate := time.Date(year, month, day, 0, 0, 0, 0, utils.Loc)
					fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
					if sets := setsByDay[day]; len(sets) > 0 {
						perExercise := make(map[string]int)
						var order []string
						for _, e := range sets {
							if perExercise[e.ExerciseName] == 0 {
								order = append(order, e.ExerciseName)
							}
							perExercise[e.ExerciseName]++
						}
						for _, name := range order {
							fmt.Printf("  %s: %d sets\n", name, perExercise[name])
						}
					}
					if kcal, ok := kcalByDay[day]; ok {
						fmt.Printf("  %d kcal\n", kcal)
					}
				}
			}
			return nil
		})
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional day details")
}
