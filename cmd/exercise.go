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

var (
	exerciseMuscle string
	foodSearch     string
)

var listExercisesCmd = &cobra.Command{
	Use:   "list-exercises",
	Short: "List the exercise library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		group := ""
		for _, ex := range library.Exercises() {
			if exerciseMuscle != "" && !strings.EqualFold(ex.MuscleGroup, exerciseMuscle) {
				continue
			}
			if ex.MuscleGroup != group {
				group = ex.MuscleGroup
				fmt.Printf("\n%s\n", cyan(strings.ToUpper(group)))
			}
			fmt.Printf("  %-20s %-24s %s\n", ex.ID, ex.Name, ex.Type)
		}
		return nil
	},
}

var listFoodsCmd = &cobra.Command{
	Use:   "list-foods",
	Short: "List the food library, favorites first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			favorite := make(map[string]bool)
			s.View(func(d *models.ProfileData, _ time.Time) {
				for _, id := range d.Favorites {
					favorite[id] = true
				}
			})

			var favs, rest []models.Food
			for _, f := range library.Foods() {
				if foodSearch != "" && !strings.Contains(strings.ToLower(f.Name), strings.ToLower(foodSearch)) {
					continue
				}
				if favorite[f.ID] {
					favs = append(favs, f)
				} else {
					rest = append(rest, f)
				}
			}

			star := color.New(color.FgYellow).Sprint("★")
			for _, f := range append(favs, rest...) {
				mark := " "
				if favorite[f.ID] {
					mark = star
				}
				m := f.PerReferenceMacros
				var units []string
				for _, u := range f.Units {
					units = append(units, u.Key)
				}
				fmt.Printf("%s %-16s %-22s %4.0f kcal / %gg  P %.1f C %.1f F %.1f  [%s]\n",
					mark, f.ID, f.Name, m.Calories, f.ReferenceGrams, m.Protein, m.Carbs, m.Fat,
					strings.Join(units, ", "))
			}
			return nil
		})
	},
}

func init() {
	listExercisesCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "Only list exercises for this muscle group")
	listFoodsCmd.Flags().StringVarP(&foodSearch, "search", "s", "", "Only list foods whose name contains this text")
	rootCmd.AddCommand(listExercisesCmd)
	rootCmd.AddCommand(listFoodsCmd)
}
