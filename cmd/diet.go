package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/diet"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	mealServings float64
	quickLabel   string
	quickMacros  models.Macros
	entryDate    string
	mealItems    []string
)

var addFoodCmd = &cobra.Command{
	Use:   "add-food [food-id] [qty] [unit]",
	Short: "Log a food from the library on today's diet",
	Long: `Log a food from the library on today's diet. The unit defaults to grams.

Example: ironlog add-food white-rice 1 cup`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}
		unit := "g"
		if len(args) == 3 {
			unit = args[2]
		}
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			_, err := s.AddFood(ctx, args[0], qty, unit)
			return err
		})
	},
}

var addMealCmd = &cobra.Command{
	Use:   "add-meal [meal]",
	Short: "Log servings of a saved meal on today's diet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			_, err := s.AddMeal(ctx, args[0], mealServings)
			return err
		})
	},
}

var quickAddCmd = &cobra.Command{
	Use:   "quick-add",
	Short: "Log macros directly on today's diet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			_, err := s.AddQuick(ctx, quickLabel, quickMacros)
			return err
		})
	},
}

var removeEntryCmd = &cobra.Command{
	Use:   "remove-entry [entry-id]",
	Short: "Remove a diet entry (ids are listed by show-diet)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := dayKeyFlag()
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			return s.RemoveEntry(ctx, key, args[0])
		})
	},
}

var showDietCmd = &cobra.Command{
	Use:   "show-diet",
	Short: "Show the diet entries and totals of a day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := dayKeyFlag()
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			var day models.DietDay
			var settings models.Settings
			s.View(func(d *models.ProfileData, now time.Time) {
				if key == "" {
					key = utils.DateKey(now)
				}
				if dd, ok := d.DietLog[key]; ok && dd != nil {
					day = models.DietDay{
						Entries: append([]models.Entry(nil), dd.Entries...),
						Totals:  dd.Totals,
						Water:   dd.Water,
					}
				}
				settings = d.Settings
			})

			boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
			cyan := color.New(color.FgCyan).SprintFunc()
			faint := color.New(color.Faint).SprintFunc()

			fmt.Println(boldGreen(key))
			if len(day.Entries) == 0 {
				fmt.Println("  No entries")
			}
			for _, e := range day.Entries {
				detail := ""
				switch {
				case e.Food != nil:
					detail = fmt.Sprintf("%g %s (%.0fg)", e.Food.Qty, e.Food.Unit, e.Food.Grams)
				case e.Meal != nil:
					detail = fmt.Sprintf("%g servings", e.Meal.Servings)
				}
				fmt.Printf("  %s %s %-22s %-18s %5d kcal  P %3d  C %3d  F %3d\n",
					faint(e.ID), e.At.In(utils.Loc).Format("15:04"), e.Label(), detail,
					e.Macros.Calories, e.Macros.Protein, e.Macros.Carbs, e.Macros.Fat)
			}
			t := day.Totals
			fmt.Println()
			fmt.Printf("  %s %d / %d kcal  P %dg  C %dg  F %dg\n", cyan("Total:"), t.Calories, settings.CalorieGoal, t.Protein, t.Carbs, t.Fat)
			fmt.Printf("  %s %d / %d cups\n", cyan("Water:"), day.Water, settings.WaterGoal)
			return nil
		})
	},
}

var waterCmd = &cobra.Command{
	Use:   "water [cups]",
	Short: "Add cups of water today (default 1)",
	Long: `Add cups of water today (default 1). Negative values undo and must
follow "--", e.g. ironlog water -- -1`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cups := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid cups: %s", args[0])
			}
			cups = n
		}
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			_, err := s.AddWater(ctx, cups)
			return err
		})
	},
}

var saveMealCmd = &cobra.Command{
	Use:   "save-meal [name]",
	Short: "Save a meal made of library foods",
	Long: `Save a meal made of library foods. Each --item is food-id:qty[:unit].

Example: ironlog save-meal "Rice bowl" --item white-rice:1:cup --item chicken-breast:150`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := make([]diet.MealLine, 0, len(mealItems))
		for _, raw := range mealItems {
			line, err := parseMealLine(raw)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			_, err := s.SaveMeal(ctx, args[0], lines)
			return err
		})
	},
}

var listMealsCmd = &cobra.Command{
	Use:   "list-meals",
	Short: "List saved meals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			var meals []models.Meal
			s.View(func(d *models.ProfileData, _ time.Time) {
				meals = append(meals, d.Meals...)
			})
			if len(meals) == 0 {
				fmt.Println("No saved meals")
				return nil
			}
			boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			for _, m := range meals {
				t := m.PerServingTotals
				fmt.Printf("%s %d kcal  P %d  C %d  F %d per serving\n", boldCyan(m.Name), t.Calories, t.Protein, t.Carbs, t.Fat)
				for _, item := range m.Items {
					fmt.Printf("  • %s: %g %s (%.0fg)\n", item.Name, item.Qty, item.UnitKey, item.Grams)
				}
			}
			return nil
		})
	},
}

var deleteMealCmd = &cobra.Command{
	Use:   "delete-meal [meal]",
	Short: "Delete a saved meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			return s.DeleteMeal(ctx, args[0])
		})
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite [food-id]",
	Short: "Toggle a food as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			_, err := s.ToggleFavorite(ctx, args[0])
			return err
		})
	},
}

// dayKeyFlag normalizes --date; empty means today.
func dayKeyFlag() (string, error) {
	if entryDate == "" {
		return "", nil
	}
	t, err := utils.ParseDate(entryDate)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD", entryDate)
	}
	return utils.DateKey(t), nil
}

func parseMealLine(raw string) (diet.MealLine, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return diet.MealLine{}, fmt.Errorf("invalid item %q, use food-id:qty[:unit]", raw)
	}
	qty, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return diet.MealLine{}, fmt.Errorf("invalid quantity in %q", raw)
	}
	line := diet.MealLine{FoodID: parts[0], Qty: qty, UnitKey: "g"}
	if len(parts) == 3 {
		line.UnitKey = parts[2]
	}
	return line, nil
}

func init() {
	addMealCmd.Flags().Float64VarP(&mealServings, "servings", "s", 1, "Number of servings")

	quickAddCmd.Flags().StringVarP(&quickLabel, "label", "l", "Quick add", "Label of the entry")
	quickAddCmd.Flags().IntVar(&quickMacros.Calories, "kcal", 0, "Calories")
	quickAddCmd.Flags().IntVar(&quickMacros.Protein, "protein", 0, "Protein in grams")
	quickAddCmd.Flags().IntVar(&quickMacros.Carbs, "carbs", 0, "Carbohydrates in grams")
	quickAddCmd.Flags().IntVar(&quickMacros.Fat, "fat", 0, "Fat in grams")

	removeEntryCmd.Flags().StringVarP(&entryDate, "date", "d", "", "Day of the entry (YYYY-MM-DD, default today)")
	showDietCmd.Flags().StringVarP(&entryDate, "date", "d", "", "Day to show (YYYY-MM-DD, default today)")

	saveMealCmd.Flags().StringArrayVarP(&mealItems, "item", "i", nil, "Meal component as food-id:qty[:unit]")
	saveMealCmd.MarkFlagRequired("item")

	rootCmd.AddCommand(addFoodCmd, addMealCmd, quickAddCmd, removeEntryCmd, showDietCmd,
		waterCmd, saveMealCmd, listMealsCmd, deleteMealCmd, favoriteCmd)
}
