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
	newProfileID string

	settingsName      string
	settingsCalories  int
	settingsWater     int
	settingsCompound  int
	settingsAccessory int
	settingsAuto      bool
)

var createProfileCmd = &cobra.Command{
	Use:   "create-profile [name]",
	Short: "Create a profile and select it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := getStorage()
		if err != nil {
			return err
		}

		s, err := app.Create(cmd.Context(), appOptions(st), newProfileID, args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		if err := utils.SaveSelection(&utils.Selection{ProfileID: s.ID()}); err != nil {
			return fmt.Errorf("failed to save profile selection: %w", err)
		}
		fmt.Printf("✅ Profile '%s' created (%s)\n", s.Name(), s.ID())
		return nil
	},
}

var selectProfileCmd = &cobra.Command{
	Use:   "select-profile [id]",
	Short: "Make a profile the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := getStorage()
		if err != nil {
			return err
		}
		p, err := st.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("profile %s not found", args[0])
		}
		if err := utils.SaveSelection(&utils.Selection{ProfileID: p.ID}); err != nil {
			return fmt.Errorf("failed to save profile selection: %w", err)
		}
		fmt.Printf("✅ Using profile '%s'\n", p.Name)
		return nil
	},
}

var listProfilesCmd = &cobra.Command{
	Use:   "list-profiles",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := getStorage()
		if err != nil {
			return err
		}
		profiles, err := st.List(cmd.Context())
		if err != nil {
			return err
		}
		current, _ := currentProfileID()

		for _, p := range profiles {
			marker := " "
			if p.ID == current {
				marker = color.GreenString("*")
			}
			fmt.Printf("%s %s - %s (updated %s)\n", marker, p.ID, p.Name, utils.FormatLocal(p.UpdatedAt))
		}
		return nil
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete-profile [id]",
	Short: "Delete a profile and all its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmed {
			return fmt.Errorf("this deletes every log of the profile, pass --yes to confirm")
		}
		st, err := getStorage()
		if err != nil {
			return err
		}
		if err := st.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		if sel, err := utils.LoadSelection(); err == nil && sel.ProfileID == args[0] {
			if err := utils.ClearSelection(); err != nil {
				return err
			}
		}
		fmt.Printf("✅ Profile %s deleted\n", args[0])
		return nil
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change profile settings and rest defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			var cur models.Settings
			var rd models.RestDefaults
			s.View(func(d *models.ProfileData, _ time.Time) {
				cur, rd = d.Settings, d.RestDefaults
			})

			flags := cmd.Flags()
			if flags.Changed("name") || flags.Changed("calories") || flags.Changed("water") {
				if flags.Changed("name") {
					cur.Name = settingsName
				}
				if flags.Changed("calories") {
					cur.CalorieGoal = settingsCalories
				}
				if flags.Changed("water") {
					cur.WaterGoal = settingsWater
				}
				if err := s.UpdateSettings(ctx, cur); err != nil {
					return err
				}
			}
			if flags.Changed("compound") || flags.Changed("accessory") || flags.Changed("auto-adjust") {
				if flags.Changed("compound") {
					rd.CompoundSec = settingsCompound
				}
				if flags.Changed("accessory") {
					rd.AccessorySec = settingsAccessory
				}
				if flags.Changed("auto-adjust") {
					rd.AutoAdjust = settingsAuto
				}
				if err := s.SetRestDefaults(ctx, rd); err != nil {
					return err
				}
			}

			printMetric("Name", cur.Name)
			printMetric("Calorie goal", fmt.Sprintf("%d kcal", cur.CalorieGoal))
			printMetric("Water goal", fmt.Sprintf("%d cups", cur.WaterGoal))
			printMetric("Compound rest", fmt.Sprintf("%ds", rd.CompoundSec))
			printMetric("Accessory rest", fmt.Sprintf("%ds", rd.AccessorySec))
			printMetric("Auto-adjust rest", rd.AutoAdjust)
			return nil
		})
	},
}

func init() {
	createProfileCmd.Flags().StringVar(&newProfileID, "id", "", "Profile id (generated when empty)")
	deleteProfileCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Confirm the deletion")

	settingsCmd.Flags().StringVar(&settingsName, "name", "", "Display name")
	settingsCmd.Flags().IntVar(&settingsCalories, "calories", 0, "Daily calorie goal")
	settingsCmd.Flags().IntVar(&settingsWater, "water", 0, "Daily water goal in cups")
	settingsCmd.Flags().IntVar(&settingsCompound, "compound", 0, "Base rest for compound lifts, seconds")
	settingsCmd.Flags().IntVar(&settingsAccessory, "accessory", 0, "Base rest for accessory lifts, seconds")
	settingsCmd.Flags().BoolVar(&settingsAuto, "auto-adjust", true, "Adjust rest by the effort of the last set")

	rootCmd.AddCommand(createProfileCmd)
	rootCmd.AddCommand(selectProfileCmd)
	rootCmd.AddCommand(listProfilesCmd)
	rootCmd.AddCommand(deleteProfileCmd)
	rootCmd.AddCommand(settingsCmd)
}
