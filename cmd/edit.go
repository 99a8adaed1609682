package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/templates"
	"github.com/spf13/cobra"
)

var (
	editName     string
	editNotes    string
	editAdd      []string
	editItem     int
	editSets     int
	editType     string
	editRest     string
	editMoveUp   bool
	editMoveDown bool
	editRemove   bool
)

var editTemplateCmd = &cobra.Command{
	Use:   "edit-template [name]",
	Short: "Edit a template: rename, add exercises, or change one item selected with --item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		itemEdit := flags.Changed("sets") || flags.Changed("type") || flags.Changed("rest") ||
			editMoveUp || editMoveDown || editRemove
		if itemEdit && editItem < 1 {
			return fmt.Errorf("select the exercise to change with --item (1-based)")
		}

		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			tpl, err := s.EditTemplate(ctx, args[0], func(d *templates.Draft) error {
				if flags.Changed("name") {
					d.Name = editName
				}
				if flags.Changed("notes") {
					d.Notes = editNotes
				}
				for _, id := range editAdd {
					ex, ok := library.Exercise(id)
					if !ok {
						return models.Invalid("exercise", "unknown exercise %q", id)
					}
					d.AddExercise(ex)
				}
				if !itemEdit {
					return nil
				}

				i := editItem - 1
				if i >= len(d.Items) {
					return models.Invalid("item", "exercise %d does not exist", editItem)
				}
				if flags.Changed("sets") {
					d.SetSets(i, editSets)
				}
				if flags.Changed("type") {
					if err := d.SetType(i, editType); err != nil {
						return err
					}
				}
				if flags.Changed("rest") {
					if err := applyRest(d, i, editRest); err != nil {
						return err
					}
				}
				switch {
				case editRemove:
					d.Remove(i)
				case editMoveUp:
					d.MoveUp(i)
				case editMoveDown:
					d.MoveDown(i)
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Printf("✅ Template '%s' saved with %d exercises\n", tpl.Name, len(tpl.Items))
			return nil
		})
	},
}

func applyRest(d *templates.Draft, i int, value string) error {
	if value == models.RestModeAuto {
		return d.SetRest(i, models.RestModeAuto, 0)
	}
	sec, err := strconv.Atoi(value)
	if err != nil {
		return models.Invalid("rest", "expected %q or a number of seconds, got %q", models.RestModeAuto, value)
	}
	return d.SetRest(i, models.RestModeCustom, sec)
}

var duplicateTemplateCmd = &cobra.Command{
	Use:   "duplicate-template [name]",
	Short: "Copy a template under a new name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			cp, err := s.DuplicateTemplate(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("✅ Created '%s' (%s)\n", cp.Name, cp.ID)
			return nil
		})
	},
}

func init() {
	editTemplateCmd.Flags().StringVar(&editName, "name", "", "New template name")
	editTemplateCmd.Flags().StringVar(&editNotes, "notes", "", "Template notes")
	editTemplateCmd.Flags().StringSliceVarP(&editAdd, "add", "a", nil, "Exercise ids to append")
	editTemplateCmd.Flags().IntVarP(&editItem, "item", "i", 0, "Exercise to change (1-based)")
	editTemplateCmd.Flags().IntVar(&editSets, "sets", templates.DefaultSets, "Target sets for the item")
	editTemplateCmd.Flags().StringVar(&editType, "type", "", "compound or accessory")
	editTemplateCmd.Flags().StringVar(&editRest, "rest", "", "auto, or a custom rest in seconds")
	editTemplateCmd.Flags().BoolVar(&editMoveUp, "up", false, "Move the item up")
	editTemplateCmd.Flags().BoolVar(&editMoveDown, "down", false, "Move the item down")
	editTemplateCmd.Flags().BoolVar(&editRemove, "remove", false, "Remove the item")

	rootCmd.AddCommand(editTemplateCmd)
	rootCmd.AddCommand(duplicateTemplateCmd)
}
