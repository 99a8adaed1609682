package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/spf13/cobra"
)

var createTemplateCmd = &cobra.Command{
	Use:   "create-template [file]",
	Short: "Create a new workout template from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := utils.ParseTemplateFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}

		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			tpl, err := s.ImportTemplate(ctx, src, false)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Template '%s' created with %d exercises\n", tpl.Name, len(tpl.Items))
			return nil
		})
	},
}

var listTemplatesCmd = &cobra.Command{
	Use:   "list-templates",
	Short: "List all workout templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			s.View(func(d *models.ProfileData, _ time.Time) {
				if len(d.Templates) == 0 {
					fmt.Println("No templates yet, create one with `ironlog create-template`")
					return
				}
				for _, t := range d.Templates {
					fmt.Printf("%s - %s (%d exercises)\n", t.ID, t.Name, len(t.Items))
				}
			})
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(createTemplateCmd)
	rootCmd.AddCommand(listTemplatesCmd)
}
