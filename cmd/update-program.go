package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/spf13/cobra"
)

var updateTemplateCmd = &cobra.Command{
	Use:   "update-template [file]",
	Short: "Replace the template with the same name from a TOML file, keeping its id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := utils.ParseTemplateFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}

		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			tpl, err := s.ImportTemplate(ctx, src, true)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Template '%s' updated\n", tpl.Name)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(updateTemplateCmd)
}
