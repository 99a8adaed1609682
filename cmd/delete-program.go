package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/spf13/cobra"
)

var deleteTemplateCmd = &cobra.Command{
	Use:   "delete-template [name]",
	Short: "Delete a workout template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			if err := s.DeleteTemplate(ctx, args[0], confirmed); err != nil {
				return err
			}
			fmt.Println("✅ Template deleted")
			return nil
		})
	},
}

func init() {
	deleteTemplateCmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Confirm the deletion")
	rootCmd.AddCommand(deleteTemplateCmd)
}
