package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/spf13/cobra"
)

var showTemplateCmd = &cobra.Command{
	Use:   "show-template [name]",
	Short: "Display a workout template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			tpl, ok := s.Template(args[0])
			if !ok {
				return fmt.Errorf("template %q not found", args[0])
			}

			// Set up color functions.
			green := color.New(color.FgGreen).SprintFunc()
			cyan := color.New(color.FgCyan).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()

			fmt.Printf("\n%s\n", green(strings.ToUpper(tpl.Name)))
			if tpl.Notes != "" {
				fmt.Printf("%s: %s\n", cyan("Notes"), tpl.Notes)
			}
			fmt.Printf("%s: %s\n", cyan("ID"), tpl.ID)
			fmt.Println(strings.Repeat("=", 60))

			for i, it := range tpl.Items {
				fmt.Printf("%d. %s %s\n", i+1, it.Name, yellow("("+it.MuscleGroup+")"))
				fmt.Printf("   %s: %d   %s: %s   %s: %s\n",
					cyan("Sets"), it.Sets,
					cyan("Type"), it.Type,
					cyan("Rest"), restLabel(it))
			}
			fmt.Println()
			return nil
		})
	},
}

func restLabel(it models.ExerciseDraftItem) string {
	if it.RestMode == models.RestModeCustom && it.RestSec != nil {
		return fmt.Sprintf("%ds", *it.RestSec)
	}
	return "auto"
}

func init() {
	rootCmd.AddCommand(showTemplateCmd)
}
