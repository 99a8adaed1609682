package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/spf13/cobra"
)

var (
	newSetWeight float64
	newSetReps   int
	newSetRIR    int
	newSetBW     bool
)

var addSetCmd = &cobra.Command{
	Use:   "add-set",
	Short: "Log a set on the current exercise and start the rest timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if newSetBW {
			newSetWeight = 0
		}
		var rir *int
		if cmd.Flags().Changed("rir") {
			rir = &newSetRIR
		}

		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			dur, err := s.LogSet(ctx, newSetWeight, newSetReps, rir)
			if err != nil {
				return err
			}
			sum, _ := s.WorkoutSummary()
			fmt.Printf("✅ Set logged (%d/%d sets done), rest %ds\n", sum.SetsDone, sum.SetsPlan, dur)
			fmt.Printf("Next: %s\n", sum.NextLabel)
			return nil
		})
	},
}

func init() {
	addSetCmd.Flags().Float64VarP(&newSetWeight, "weight", "w", 0, "Weight used for the set")
	addSetCmd.Flags().IntVarP(&newSetReps, "reps", "r", 0, "Number of reps performed")
	addSetCmd.Flags().IntVar(&newSetRIR, "rir", 0, "Reps in reserve")
	addSetCmd.Flags().BoolVarP(&newSetBW, "bodyweight", "b", false, "Bodyweight set (ignores weight)")
	addSetCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(addSetCmd)
}
