package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	weightDate  string
	weightLimit int
)

var logWeightCmd = &cobra.Command{
	Use:   "log-weight [kg]",
	Short: "Record a body weight measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			return s.LogWeight(ctx, weightDate, kg)
		})
	},
}

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "List recent body weight measurements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *app.Session) error {
			var log []models.WeightEntry
			s.View(func(d *models.ProfileData, _ time.Time) {
				log = append(log, d.WeightLog...)
			})
			if len(log) == 0 {
				fmt.Println("No weigh-ins recorded")
				return nil
			}
			if weightLimit > 0 && len(log) > weightLimit {
				log = log[len(log)-weightLimit:]
			}
			prev := 0.0
			for i, w := range log {
				delta := ""
				if i > 0 {
					delta = fmt.Sprintf("(%+.1f)", w.Weight-prev)
				}
				fmt.Printf("  %s  %6.1f kg %s\n", w.Date, w.Weight, delta)
				prev = w.Weight
			}
			return nil
		})
	},
}

func init() {
	logWeightCmd.Flags().StringVarP(&weightDate, "date", "d", "", "Date of the measurement (YYYY-MM-DD, default today)")
	weightsCmd.Flags().IntVarP(&weightLimit, "limit", "l", 14, "Number of entries to show")
	rootCmd.AddCommand(logWeightCmd, weightsCmd)
}
