package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export every profile to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "ironlog_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		st, err := getStorage()
		if err != nil {
			return err
		}

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outputFile, err)
		}
		defer f.Close()

		n, err := st.Export(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Exported %d profiles to %s\n", n, outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Restore profiles from a TOML dump made by export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		st, err := getStorage()
		if err != nil {
			return err
		}

		n, err := st.Import(cmd.Context(), f)
		if err != nil {
			return fmt.Errorf("failed to build database: %w", err)
		}
		fmt.Printf("✅ Restored %d profiles from %s\n", n, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
