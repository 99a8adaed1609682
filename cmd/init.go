package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ironlog/internal/config"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create config dir: %w", err)
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
			defer f.Close()
			if err := toml.NewEncoder(f).Encode(cfg); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}
			fmt.Printf("✅ Config written to %s\n", path)
		} else {
			fmt.Printf("Config already exists at %s\n", path)
		}

		if _, err := getStorage(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		fmt.Printf("✅ Database ready (%s)\n", cfg.DB.ConnectionString)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
