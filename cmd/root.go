package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/misterclayt0n/ironlog/internal/app"
	"github.com/misterclayt0n/ironlog/internal/config"
	"github.com/misterclayt0n/ironlog/internal/logging"
	"github.com/misterclayt0n/ironlog/internal/models"
	"github.com/misterclayt0n/ironlog/internal/notify"
	"github.com/misterclayt0n/ironlog/internal/refdata"
	"github.com/misterclayt0n/ironlog/internal/storage"
	"github.com/misterclayt0n/ironlog/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	profileFlag string
	quiet       bool
	confirmed   bool

	cfg       *config.Config
	library   *refdata.Library
	store     *storage.Storage
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "ironlog",
	Short:         "Local training log with rest timer and macro tracking",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c

		logCloser = logging.Setup(logging.SetupParams{
			LogFileName:   c.Logging.File,
			LogToConsole:  c.Logging.ToConsole,
			LogLevel:      c.Logging.Level,
			LogFormatJSON: c.Logging.JSON,
		})

		if err := utils.SetLocation(c.Profile.Timezone); err != nil {
			return err
		}

		library, err = refdata.Load(c.Reference.Files...)
		if err != nil {
			return fmt.Errorf("failed to load reference data: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			if err := store.Close(); err != nil {
				logrus.WithError(err).Warn("failed to close storage")
			}
			store = nil
		}
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// PrintError reports a failed command. Domain errors were already shown as
// notifications unless those are silenced.
func PrintError(w io.Writer, err error) {
	if !quiet && (models.IsValidation(err) || models.IsPrecondition(err)) {
		return
	}
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.toml (default ~/.config/ironlog/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "Profile id to use instead of the selected one")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not print notifications")
}

func getStorage() (*storage.Storage, error) {
	if store != nil {
		return store, nil
	}
	st, err := storage.Open(cfg.DB.DSN())
	if err != nil {
		return nil, err
	}
	store = st
	return st, nil
}

func appOptions(st app.Store) app.Options {
	var n notify.Notifier = notify.NewConsole(os.Stderr)
	if quiet {
		n = notify.Discard{}
	}
	return app.Options{
		Store:        st,
		Library:      library,
		Notifier:     n,
		RestDefaults: cfg.RestDefaults(),
	}
}

// currentProfileID resolves the profile from the flag, the config, then the
// saved selection.
func currentProfileID() (string, error) {
	if profileFlag != "" {
		return profileFlag, nil
	}
	if cfg.Profile.Default != "" {
		return cfg.Profile.Default, nil
	}
	sel, err := utils.LoadSelection()
	if err != nil {
		return "", fmt.Errorf("failed to load profile selection: %w", err)
	}
	if sel.ProfileID == "" {
		return "", fmt.Errorf("no profile selected, run `ironlog create-profile` or `ironlog select-profile` first")
	}
	return sel.ProfileID, nil
}

// withSession opens the current profile, runs fn and closes the session.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *app.Session) error) error {
	id, err := currentProfileID()
	if err != nil {
		return err
	}
	st, err := getStorage()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := app.Open(ctx, appOptions(st), id)
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(ctx, s)
}
