package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"termtoe/config"
	"termtoe/engine/local"
	"termtoe/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Root returns the termtoe command. Running it without a subcommand starts
// a game.
func Root() *cobra.Command {
	var logFile *os.File

	root := &cobra.Command{
		Use:   "termtoe",
		Short: "Play Tic-Tac-Toe in the terminal",
		Long: heredoc.Doc(`
			Play Tic-Tac-Toe in the terminal, two players taking turns on one keyboard.

			Click a cell or move the cursor with the arrow keys (or hjkl) and press
			Enter. The digits 1-9 play the cells left to right, top to bottom.
			Press r to restart, f to toggle focus mode and q to quit.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := setupLogging(cmd)
			if err != nil {
				return err
			}
			logFile = f
			return nil
		},

		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer func() { logFile = nil }()
			return closeLogging(logFile)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if f := cmd.Flag("focus"); f.Changed {
				cfg.UI.FocusMode = f.Value.String() == "true"
			}
			if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
				cfg.UI.Mouse = false
			}

			eng := local.NewLocalEngine(logrus.StandardLogger())
			moves, _ := cmd.Flags().GetStringSlice("moves")
			if len(moves) > 0 {
				if err := eng.Replay(moves); err != nil {
					return fmt.Errorf("replay %s: %w", strings.Join(moves, ","), err)
				}
			}

			return ui.NewApp(cfg, eng, logrus.StandardLogger()).Run()
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information in the debug log")
	root.PersistentFlags().StringP("config", "c", "", "Configuration file (default: XDG config dir)")
	root.PersistentFlags().String("log-file", "", "Debug log file (default: XDG cache dir)")

	root.Flags().Bool("focus", false, "Start in focus mode (board only)")
	root.Flags().Bool("no-mouse", false, "Disable mouse input")
	root.Flags().StringSlice("moves", nil, "Moves to play before the game starts, e.g. B2,A3")

	root.Version = Version
	root.SetVersionTemplate("termtoe {{.Version}}\n")

	root.AddCommand(Config())

	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.InitConfig(path)
	if err != nil {
		return nil, err
	}
	if !cmd.Flag("trace").Changed {
		logrus.SetLevel(cfg.LogLevel())
	}
	return cfg, nil
}
