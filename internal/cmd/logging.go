package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"termtoe/config"
)

// setupLogging sends log output to the debug log file. The terminal belongs
// to the UI, so nothing is written to stderr while a game runs. The returned
// file must be handed to closeLogging once the command has run.
func setupLogging(cmd *cobra.Command) (*os.File, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "15:04:05.000000",
	})

	// If --trace flag is provided, set logging level to Trace.
	if cmd.Flag("trace").Changed {
		logrus.SetLevel(logrus.TraceLevel)
	}

	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		var err error
		if path, err = config.LogPath(); err != nil {
			logrus.SetOutput(io.Discard)
			return nil, fmt.Errorf("open log: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log: %w", err)
	}
	logrus.SetOutput(f)
	return f, nil
}

func closeLogging(f *os.File) error {
	if f == nil {
		return nil
	}
	logrus.SetOutput(io.Discard)
	return f.Close()
}
