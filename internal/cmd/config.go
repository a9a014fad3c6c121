package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				path, _ := cmd.Flags().GetString("config")
				if path, err = cfg.Save(path); err != nil {
					return err
				}
				logrus.WithField("path", path).Info("configuration saved")
				fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", path)
			}

			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().Bool("save", false, "Write the configuration to the config file")
	return cmd
}
