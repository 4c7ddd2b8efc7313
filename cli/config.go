package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/config"
	"github.com/katalvlaran/wayfind/logging"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the wayfind configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		// The file being created may not exist or parse yet.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.cfgFile
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			logging.Infof("wrote default config to %s", path)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)

			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "words: %s\nworkers: %d\nlog.level: %s\n",
				a.cfg.Words, a.cfg.Workers, a.cfg.Log.Level)
			return err
		},
	})

	return cmd
}
