package main

import (
	"fmt"
	"os"

	"github.com/nxadm/tail"
	"github.com/spf13/cobra"

	"github.com/wmtogether/workspace-launcher/internal/config"
)

func init() {
	var follow bool

	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Print or follow the launcher log",
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, err := resolveAppDir()
			if err != nil {
				return err
			}
			cfg, err := config.Load(appDir)
			if err != nil {
				cfg = config.Defaults()
			}

			path := cfg.ResolveLogFile(appDir)
			if _, err := os.Stat(path); err != nil {
				getPrinter().Warn("No launcher log yet (" + path + ")")
				return nil
			}

			t, err := tail.TailFile(path, tail.Config{
				Follow:    follow,
				ReOpen:    follow,
				MustExist: true,
				Logger:    tail.DiscardingLogger,
			})
			if err != nil {
				return fmt.Errorf("tail %s: %w", path, err)
			}
			for line := range t.Lines {
				if line.Err != nil {
					return line.Err
				}
				fmt.Println(line.Text)
			}
			return nil
		},
	}
	logsCmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep the log open and stream new lines")
	rootCmd.AddCommand(logsCmd)
}
