package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show launcher version",
		Run: func(cmd *cobra.Command, args []string) {
			if flagQuiet {
				fmt.Println(Version)
				return
			}
			p := getPrinter()
			p.KeyValueLine("Version", Version, "green")
			p.KeyValueLine("Commit", Commit, "dim")
			p.KeyValueLine("Built", BuildDate, "dim")
		},
	})
}
