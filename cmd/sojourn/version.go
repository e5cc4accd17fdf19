package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voyantic/sojourn"
	"github.com/voyantic/sojourn/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sojourn",
	Run: func(cmd *cobra.Command, args []string) {
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(strings.TrimSpace(sojourn.Version))
			return
		}
		fmt.Printf("sojourn version %s\n", strings.TrimSpace(sojourn.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("banner", false, "Print the full banner")
}
