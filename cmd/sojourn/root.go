package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sojourn",
	Short: "Sojourn is a travel insurance quoting and claims engine",
	Long:  `Sojourn prices travel insurance plans, sells policies and adjudicates claims, from the terminal or as a server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (env vars used when empty)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML plan catalog (built-in plans when empty)")
	rootCmd.PersistentFlags().String("redis-url", "", "Redis URL for shared state (in-memory store when empty)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
