package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voyantic/sojourn/pkg/bridge"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Get a travel insurance quote",
	Long:  `Prices every plan in the catalog for a trip and installs the result as the current quote.`,
	Run: func(cmd *cobra.Command, args []string) {
		destination, _ := cmd.Flags().GetString("destination")
		days, _ := cmd.Flags().GetFloat64("days")
		age, _ := cmd.Flags().GetFloat64("age")
		activities, _ := cmd.Flags().GetStringSlice("activities")

		app, err := newApp(cmd, terminalHooks())
		if err != nil {
			fmt.Printf("Error initializing sojourn: %v\n", err)
			os.Exit(1)
		}

		_, err = app.Dispatch(context.Background(), bridge.ActionGetQuote, map[string]any{
			"destination": destination,
			"days":        days,
			"age":         age,
			"activities":  activities,
		})
		if err != nil {
			fmt.Printf("Quote failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringP("destination", "d", "", "Trip destination region (e.g. europe, americas, worldwide)")
	quoteCmd.Flags().Float64P("days", "n", 7, "Trip length in days")
	quoteCmd.Flags().Float64P("age", "a", 0, "Traveler age in years")
	quoteCmd.Flags().StringSlice("activities", nil, "Planned activities (e.g. Skiing, Scuba Diving)")
	quoteCmd.MarkFlagRequired("destination")
	quoteCmd.MarkFlagRequired("age")
}
