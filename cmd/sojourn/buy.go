package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voyantic/sojourn/internal/presentation/tui"
	"github.com/voyantic/sojourn/pkg/bridge"
	"github.com/voyantic/sojourn/pkg/domain"
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Purchase a policy from the current quote",
	Run: func(cmd *cobra.Command, args []string) {
		quoteID, _ := cmd.Flags().GetString("quote")
		planID, _ := cmd.Flags().GetString("plan")

		app, err := newApp(cmd, terminalHooks())
		if err != nil {
			fmt.Printf("Error initializing sojourn: %v\n", err)
			os.Exit(1)
		}
		ctx := context.Background()

		// Default to the current quote when none is named.
		if quoteID == "" {
			current, err := app.CurrentQuote(ctx)
			if err != nil {
				fmt.Println("No current quote. Run 'sojourn quote' first.")
				os.Exit(1)
			}
			quoteID = current.ID
		}

		res, err := app.Dispatch(ctx, bridge.ActionPurchasePolicy, map[string]any{
			"quote_id": quoteID,
			"plan_id":  planID,
		})
		if err != nil {
			fmt.Printf("Purchase failed: %v\n", err)
			os.Exit(1)
		}

		printMarkdown(tui.PolicyMarkdown(res.(domain.Policy)))
	},
}

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List purchased policies",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp(cmd, domain.UIHooks{})
		if err != nil {
			fmt.Printf("Error initializing sojourn: %v\n", err)
			os.Exit(1)
		}

		policies, err := app.Policies(context.Background())
		if err != nil {
			fmt.Printf("List policies failed: %v\n", err)
			os.Exit(1)
		}
		printMarkdown(tui.PoliciesMarkdown(policies))
	},
}

func init() {
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(policiesCmd)

	buyCmd.Flags().StringP("plan", "p", "", "Plan id to purchase (basic, pro, nomad)")
	buyCmd.Flags().StringP("quote", "q", "", "Quote id (defaults to the current quote)")
	buyCmd.MarkFlagRequired("plan")
}
