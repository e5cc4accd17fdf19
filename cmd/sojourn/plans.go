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

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List plans, priced against the current quote when one exists",
	Run: func(cmd *cobra.Command, args []string) {
		visa, _ := cmd.Flags().GetBool("visa-compliant")
		zeroDed, _ := cmd.Flags().GetBool("zero-deductible")

		app, err := newApp(cmd, domain.UIHooks{})
		if err != nil {
			fmt.Printf("Error initializing sojourn: %v\n", err)
			os.Exit(1)
		}

		actionArgs := map[string]any{}
		if visa {
			actionArgs["visa_compliant"] = true
		}
		if zeroDed {
			actionArgs["zero_deductible"] = true
		}

		res, err := app.Dispatch(context.Background(), bridge.ActionListPlans, actionArgs)
		if err != nil {
			fmt.Printf("List plans failed: %v\n", err)
			os.Exit(1)
		}

		plans := res.([]domain.PricedPlan)
		if len(plans) == 0 {
			fmt.Println("No plans match the given filters.")
			return
		}
		printMarkdown(tui.PlansMarkdown(plans))
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)

	plansCmd.Flags().Bool("visa-compliant", false, "Only plans with at least $30000 coverage")
	plansCmd.Flags().Bool("zero-deductible", false, "Only plans with no deductible")
}
