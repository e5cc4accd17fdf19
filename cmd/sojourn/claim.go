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

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "File and track claims",
}

var claimFileCmd = &cobra.Command{
	Use:   "file",
	Short: "File a claim against a purchased policy",
	Run: func(cmd *cobra.Command, args []string) {
		policyID, _ := cmd.Flags().GetString("policy")
		reason, _ := cmd.Flags().GetString("reason")

		app, err := newApp(cmd, terminalHooks())
		if err != nil {
			fmt.Printf("Error initializing sojourn: %v\n", err)
			os.Exit(1)
		}

		res, err := app.Dispatch(context.Background(), bridge.ActionFileClaim, map[string]any{
			"policy_id": policyID,
			"reason":    reason,
		})
		if err != nil {
			fmt.Printf("File claim failed: %v\n", err)
			os.Exit(1)
		}

		printMarkdown(tui.ClaimMarkdown(res.(domain.Claim)))
	},
}

var claimStatusCmd = &cobra.Command{
	Use:   "status [claim-id]",
	Short: "Check the status of a filed claim",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp(cmd, domain.UIHooks{})
		if err != nil {
			fmt.Printf("Error initializing sojourn: %v\n", err)
			os.Exit(1)
		}

		res, err := app.Dispatch(context.Background(), bridge.ActionCheckClaimStatus, map[string]any{
			"claim_id": args[0],
		})
		if err != nil {
			fmt.Printf("Check claim status failed: %v\n", err)
			os.Exit(1)
		}

		status := res.(bridge.ClaimStatusResult)
		fmt.Printf("Claim %s: %s\n", status.ClaimID, status.Status)
	},
}

func init() {
	rootCmd.AddCommand(claimCmd)
	claimCmd.AddCommand(claimFileCmd)
	claimCmd.AddCommand(claimStatusCmd)

	claimFileCmd.Flags().StringP("policy", "p", "", "Policy id the claim is against")
	claimFileCmd.Flags().StringP("reason", "r", "", "Reason for the claim")
	claimFileCmd.MarkFlagRequired("policy")
	claimFileCmd.MarkFlagRequired("reason")
}
