package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

var walletRefillCmd = &cobra.Command{
	Use:   "wallet-refill [corporate-id] [amount]",
	Short: "Top up a corporate wallet",
	Long: `Top up a corporate customer's prepaid wallet. On success the cached
corporate entry is invalidated and the refreshed corporate page is
printed, so the balance shown is the one the backend just committed.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fatal("Error parsing amount", err)
		}

		console := buildConsole()
		navigation, err := console.WalletRefill(context.Background(), args[0], amount)
		if err != nil {
			fatal("Error refilling wallet", err)
		}
		renderNavigation(navigation)
	},
}

func init() {
	rootCmd.AddCommand(walletRefillCmd)
}
