package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	orderSummary bool
)

var orderCmd = &cobra.Command{
	Use:   "order [id]",
	Short: "Show an order with its customer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := "/orders/" + args[0]
		if orderSummary {
			target += "/summary"
		}
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), target)
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.Flags().BoolVar(&orderSummary, "summary", false, "Print the condensed summary panel instead of the full detail")
}
