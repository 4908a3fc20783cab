package main

import (
	"context"

	"github.com/spf13/cobra"
)

var customerCmd = &cobra.Command{
	Use:   "customer [id]",
	Short: "Show a customer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/customers/"+args[0])
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

var corporateCmd = &cobra.Command{
	Use:   "corporate [id-or-phone]",
	Short: "Show a corporate customer and its wallet balance",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/corporate/"+args[0])
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

func init() {
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(corporateCmd)
}
