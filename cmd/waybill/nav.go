package main

import (
	"context"

	"github.com/spf13/cobra"
)

var navCmd = &cobra.Command{
	Use:   "nav [path]",
	Short: "Navigate an arbitrary console path",
	Long: `Navigate any path the route tree knows, including its query string,
and print the composed result. Example:

  waybill nav "/shipments?coverage=national&sort=ASC"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), args[0])
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}
