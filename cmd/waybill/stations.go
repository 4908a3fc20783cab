package main

import (
	"context"

	"github.com/spf13/cobra"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List network stations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/stations")
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Show the fleet overview (vehicles and stations)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/fleet")
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

func init() {
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(fleetCmd)
}
