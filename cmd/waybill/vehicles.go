package main

import (
	"context"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	vehicleLimit  int
	vehicleOffset int
	vehicleStatus string
)

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "List fleet vehicles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(vehicleLimit))
		query.Set("offset", strconv.Itoa(vehicleOffset))
		if vehicleStatus != "" {
			query.Set("status", vehicleStatus)
		}

		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/vehicles?"+query.Encode())
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

var vehicleCmd = &cobra.Command{
	Use:   "vehicle [id]",
	Short: "Show a vehicle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/vehicles/"+args[0])
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

func init() {
	rootCmd.AddCommand(vehiclesCmd)
	rootCmd.AddCommand(vehicleCmd)
	vehiclesCmd.Flags().IntVar(&vehicleLimit, "limit", 20, "Page size")
	vehiclesCmd.Flags().IntVar(&vehicleOffset, "offset", 0, "Page offset")
	vehiclesCmd.Flags().StringVar(&vehicleStatus, "status", "", "Filter by status (available, assigned, maintenance)")
}
