package main

import (
	"context"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	tripLimit  int
	tripOffset int
	tripStatus string
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List trips",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(tripLimit))
		query.Set("offset", strconv.Itoa(tripOffset))
		if tripStatus != "" {
			query.Set("status", tripStatus)
		}

		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/trips?"+query.Encode())
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

var tripCmd = &cobra.Command{
	Use:   "trip [id]",
	Short: "Show a trip with its assigned vehicle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/trips/"+args[0])
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

func init() {
	rootCmd.AddCommand(tripsCmd)
	rootCmd.AddCommand(tripCmd)
	tripsCmd.Flags().IntVar(&tripLimit, "limit", 20, "Page size")
	tripsCmd.Flags().IntVar(&tripOffset, "offset", 0, "Page offset")
	tripsCmd.Flags().StringVar(&tripStatus, "status", "", "Filter by status (scheduled, active, completed)")
}
