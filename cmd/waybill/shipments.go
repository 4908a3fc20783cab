package main

import (
	"context"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	shipLimit    int
	shipOffset   int
	shipCoverage string
	shipSort     string
)

var shipmentsCmd = &cobra.Command{
	Use:   "shipments",
	Short: "List shipments",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(shipLimit))
		query.Set("offset", strconv.Itoa(shipOffset))
		query.Set("sort", shipSort)
		if shipCoverage != "" {
			query.Set("coverage", shipCoverage)
		}

		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/shipments?"+query.Encode())
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

var shipmentCmd = &cobra.Command{
	Use:   "shipment [id]",
	Short: "Show a shipment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		console := buildConsole()
		navigation, err := console.Navigate(context.Background(), "/shipments/"+args[0])
		if err != nil {
			fatal("Error navigating", err)
		}
		renderNavigation(navigation)
	},
}

func init() {
	rootCmd.AddCommand(shipmentsCmd)
	rootCmd.AddCommand(shipmentCmd)
	shipmentsCmd.Flags().IntVar(&shipLimit, "limit", 20, "Page size")
	shipmentsCmd.Flags().IntVar(&shipOffset, "offset", 0, "Page offset")
	shipmentsCmd.Flags().StringVar(&shipCoverage, "coverage", "", "Filter by coverage (local, national, international)")
	shipmentsCmd.Flags().StringVar(&shipSort, "sort", "DESC", "Sort direction (ASC, DESC)")
}
