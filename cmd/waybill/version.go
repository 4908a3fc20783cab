package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/waybill"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of waybill",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("waybill version %s\n", strings.TrimSpace(waybill.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
