package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/waybill"
	"github.com/aretw0/waybill/internal/config"
)

var (
	verbose bool
	apiURL  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "waybill",
	Short: "A vendor-operations console for the logistics platform",
	Long: `Waybill navigates the vendor console's screens from the terminal.
Every screen reads through a query cache, so repeated lookups of the
same entity hit the network once.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Vendor API base URL (overrides waybill.yaml)")
}

// buildConsole resolves configuration and assembles the data layer the
// commands navigate through.
func buildConsole() *waybill.Console {
	wd, err := os.Getwd()
	if err != nil {
		fatal("Error getting working directory", err)
	}

	cfg, source, err := config.Load(wd)
	if err != nil {
		fatal("Error loading configuration", err)
	}
	if source != "" {
		slog.Debug("configuration loaded", "file", source)
	}

	baseURL := cfg.APIBaseURL
	if apiURL != "" {
		baseURL = apiURL
	}

	opts := []waybill.Option{
		waybill.WithLogger(slog.Default()),
		waybill.WithSessionFile(cfg.SessionFile),
		waybill.WithFeedback(func(message string, success bool) {
			if success {
				fmt.Println(message)
				return
			}
			fmt.Fprintln(os.Stderr, message)
		}),
	}
	if cfg.MetricsEnabled {
		opts = append(opts, waybill.WithMetrics(prometheus.DefaultRegisterer))
	}

	console, err := waybill.New(baseURL, opts...)
	if err != nil {
		fatal("Error building console", err)
	}
	return console
}

// renderNavigation prints the leaf route's data as indented JSON, or
// the failure message plus boundary for a navigation that did not
// complete.
func renderNavigation(n *waybill.Navigation) {
	if !n.Result.OK() {
		if n.Boundary != "" {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Boundary, n.Result.Message)
		} else {
			fmt.Fprintln(os.Stderr, n.Result.Message)
		}
		os.Exit(1)
	}

	leaf := n.Matched[len(n.Matched)-1]
	data, _ := n.Data(leaf)
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fatal("Error encoding JSON", err)
	}
}
