package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/webcheckd/urlcheck/internal/probe"
)

var (
	flagTimeout int
	flagBrowser bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "urlcheck <url>",
	Short: "Check whether a URL is reachable and explain the outcome",
	Args:  cobra.ExactArgs(1),
	RunE:  run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVarP(&flagTimeout, "timeout", "t", 5, "Request timeout in seconds")
	rootCmd.Flags().BoolVarP(&flagBrowser, "browser-agent", "b", false, "Send a desktop-browser User-Agent to avoid bot detection")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
}

func run(cmd *cobra.Command, args []string) error {
	timeout := time.Duration(flagTimeout) * time.Second
	out := probe.Check(cmd.Context(), args[0], timeout, flagBrowser)

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		mark := "✔"
		if !out.Accessible {
			mark = "✖"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s — %s\n", mark, args[0], out.Explanation)
	}

	if !out.Accessible {
		os.Exit(1)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
