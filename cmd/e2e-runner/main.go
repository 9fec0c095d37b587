package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is the harness version (set during build).
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "e2e-runner",
	Short: "CallMonitor E2E harness utilities",
	Long:  `Companion tooling for the CallMonitor browser test suites: environment checks, browser installation, and simulated telephony webhooks.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
