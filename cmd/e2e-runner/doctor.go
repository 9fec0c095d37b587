package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/config"
)

var (
	doctorBaseURL string
	doctorAPIURL  string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the E2E environment",
	Long:  `Prints the resolved harness configuration and probes the web app and backend origins for reachability.`,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorBaseURL, "base-url", "", "web app origin (overrides BASE_URL)")
	doctorCmd.Flags().StringVar(&doctorAPIURL, "api-url", "", "backend origin (overrides API_URL)")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	s := loadSettings(doctorBaseURL, doctorAPIURL)
	cfg := config.GetConfig()

	fmt.Printf("e2e-runner %s\n", Version)
	fmt.Printf("BASE_URL:      %s\n", s.BaseURL)
	fmt.Printf("API_URL:       %s\n", s.APIURL)
	fmt.Printf("agent email:   %s\n", cfg.Agent.Email)
	fmt.Printf("manager email: %s\n", cfg.Manager.Email)
	fmt.Printf("headless:      %v\n", cfg.Headless)

	ok := true
	for _, origin := range dedupe(s.BaseURL, s.APIURL) {
		if config.Reachable(origin) {
			fmt.Printf("reachable:     %s\n", origin)
		} else {
			fmt.Printf("UNREACHABLE:   %s\n", origin)
			ok = false
		}
	}
	if !ok {
		return fmt.Errorf("one or more origins unreachable")
	}
	fmt.Println("environment looks ready")
	return nil
}

func dedupe(urls ...string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
