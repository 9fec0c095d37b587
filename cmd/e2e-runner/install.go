package main

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install-browsers",
	Short: "Install the playwright driver and browsers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := playwright.Install(); err != nil {
			return fmt.Errorf("browser installation failed: %w", err)
		}
		fmt.Println("playwright driver and browsers installed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
