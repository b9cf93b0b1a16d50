package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the service is up",
	Run: func(cmd *cobra.Command, args []string) {
		client := NewClient(apiURL)
		var msg string
		if err := client.Get("/health", &msg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(msg)
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
