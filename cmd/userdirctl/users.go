package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type UserRow struct {
	ID        int32   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all users",
	Run: func(cmd *cobra.Command, args []string) {
		client := NewClient(apiURL)
		var users []UserRow
		if err := client.Get("/users", &users); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResult(users)
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
