package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

func printResult(v interface{}) {
	if output == "json" {
		json.NewEncoder(os.Stdout).Encode(v)
		return
	}
	printTable(v)
}

func printTable(v interface{}) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	switch data := v.(type) {
	case []UserRow:
		if len(data) == 0 {
			fmt.Println("No users found.")
			return
		}
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tFULL NAME")
		for _, u := range data {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.FullName)
		}
	default:
		json.NewEncoder(os.Stdout).Encode(v)
		return
	}
	w.Flush()
}
