package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sw965/monty"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of monty",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("monty version %s\n", strings.TrimSpace(monty.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
