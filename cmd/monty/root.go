package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sw965/monty/rng"
)

var rootCmd = &cobra.Command{
	Use:   "monty",
	Short: "Monty is a Monty Hall problem simulator",
	Long: `Monty plays the three-door Monty Hall game and estimates how often
the stay and the switch strategy win over repeated trials.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for the random number generators (drawn from the OS if omitted)")
}

// resolveSeed returns the --seed flag if it was set, otherwise a fresh
// seed from the OS. The seed is echoed by the commands so a run can be
// reproduced.
func resolveSeed(cmd *cobra.Command) (uint64, error) {
	if cmd.Flags().Changed("seed") {
		return cmd.Flags().GetUint64("seed")
	}
	return rng.NewSeed()
}
