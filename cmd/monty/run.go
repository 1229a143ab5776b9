package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sw965/monty/crosstab"
	"github.com/sw965/monty/rng"
	"github.com/sw965/monty/trial"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch of trials and print the strategy × outcome table",
	Long: `Runs many independent trials, resolves both strategies in every trial,
and prints the row-normalized strategy × outcome table.`,
	Run: func(cmd *cobra.Command, args []string) {
		trialN, _ := cmd.Flags().GetInt("trials")
		workerN, _ := cmd.Flags().GetInt("workers")
		withCI, _ := cmd.Flags().GetBool("ci")

		seed, err := resolveSeed(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		rngs, err := rng.NewSeededPCGs(seed, workerN)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		engine := trial.NewEngine()
		trials, err := engine.Playouts(trialN, rngs)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		summary, err := crosstab.Summarize(crosstab.Observations(trials))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("seed: %d, trials: %d\n\n", seed, trialN)
		if err := summary.Fprint(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if withCI {
			fmt.Println()
			if err := summary.FprintCI(os.Stdout); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("trials", "n", 100, "Number of trials to run")
	runCmd.Flags().Int("workers", 1, "Number of parallel workers, each with its own rng")
	runCmd.Flags().Bool("ci", false, "Also print Wilson confidence intervals for the win rates")
}
