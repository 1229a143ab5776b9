package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sw965/monty/crosstab"
	"github.com/sw965/monty/rng"
	"github.com/sw965/monty/trial"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game with both strategies",
	Long: `Plays one game: hides the prize, picks a door, opens a decoy, and
shows how the stay and the switch strategy would each have ended.`,
	Run: func(cmd *cobra.Command, args []string) {
		seed, err := resolveSeed(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		rngs, err := rng.NewSeededPCGs(seed, 1)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		engine := trial.NewEngine()
		t, err := engine.Play(rngs[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("seed: %d\n", seed)
		fmt.Printf("picked door %d, host opened door %d\n\n", t.InitialPick, t.OpenedDoor)
		if err := crosstab.FprintTrial(os.Stdout, t); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
