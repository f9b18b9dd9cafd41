package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeascii/internal/cube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble and the resulting cube",
	RunE:  runScramble,
}

var (
	scrambleLength int
	scrambleSeed   uint64
)

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (default: random)")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	length := cfg.ScrambleLength
	if cmd.Flags().Changed("length") {
		length = scrambleLength
	}
	if length < 0 {
		return fmt.Errorf("length must not be negative, got %d", length)
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = rand.Uint64()
	}

	c := cube.New(cube.NewTable())
	moves := c.Scramble(length, rand.New(rand.NewPCG(seed, seed)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed:     %d\n", seed)
	fmt.Fprintf(out, "Scramble: %s\n\n", cube.FormatSequence(moves))
	fmt.Fprint(out, c.String())
	return nil
}
