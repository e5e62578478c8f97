package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Rafaeltheraven/colourado-iterator/cmd/colourado/commands/server"
	"github.com/Rafaeltheraven/colourado-iterator/palette"
	"github.com/Rafaeltheraven/colourado-iterator/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "colourado",
	Short:   "colourado generates palettes of visually distinct colors",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		generateCmd.Run(c, args)
	},
}

// Flags shared by the generator-backed commands.
var (
	apiAddr     string
	paletteType = "random"
	adjacent    bool
	count       = 8
	seed        int64
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "api-addr", "http://localhost:8080", "address of the palette api server")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(server.RootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addPaletteFlags(c *cobra.Command) {
	c.Flags().StringVarP(&paletteType, "type", "t", paletteType, "palette type: random, pastel or dark")
	c.Flags().BoolVarP(&adjacent, "adjacent", "a", false, "generate hues close to each other instead of spread apart")
	c.Flags().IntVarP(&count, "count", "n", count, "number of colors to generate")
	c.Flags().Int64VarP(&seed, "seed", "s", 0, "randomness seed, 0 picks one from the clock")
}

func newPalette() (*palette.Palette, error) {
	typ, err := palette.ParseType(paletteType)
	if err != nil {
		return nil, err
	}
	return palette.NewPalette(typ, adjacent, rand.New(rand.NewSource(effectiveSeed()))), nil
}

func effectiveSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
