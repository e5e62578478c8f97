package commands

import (
	"fmt"
	"math/rand"

	"github.com/Rafaeltheraven/colourado-iterator/palette"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func init() {
	addPaletteFlags(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "dumps the raw HSV triples and RGB colors of generated draws",
	Run: func(*cobra.Command, []string) {
		typ, err := palette.ParseType(paletteType)
		if err != nil {
			fmt.Println(err)
			return
		}

		gen := palette.NewGenerator(typ, adjacent, rand.New(rand.NewSource(effectiveSeed())))
		for i := 0; i < count; i++ {
			hsv := gen.Next()
			spew.Dump(hsv, palette.HSVToRGB(hsv.Hue, hsv.Saturation, hsv.Value))
		}
	},
}
