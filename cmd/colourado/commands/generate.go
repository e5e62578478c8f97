package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outputFormat = "hex"

func init() {
	addPaletteFlags(generateCmd)
	generateCmd.Flags().StringVarP(&outputFormat, "format", "f", outputFormat, "output format: hex, rgb or json")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generates palette colors and prints them to stdout",
	Run: func(*cobra.Command, []string) {
		p, err := newPalette()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		colors := p.Take(count)
		switch outputFormat {
		case "rgb":
			for _, c := range colors {
				fmt.Printf("%.4f %.4f %.4f\n", c.R, c.G, c.B)
			}
		case "json":
			out := make([]map[string]interface{}, 0, len(colors))
			for _, c := range colors {
				out = append(out, map[string]interface{}{
					"hex": c.Hex(),
					"r":   c.R,
					"g":   c.G,
					"b":   c.B,
				})
			}
			if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
				fmt.Println("unable to encode colors", err)
				os.Exit(1)
			}
		default:
			for _, c := range colors {
				fmt.Println(c.Hex())
			}
		}
	},
}
