package commands

import (
	"fmt"
	"math"

	"github.com/Rafaeltheraven/colourado-iterator/palette"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/spf13/cobra"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault

	swatchWidth  = 10
	swatchHeight = 4
	swatchGap    = 2
)

func init() {
	addPaletteFlags(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "renders palette swatches in the terminal",
	Long:  "preview renders the requested number of colors as a grid of swatches.\nPress space to draw the next colors from the palette, q or esc to quit.",
	Run: func(*cobra.Command, []string) {
		p, err := newPalette()
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := previewPalette(p); err != nil {
			fmt.Println("unable to render preview", err)
		}
	},
}

func previewPalette(p *palette.Palette) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output216)

	if err := renderSwatches(p.Take(count)); err != nil {
		return err
	}

	for {
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}
		switch {
		case ev.Key == termbox.KeyEsc || ev.Ch == 'q':
			return nil
		case ev.Key == termbox.KeySpace:
			if err := renderSwatches(p.Take(count)); err != nil {
				return err
			}
		}
	}
}

func renderSwatches(colors []palette.Color) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	width, _ := termbox.Size()
	perRow := width / (swatchWidth + swatchGap)
	if perRow < 1 {
		perRow = 1
	}

	tbprint(1, 0, defaultColor, bgColor, "colourado - space for more colors, q to quit")
	for i, c := range colors {
		left := 1 + (i%perRow)*(swatchWidth+swatchGap)
		top := 2 + (i/perRow)*(swatchHeight+swatchGap)
		attr := cellAttr(c)
		fill(left, top, swatchWidth, swatchHeight, termbox.Cell{Ch: ' ', Fg: attr, Bg: attr})
		tbprint(left, top+swatchHeight, defaultColor, bgColor, c.Hex())
	}

	return termbox.Flush()
}

// cellAttr maps a color onto the 6x6x6 cube termbox exposes in Output216
// mode, where attributes 1-216 span the cube in r-major order.
func cellAttr(c palette.Color) termbox.Attribute {
	r := int(math.Round(c.R * 5.0))
	g := int(math.Round(c.G * 5.0))
	b := int(math.Round(c.B * 5.0))
	return termbox.Attribute(1 + 36*r + 6*g + b)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
