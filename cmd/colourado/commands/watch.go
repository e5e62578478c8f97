package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Rafaeltheraven/colourado-iterator/controller"
	"github.com/Rafaeltheraven/colourado-iterator/palette"
	"github.com/gorilla/websocket"
	termbox "github.com/nsf/termbox-go"
	"github.com/spf13/cobra"
)

var paletteID string

func init() {
	addPaletteFlags(watchCmd)
	watchCmd.Flags().StringVarP(&paletteID, "palette-id", "p", "", "id of the palette to stream; creates a new one when empty")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "streams colors from a running colourado server and renders them live",
	Run: func(*cobra.Command, []string) {
		watchStream()
	},
}

type streamedColor struct {
	Hex string  `json:"hex"`
	R   float64 `json:"r"`
	G   float64 `json:"g"`
	B   float64 `json:"b"`
}

func createRemotePalette() (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	body, err := json.Marshal(map[string]interface{}{
		"type":     paletteType,
		"adjacent": adjacent,
		"seed":     effectiveSeed(),
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(fmt.Sprintf("%s/palettes", apiAddr), "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			fmt.Println("error while closing body", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create palette failed with status %d", resp.StatusCode)
	}

	info := &controller.Info{}
	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return "", err
	}
	return info.ID, nil
}

func openStream(id string) (*websocket.Conn, *colorHolder, error) {
	u := url.URL{
		Scheme: "ws",
		Host:   strings.Replace(apiAddr, "http://", "", 1),
		Path:   fmt.Sprintf("/palettes/%s/stream", id),
	}
	log.Printf("connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, nil, err
	}

	colors := &colorHolder{}
	go func() {
		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				if !strings.Contains(err.Error(), "close 1000 (normal)") {
					log.Println("read:", err)
				}
				return
			}

			switch mt {
			case websocket.TextMessage:
				sc := &streamedColor{}
				if err := json.Unmarshal(message, sc); err != nil {
					log.Println("unmarshal color:", err)
					return
				}
				colors.append(palette.Color{R: sc.R, G: sc.G, B: sc.B})
			case websocket.CloseMessage:
				return
			default:
				log.Println("unhandled message type:", mt)
			}
		}
	}()

	return c, colors, nil
}

func watchStream() {
	id := paletteID
	if id == "" {
		created, err := createRemotePalette()
		if err != nil {
			fmt.Println("unable to create palette", err)
			return
		}
		id = created
	}

	conn, colors, err := openStream(id)
	if err != nil {
		fmt.Println("unable to open stream", err)
		return
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.Println("close:", closeErr)
		}
	}()

	if err = termbox.Init(); err != nil {
		panic(err)
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output216)

	eventQueue := setupEventQueue()
	cycle := time.NewTicker(200 * time.Millisecond)
	defer cycle.Stop()

	for {
		select {
		case ev := <-eventQueue:
			if ev.Type == termbox.EventKey && (ev.Key == termbox.KeyEsc || ev.Ch == 'q') {
				return
			}
		case <-cycle.C:
			if err = renderStream(id, colors); err != nil {
				panic(err)
			}
		}
	}
}

func renderStream(id string, colors *colorHolder) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	_, height := termbox.Size()
	rows := height - 3
	if rows < 1 {
		rows = 1
	}

	tbprint(1, 0, defaultColor, bgColor, fmt.Sprintf("streaming palette %s - %d colors received, q to quit", id, colors.count()))
	for i, c := range colors.last(rows) {
		attr := cellAttr(c)
		fill(1, 2+i, swatchWidth, 1, termbox.Cell{Ch: ' ', Fg: attr, Bg: attr})
		tbprint(swatchWidth+3, 2+i, defaultColor, bgColor, c.Hex())
	}

	return termbox.Flush()
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func() {
		for {
			eventQueue <- termbox.PollEvent()
		}
	}()
	return eventQueue
}
