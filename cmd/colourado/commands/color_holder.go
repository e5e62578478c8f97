package commands

import (
	"sync"

	"github.com/Rafaeltheraven/colourado-iterator/palette"
)

// colorHolder accumulates colors arriving over the stream so the websocket
// reader and the render loop can share them safely.
type colorHolder struct {
	lock   sync.Mutex
	colors []palette.Color
}

func (h *colorHolder) append(c palette.Color) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.colors = append(h.colors, c)
}

func (h *colorHolder) count() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.colors)
}

// last returns up to n of the most recent colors, newest last.
func (h *colorHolder) last(n int) []palette.Color {
	h.lock.Lock()
	defer h.lock.Unlock()
	if n > len(h.colors) {
		n = len(h.colors)
	}
	out := make([]palette.Color, n)
	copy(out, h.colors[len(h.colors)-n:])
	return out
}
