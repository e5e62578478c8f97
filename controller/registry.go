// Package controller keeps track of live palette streams. Every registered
// palette is a single shared, monotonically advancing color stream; the
// registry serializes draws so concurrent clients observe one sequence.
package controller

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Rafaeltheraven/colourado-iterator/config"
	"github.com/Rafaeltheraven/colourado-iterator/palette"
	uuid "github.com/satori/go.uuid"
)

var (
	// ErrNotFound is thrown when a palette is not found.
	ErrNotFound = errors.New("controller: palette not found")
	// ErrRegistryFull is returned when the palette limit has been reached.
	ErrRegistryFull = errors.New("controller: palette registry is full")
)

// Info describes a registered palette stream.
type Info struct {
	ID       string       `json:"id"`
	Type     palette.Type `json:"type"`
	Adjacent bool         `json:"adjacent"`
	Seed     int64        `json:"seed"`
	Drawn    int64        `json:"drawn"`
	Created  time.Time    `json:"created"`
}

// Registry is the interface to the palette store.
type Registry interface {
	Create(t palette.Type, adjacent bool, seed int64) (*Info, error)
	Get(id string) (*Info, error)
	List() []*Info
	Draw(id string, n int) ([]palette.Color, error)
	Delete(id string) error
}

// InMemRegistry returns an in memory implementation of the Registry
// interface.
func InMemRegistry() Registry {
	return &inmem{sessions: map[string]*session{}}
}

type session struct {
	info Info
	pal  *palette.Palette
}

type inmem struct {
	sessions map[string]*session
	lock     sync.Mutex
}

func (in *inmem) Create(t palette.Type, adjacent bool, seed int64) (*Info, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if len(in.sessions) >= config.MaxPalettes {
		return nil, ErrRegistryFull
	}

	s := &session{
		info: Info{
			ID:       uuid.NewV4().String(),
			Type:     t,
			Adjacent: adjacent,
			Seed:     seed,
			Created:  time.Now(),
		},
		pal: palette.NewPalette(t, adjacent, rand.New(rand.NewSource(seed))),
	}
	in.sessions[s.info.ID] = s

	info := s.info
	return &info, nil
}

func (in *inmem) Get(id string) (*Info, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	s, ok := in.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	info := s.info
	return &info, nil
}

func (in *inmem) List() []*Info {
	in.lock.Lock()
	defer in.lock.Unlock()

	infos := make([]*Info, 0, len(in.sessions))
	for _, s := range in.sessions {
		info := s.info
		infos = append(infos, &info)
	}
	return infos
}

func (in *inmem) Draw(id string, n int) ([]palette.Color, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	s, ok := in.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	if n < 1 {
		n = 1
	}
	if n > config.MaxDrawCount {
		n = config.MaxDrawCount
	}

	colors := s.pal.Take(n)
	s.info.Drawn += int64(len(colors))
	return colors, nil
}

func (in *inmem) Delete(id string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(in.sessions, id)
	return nil
}
