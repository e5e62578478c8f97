package controller

import (
	"github.com/Rafaeltheraven/colourado-iterator/palette"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentRegistry wraps all registry methods to instrument the underlying
// calls.
func InstrumentRegistry(r Registry) Registry { return &metrics{r} }

var (
	registryCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "colourado",
			Subsystem: "registry",
			Name:      "calls",
			Help:      "Calls processed by the palette registry.",
		},
		[]string{"method"},
	)
	colorsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "colourado",
			Subsystem: "registry",
			Name:      "colors_generated_total",
			Help:      "Colors drawn from registered palettes.",
		},
		[]string{"type"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(registryCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(registryCalls, colorsGenerated)
}

type metrics struct{ r Registry }

func (m *metrics) Create(t palette.Type, adjacent bool, seed int64) (*Info, error) {
	defer instrument("Create")()
	return m.r.Create(t, adjacent, seed)
}

func (m *metrics) Get(id string) (*Info, error) {
	defer instrument("Get")()
	return m.r.Get(id)
}

func (m *metrics) List() []*Info {
	defer instrument("List")()
	return m.r.List()
}

func (m *metrics) Draw(id string, n int) ([]palette.Color, error) {
	defer instrument("Draw")()
	colors, err := m.r.Draw(id, n)
	if err == nil {
		if info, infoErr := m.r.Get(id); infoErr == nil {
			colorsGenerated.WithLabelValues(string(info.Type)).Add(float64(len(colors)))
		}
	}
	return colors, err
}

func (m *metrics) Delete(id string) error {
	defer instrument("Delete")()
	return m.r.Delete(id)
}
