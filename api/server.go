// Package api exposes palette streams over HTTP. Palettes are created,
// drawn from and deleted through a JSON API; an open-ended websocket
// endpoint streams colors from a palette at a paced rate.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Rafaeltheraven/colourado-iterator/config"
	"github.com/Rafaeltheraven/colourado-iterator/controller"
	"github.com/Rafaeltheraven/colourado-iterator/palette"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Server serves the palette API.
type Server struct {
	hs       *http.Server
	registry controller.Registry
	upgrader websocket.Upgrader
}

// New returns a server ready to listen on the given address, backed by the
// given palette registry.
func New(listen string, registry controller.Registry) *Server {
	s := &Server{
		registry: registry,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	router := httprouter.New()
	router.POST("/palettes", s.createPalette)
	router.GET("/palettes", s.listPalettes)
	router.GET("/palettes/:id", s.getPalette)
	router.DELETE("/palettes/:id", s.deletePalette)
	router.POST("/palettes/:id/colors", s.drawColors)
	router.GET("/palettes/:id/stream", s.streamColors)
	router.GET("/convert/rgb", s.convertToRGB)
	router.GET("/convert/hsv", s.convertToHSV)

	s.hs = &http.Server{
		Addr:    listen,
		Handler: cors.AllowAll().Handler(router),
	}
	return s
}

// WaitForExit starts the server and blocks until it stops listening.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("colourado api listening")
	return s.hs.ListenAndServe()
}

type createRequest struct {
	Type     string `json:"type"`
	Adjacent bool   `json:"adjacent"`
	Seed     *int64 `json:"seed"`
}

// colorResponse carries one generated color in both representations.
type colorResponse struct {
	Hex        string  `json:"hex"`
	R          float64 `json:"r"`
	G          float64 `json:"g"`
	B          float64 `json:"b"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

func toColorResponse(c palette.Color) colorResponse {
	hue, saturation, value := palette.RGBToHSV(c)
	return colorResponse{
		Hex:        c.Hex(),
		R:          c.R,
		G:          c.G,
		B:          c.B,
		Hue:        hue,
		Saturation: saturation,
		Value:      value,
	}
}

func (s *Server) createPalette(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req := &createRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	typ, err := palette.ParseType(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	info, err := s.registry.Create(typ, req.Adjacent, seed)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	log.WithFields(log.Fields{
		"id":       info.ID,
		"type":     info.Type,
		"adjacent": info.Adjacent,
	}).Info("palette created")
	writeJSON(w, http.StatusCreated, info)
}

func (s *Server) listPalettes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.registry.List())
}

func (s *Server) getPalette(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	info, err := s.registry.Get(ps.ByName("id"))
	if err != nil {
		writeRegistryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) deletePalette(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := s.registry.Delete(ps.ByName("id")); err != nil {
		writeRegistryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) drawColors(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = parsed
	}

	colors, err := s.registry.Draw(ps.ByName("id"), count)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	resp := make([]colorResponse, 0, len(colors))
	for _, c := range colors {
		resp = append(resp, toColorResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// streamColors upgrades to a websocket and pushes one color per message. The
// palette stream is infinite, so emission is paced by a rate limiter instead
// of bounded by a count; the stream ends when the client goes away.
func (s *Server) streamColors(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, err := s.registry.Get(id); err != nil {
		writeRegistryError(w, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	limiter := rate.NewLimiter(config.StreamRate, config.StreamBurst)
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("unable to close websocket stream")
		}
	}()

	for {
		if waitErr := limiter.Wait(ctx); waitErr != nil {
			return
		}
		colors, drawErr := s.registry.Draw(id, 1)
		if drawErr != nil {
			log.WithError(errors.Wrap(drawErr, "stream draw failed")).
				WithField("id", id).Warn("closing color stream")
			return
		}
		if writeErr := conn.WriteJSON(toColorResponse(colors[0])); writeErr != nil {
			return
		}
	}
}

func (s *Server) convertToRGB(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hue, err := queryFloat(r, "h")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saturation, err := queryFloat(r, "s")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	value, err := queryFloat(r, "v")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toColorResponse(palette.HSVToRGB(hue, saturation, value)))
}

func (s *Server) convertToHSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	red, err := queryFloat(r, "r")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	green, err := queryFloat(r, "g")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	blue, err := queryFloat(r, "b")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toColorResponse(palette.Color{R: red, G: green, B: blue}))
}

func queryFloat(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "query param %q must be a float", name)
	}
	return v, nil
}

func writeRegistryError(w http.ResponseWriter, err error) {
	switch errors.Cause(err) {
	case controller.ErrNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case controller.ErrRegistryFull:
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("unable to write response body")
	}
}
