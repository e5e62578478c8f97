package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rafaeltheraven/colourado-iterator/controller"
	"github.com/Rafaeltheraven/colourado-iterator/palette"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func createAPIServer() *Server {
	return New(":1234", controller.InMemRegistry())
}

func createTestPalette(t *testing.T, s *Server, body string) *controller.Info {
	req, _ := http.NewRequest("POST", "/palettes", strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	info := &controller.Info{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), info))
	require.NotEmpty(t, info.ID)
	return info
}

func TestCreatePalette(t *testing.T) {
	s := createAPIServer()

	info := createTestPalette(t, s, `{"type": "pastel", "adjacent": true, "seed": 1}`)
	require.Equal(t, palette.TypePastel, info.Type)
	require.True(t, info.Adjacent)
	require.Equal(t, int64(1), info.Seed)
}

func TestCreatePaletteUnknownType(t *testing.T) {
	s := createAPIServer()

	req, _ := http.NewRequest("POST", "/palettes", strings.NewReader(`{"type": "neon"}`))
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreatePaletteBadBody(t *testing.T) {
	s := createAPIServer()

	buf := &bytes.Buffer{}
	buf.WriteString("{")
	req, _ := http.NewRequest("POST", "/palettes", buf)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDrawColors(t *testing.T) {
	s := createAPIServer()
	info := createTestPalette(t, s, `{"type": "random", "seed": 7}`)

	req, _ := http.NewRequest("POST", "/palettes/"+info.ID+"/colors?count=5", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var colors []colorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &colors))
	require.Len(t, colors, 5)
	for _, c := range colors {
		require.True(t, c.R >= 0 && c.R <= 1)
		require.True(t, c.G >= 0 && c.G <= 1)
		require.True(t, c.B >= 0 && c.B <= 1)
		require.True(t, c.Hue >= 0 && c.Hue < 360)
		require.Len(t, c.Hex, 7)
	}
}

func TestDrawColorsBadCount(t *testing.T) {
	s := createAPIServer()
	info := createTestPalette(t, s, `{"type": "random"}`)

	req, _ := http.NewRequest("POST", "/palettes/"+info.ID+"/colors?count=lots", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDrawColorsUnknownPalette(t *testing.T) {
	s := createAPIServer()

	req, _ := http.NewRequest("POST", "/palettes/abc_123/colors", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetAndDeletePalette(t *testing.T) {
	s := createAPIServer()
	info := createTestPalette(t, s, `{"type": "dark"}`)

	req, _ := http.NewRequest("GET", "/palettes/"+info.ID, nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req, _ = http.NewRequest("DELETE", "/palettes/"+info.ID, nil)
	rr = httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	req, _ = http.NewRequest("GET", "/palettes/"+info.ID, nil)
	rr = httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListPalettes(t *testing.T) {
	s := createAPIServer()
	createTestPalette(t, s, `{"type": "dark"}`)
	createTestPalette(t, s, `{"type": "pastel"}`)

	req, _ := http.NewRequest("GET", "/palettes", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var infos []*controller.Info
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &infos))
	require.Len(t, infos, 2)
}

func TestConvertToRGB(t *testing.T) {
	s := createAPIServer()

	req, _ := http.NewRequest("GET", "/convert/rgb?h=0&s=1&v=1", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	c := &colorResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), c))
	require.Equal(t, "#FF0000", c.Hex)
	require.Equal(t, 1.0, c.R)
	require.Equal(t, 0.0, c.G)
	require.Equal(t, 0.0, c.B)
}

func TestConvertToHSV(t *testing.T) {
	s := createAPIServer()

	req, _ := http.NewRequest("GET", "/convert/hsv?r=0&g=1&b=0", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	c := &colorResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), c))
	require.Equal(t, 120.0, c.Hue)
	require.Equal(t, 1.0, c.Saturation)
	require.Equal(t, 1.0, c.Value)
}

func TestConvertBadParams(t *testing.T) {
	s := createAPIServer()

	req, _ := http.NewRequest("GET", "/convert/rgb?h=red&s=1&v=1", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	req, _ = http.NewRequest("GET", "/convert/hsv?r=0&g=1", nil)
	rr = httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreatePaletteRegistryFull(t *testing.T) {
	s := New(":1234", &fullRegistry{})

	req, _ := http.NewRequest("POST", "/palettes", strings.NewReader(`{"type": "random"}`))
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestStreamColors(t *testing.T) {
	s := createAPIServer()
	info := createTestPalette(t, s, `{"type": "random", "seed": 11}`)

	ts := httptest.NewServer(s.hs.Handler)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/palettes/" + info.ID + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	for i := 0; i < 2; i++ {
		c := &colorResponse{}
		require.NoError(t, conn.ReadJSON(c))
		require.True(t, c.R >= 0 && c.R <= 1)
		require.Len(t, c.Hex, 7)
	}
}

func TestStreamUnknownPalette(t *testing.T) {
	s := createAPIServer()

	req, _ := http.NewRequest("GET", "/palettes/abc_123/stream", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

// fullRegistry always reports the registry limit has been reached.
type fullRegistry struct{}

func (f *fullRegistry) Create(palette.Type, bool, int64) (*controller.Info, error) {
	return nil, controller.ErrRegistryFull
}
func (f *fullRegistry) Get(string) (*controller.Info, error) {
	return nil, controller.ErrNotFound
}
func (f *fullRegistry) List() []*controller.Info { return nil }
func (f *fullRegistry) Draw(string, int) ([]palette.Color, error) {
	return nil, controller.ErrNotFound
}
func (f *fullRegistry) Delete(string) error { return controller.ErrNotFound }
