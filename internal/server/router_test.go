package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tulook/internal/auth"
	"tulook/internal/geo"
	"tulook/internal/handlers"
	"tulook/internal/monitoring"
	"tulook/internal/queue"
	"tulook/internal/response"
	"tulook/internal/settings"
	"tulook/internal/storage"
	"tulook/internal/wisdom"
	"tulook/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminSecret = "tijera-dorada"

var venue = geo.Point{Lat: -32.2236, Lng: -58.1430}

type testServer struct {
	*httptest.Server
	t *testing.T
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	db, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "tulook.db"))
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	ctx, cancel := context.WithCancel(context.Background())
	hub := queue.NewHub()
	go hub.Run(ctx)
	store := queue.NewStore(db, hub, log)

	cfg := settings.NewStore(db, log)
	require.NoError(t, cfg.Load(ctx))

	gate, err := auth.NewGate(adminSecret, "", "access", "refresh")
	require.NoError(t, err)

	h := handlers.New(handlers.Deps{
		Queue:    store,
		Settings: cfg,
		Gate:     gate,
		Wisdom:   wisdom.NewService(nil, nil, 0, log),
		Fence:    &geo.Fence{Center: venue, RadiusMeters: 200, DirectionsURL: "https://maps.example/tulook"},
		Monitor:  monitoring.NewMonitor(hub, log),
		Log:      log,
	})
	r := NewRouter(h, ws.NewHandler(hub, log), gate, log, Options{RateLimitPerMin: 100})

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		srv.Close()
		cancel()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return &testServer{Server: srv, t: t}
}

func (s *testServer) do(method, path, token string, body any) (int, []byte) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.URL+path, &buf)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(s.t, err)
	return resp.StatusCode, out.Bytes()
}

func (s *testServer) login() string {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/auth/admin/login", "", map[string]string{"secret": adminSecret})
	require.Equal(s.t, http.StatusOK, code, string(body))
	var tokens response.TokenResponse
	require.NoError(s.t, json.Unmarshal(body, &tokens))
	return tokens.AccessToken
}

func near(meters float64) map[string]float64 {
	return map[string]float64{"lat": venue.Lat + meters/111194.93, "lng": venue.Lng}
}

func registration(name, barber, service string, meters float64) map[string]any {
	body := map[string]any{"cliente": name, "barbero": barber, "servicio": service}
	for k, v := range near(meters) {
		body[k] = v
	}
	return body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestRegistrationIsGeofenced(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodPost, "/api/queue", "", registration("Ana", "Gonzalo", "corte", 250))
	assert.Equal(t, http.StatusForbidden, code)
	geoErr := decode[response.GeofenceErrorResponse](t, body)
	assert.Equal(t, "OUT_OF_RANGE", geoErr.Code)
	assert.Equal(t, "https://maps.example/tulook", geoErr.DirectionsURL)
	assert.True(t, geoErr.Retry)
	require.NotNil(t, geoErr.DistanceMeters)
	assert.InDelta(t, 250, *geoErr.DistanceMeters, 1)

	code, body = s.do(http.MethodPost, "/api/queue", "", map[string]any{"cliente": "Ana", "barbero": "Gonzalo", "servicio": "corte"})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "NO_LOCATION", decode[response.GeofenceErrorResponse](t, body).Code)

	_, body = s.do(http.MethodGet, "/api/queue/board", "", nil)
	assert.Empty(t, decode[queue.Board](t, body).Rows)

	code, _ = s.do(http.MethodPost, "/api/queue", "", registration("Ana", "Gonzalo", "corte", 150))
	assert.Equal(t, http.StatusCreated, code)
}

func TestRegistrationValidation(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodPost, "/api/queue", "", registration("  ", "Gonzalo", "corte", 10))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "EMPTY_NAME", decode[response.ErrorResponse](t, body).Code)
	assert.Equal(t, "Ingresa tu nombre", decode[response.ErrorResponse](t, body).Message)

	code, body = s.do(http.MethodPost, "/api/queue", "", registration("Ana", "Pedro", "corte", 10))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "UNKNOWN_BARBER", decode[response.ErrorResponse](t, body).Code)

	code, body = s.do(http.MethodPost, "/api/queue", "", registration("Ana", "Gonzalo", "tintura", 10))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "UNKNOWN_SERVICE", decode[response.ErrorResponse](t, body).Code)
}

func TestRegistrationChecksNameBeforeLocation(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodPost, "/api/queue", "", registration("", "Gonzalo", "corte", 5000))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "EMPTY_NAME", decode[response.ErrorResponse](t, body).Code)

	code, body = s.do(http.MethodPost, "/api/queue", "", map[string]any{"cliente": "", "barbero": "Gonzalo", "servicio": "corte"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "EMPTY_NAME", decode[response.ErrorResponse](t, body).Code)
}

func TestRegistrationRejectsOutOfRangeCoordinates(t *testing.T) {
	s := newTestServer(t)

	// A latitude shifted by a full turn lands on the venue in haversine.
	for _, loc := range []map[string]float64{
		{"lat": venue.Lat + 360, "lng": venue.Lng},
		{"lat": venue.Lat, "lng": venue.Lng - 360},
	} {
		body := map[string]any{"cliente": "Ana", "barbero": "Gonzalo", "servicio": "corte", "lat": loc["lat"], "lng": loc["lng"]}
		code, resp := s.do(http.MethodPost, "/api/queue", "", body)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "VALIDATION_ERROR", decode[response.ErrorResponse](t, resp).Code)
	}

	_, resp := s.do(http.MethodGet, "/api/queue/board", "", nil)
	assert.Empty(t, decode[queue.Board](t, resp).Rows)
}

func TestWalkInFlow(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodPost, "/api/queue", "", registration("Martín", "Lautaro", "ambos", 20))
	require.Equal(t, http.StatusCreated, code, string(body))
	reg := decode[handlers.RegisterResponse](t, body)
	assert.Equal(t, 45, reg.Entry.EstimatedMinutes)
	assert.Equal(t, "10000", reg.Entry.Price.String())
	assert.False(t, reg.Checkout.DigitalPayment)
	id := reg.Entry.ID

	code, body = s.do(http.MethodPost, "/api/checkout/"+id+"/transfer", "", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "NO_ALIAS", decode[response.ErrorResponse](t, body).Code)

	token := s.login()
	code, _ = s.do(http.MethodPut, "/api/admin/settings", token, map[string]any{
		"precios": map[string]string{"corte": "9000", "barba": "4000", "ambos": "12000"},
		"alias":   map[string]string{"Lautaro": "lauti.barber"},
	})
	require.Equal(t, http.StatusOK, code)

	_, body = s.do(http.MethodGet, "/api/checkout/"+id, "", nil)
	checkout := decode[handlers.CheckoutResponse](t, body)
	assert.Equal(t, "10000", checkout.Price.String())
	assert.Equal(t, "lauti.barber", checkout.Alias)
	assert.True(t, checkout.DigitalPayment)

	code, body = s.do(http.MethodPost, "/api/checkout/"+id+"/transfer", "", nil)
	require.Equal(t, http.StatusOK, code, string(body))
	transfer := decode[handlers.TransferResponse](t, body)
	link, err := url.Parse(transfer.Link)
	require.NoError(t, err)
	assert.Equal(t, "lauti.barber", link.Query().Get("alias"))
	assert.Equal(t, "10000", link.Query().Get("amount"))
	assert.Equal(t, "Barberia: Martín", link.Query().Get("reference"))

	code, _ = s.do(http.MethodPost, "/api/admin/queue/"+id+"/paid", token, nil)
	assert.Equal(t, http.StatusOK, code)
	code, body = s.do(http.MethodPost, "/api/checkout/"+id+"/transfer", "", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "ALREADY_PAID", decode[response.ErrorResponse](t, body).Code)

	_, body = s.do(http.MethodGet, "/api/barbers/Lautaro", "", nil)
	barber := decode[handlers.BarberItem](t, body)
	assert.Equal(t, 1, barber.Availability.Waiting)
	assert.Equal(t, 45, barber.Availability.WaitMinutes)

	code, _ = s.do(http.MethodPost, "/api/admin/queue/"+id+"/serve", token, nil)
	assert.Equal(t, http.StatusOK, code)
	_, body = s.do(http.MethodGet, "/api/barbers/Lautaro", "", nil)
	barber = decode[handlers.BarberItem](t, body)
	assert.Equal(t, 0, barber.Availability.WaitMinutes)
	assert.True(t, barber.Availability.Serving)

	code, _ = s.do(http.MethodPost, "/api/admin/queue/"+id+"/finish", token, nil)
	assert.Equal(t, http.StatusOK, code)
	code, body = s.do(http.MethodPost, "/api/admin/queue/"+id+"/serve", token, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INVALID_TRANSITION", decode[response.ErrorResponse](t, body).Code)

	_, body = s.do(http.MethodGet, "/api/queue/board", "", nil)
	assert.Empty(t, decode[queue.Board](t, body).Rows)

	_, body = s.do(http.MethodGet, "/api/services", "", nil)
	services := decode[[]handlers.ServiceItem](t, body)
	require.Len(t, services, 3)
	assert.Equal(t, "12000", services[2].Price.String())
}

func TestAdminRequiresToken(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodGet, "/api/admin/queue", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := s.do(http.MethodPost, "/auth/admin/login", "", map[string]string{"secret": "tijera"})
	assert.Equal(t, http.StatusUnauthorized, code)
	loginErr := decode[response.LoginErrorResponse](t, body)
	assert.Equal(t, "INVALID_SECRET", loginErr.Code)
	assert.True(t, loginErr.ClearInput)

	code, _ = s.do(http.MethodGet, "/api/admin/queue", s.login(), nil)
	assert.Equal(t, http.StatusOK, code)

	code, body = s.do(http.MethodDelete, "/api/admin/queue/missing", s.login(), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "ENTRY_NOT_FOUND", decode[response.ErrorResponse](t, body).Code)
}

func TestWisdomFallsBackWithoutGenerator(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(http.MethodGet, "/api/barbers/Gonzalo/wisdom", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, wisdom.FallbackOnEmpty, decode[handlers.WisdomResponse](t, body).Message)

	code, _ = s.do(http.MethodGet, "/api/barbers/Pedro/wisdom", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBoardWebSocketSeesRegistration(t *testing.T) {
	s := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(s.URL, "http")+"/api/queue/ws?view=board", nil)
	require.NoError(t, err)
	defer conn.Close()

	readBoard := func() queue.Board {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg struct {
			EventType string      `json:"event_type"`
			Data      queue.Board `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "snapshot", msg.EventType)
		return msg.Data
	}
	assert.Empty(t, readBoard().Rows)

	code, _ := s.do(http.MethodPost, "/api/queue", "", registration("Ana", "Julián", "barba", 5))
	require.Equal(t, http.StatusCreated, code)

	board := readBoard()
	require.Len(t, board.Rows, 1)
	assert.Equal(t, "Ana", board.Rows[0].Customer)
	assert.Equal(t, 15, board.WaitMinutes)
}

func TestOpsEndpoints(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, body := s.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), "go_goroutines")
}
