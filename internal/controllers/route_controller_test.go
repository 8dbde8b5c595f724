package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train_routes/internal/models"
	"train_routes/internal/schedule"
	"train_routes/internal/testutil"
)

type fakeRegistry struct {
	routes    map[int]*schedule.Route
	trains    []models.TrainSummary
	reloadErr error
	trainsErr error
	reloads   int
}

func (f *fakeRegistry) Reload() error {
	f.reloads++
	return f.reloadErr
}

func (f *fakeRegistry) Get(id int) (*schedule.Route, bool) {
	r, ok := f.routes[id]
	return r, ok
}

func (f *fakeRegistry) Len() int { return len(f.routes) }

func (f *fakeRegistry) Routes() []*schedule.Route {
	var out []*schedule.Route
	for _, id := range []int{7, 8} {
		if r, ok := f.routes[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeRegistry) Trains() ([]models.TrainSummary, error) {
	return f.trains, f.trainsErr
}

func newBoard(t *testing.T, reg *fakeRegistry) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, _ := testutil.NewLogger()

	sc := NewScheduleController(reg, log)
	r := gin.New()
	r.GET("/routes", sc.ListRoutes)
	r.GET("/routes/:id", sc.GetRoute)
	r.POST("/routes/reload", sc.ReloadRoutes)
	r.GET("/trains", sc.ListTrains)
	return r
}

func sampleRegistry() *fakeRegistry {
	salzburg := schedule.PlatformSnapshot{Number: 2, Station: "hbf-salzburg", City: "salzburg", Time: time.Date(2023, 12, 4, 8, 0, 0, 0, time.UTC)}
	wien := schedule.PlatformSnapshot{Number: 1, Station: "hbf-wien", City: "wien", Time: time.Date(2023, 12, 4, 9, 30, 0, 0, time.UTC)}
	return &fakeRegistry{
		routes: map[int]*schedule.Route{
			7: schedule.NewRoute(7, 1, "REX", true, wien, salzburg),
			8: schedule.NewRoute(8, 1, "REX", false, salzburg, wien),
		},
		trains: []models.TrainSummary{{Number: 1, TypeName: "REX"}},
	}
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListRoutes(t *testing.T) {
	w := serve(newBoard(t, sampleRegistry()), http.MethodGet, "/routes")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Routes []map[string]any `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Routes, 2)
	assert.EqualValues(t, 7, body.Routes[0]["id"])
	assert.Equal(t, "forwards", body.Routes[0]["direction"])
	assert.Equal(t, "reverse", body.Routes[1]["direction"])
}

func TestGetRoute(t *testing.T) {
	board := newBoard(t, sampleRegistry())

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "known", path: "/routes/8", code: http.StatusOK},
		{name: "unknown", path: "/routes/99", code: http.StatusNotFound},
		{name: "not a number", path: "/routes/abc", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(board, http.MethodGet, tt.path)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestReloadRoutes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reg := sampleRegistry()
		w := serve(newBoard(t, reg), http.MethodPost, "/routes/reload")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, reg.reloads)
		assert.JSONEq(t, `{"routes": 2}`, w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		reg := sampleRegistry()
		reg.reloadErr = assert.AnError
		w := serve(newBoard(t, reg), http.MethodPost, "/routes/reload")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Reload failed")
	})
}

func TestListTrains(t *testing.T) {
	reg := sampleRegistry()
	w := serve(newBoard(t, reg), http.MethodGet, "/trains")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": [{"number": 1, "type": "REX"}]}`, w.Body.String())

	reg.trainsErr = assert.AnError
	w = serve(newBoard(t, reg), http.MethodGet, "/trains")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
