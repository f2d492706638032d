package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linetemp/air"
	"linetemp/calculator"
	"linetemp/model"
)

const scenarioJSON = `{
	"name": "ws",
	"spans": [
		{"name": "a", "current": 400, "t_low": 20, "t_high": 80, "rdc_low": 7.283e-5, "rdc_high": 8.688e-5,
		 "ambient": 20, "diameter": 0.0286, "emissivity": 0.7},
		{"name": "b", "current": 700, "t_low": 20, "t_high": 80, "rdc_low": 7.283e-5, "rdc_high": 8.688e-5,
		 "ambient": 30, "diameter": 0.0286, "emissivity": 0.7}
	]
}`

func newTestHub() *Hub {
	return NewHub(calculator.NewCalculator(calculator.DefaultConfig()), newMetrics(prometheus.NewRegistry()))
}

func TestHubSolve(t *testing.T) {
	h := newTestHub()
	reply := h.handle(context.Background(), model.Msg{Type: model.MsgSolve, Content: scenarioJSON})
	require.Equal(t, model.MsgSolved, reply.Type, reply.Content)

	var sol model.Solution
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &sol))
	require.Len(t, sol.Spans, 2)
	assert.Equal(t, "ws", sol.Scenario)
	for _, s := range sol.Spans {
		assert.True(t, s.Converged)
		assert.Contains(t, s.Terms, "joule")
		assert.Contains(t, s.Terms, "radiative")
	}
	assert.Greater(t, sol.Spans[1].Temperature, sol.Spans[0].Temperature)
}

func TestHubAir(t *testing.T) {
	h := newTestHub()
	reply := h.handle(context.Background(), model.Msg{
		Type:    model.MsgAir,
		Content: `{"temperature": [0, 20], "altitude": [0]}`,
	})
	require.Equal(t, model.MsgAir, reply.Type, reply.Content)

	var p air.Properties
	require.NoError(t, json.Unmarshal([]byte(reply.Content), &p))
	assert.Equal(t, []float64{1.2925, 1.2925}, []float64(p.VolumicMass))
	assert.Len(t, p.Prandtl, 2)
}

func TestHubErrors(t *testing.T) {
	h := newTestHub()
	reply := h.handle(context.Background(), model.Msg{Type: "start"})
	assert.Equal(t, model.MsgError, reply.Type)
	assert.Contains(t, reply.Content, "no such type")

	reply = h.handle(context.Background(), model.Msg{Type: model.MsgSolve, Content: `{"spans": []}`})
	assert.Equal(t, model.MsgError, reply.Type)
	assert.Equal(t, model.ErrEmptyScenario.Error(), reply.Content)

	reply = h.handle(context.Background(), model.Msg{Type: model.MsgAir, Content: `{"temperature": [1, 2], "altitude": [1, 2, 3]}`})
	assert.Equal(t, model.MsgError, reply.Type)
}

func TestServeWs(t *testing.T) {
	s := NewServer(":0", websocket.Upgrader{}, calculator.NewCalculator(calculator.DefaultConfig()))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(model.Msg{Type: model.MsgSolve, Content: scenarioJSON}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var reply model.Msg
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, model.MsgSolved, reply.Type)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `linetemp_solves_total{status="ok"} 1`)
	assert.Contains(t, string(body), "linetemp_spans_solved_total 2")
}

func TestHealthz(t *testing.T) {
	s := NewServer(":0", websocket.Upgrader{}, calculator.NewCalculator(calculator.DefaultConfig()))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
