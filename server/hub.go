package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"linetemp/air"
	"linetemp/calculator"
	"linetemp/model"
	"linetemp/quantity"
)

// Hub serves one websocket connection: requests are handled in order and
// every reply is written by a single goroutine.
type Hub struct {
	id      string
	calc    *calculator.Calculator
	metrics *metrics
	conn    *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
}

func NewHub(calc *calculator.Calculator, m *metrics) *Hub {
	return &Hub{
		id:      uuid.NewString(),
		calc:    calc,
		metrics: m,
		msg:     make(chan model.Msg, 10),
		reply:   make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse(ctx context.Context) {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithFields(log.Fields{
					"session": h.id,
					"err":     err,
				}).Error("write reply failed")
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handleRequest(ctx context.Context) {
	for {
		select {
		case msg := <-h.msg:
			reply := h.handle(ctx, msg)
			select {
			case h.reply <- reply:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handle(ctx context.Context, msg model.Msg) model.Msg {
	var (
		content interface{}
		err     error
		typ     string
	)
	switch msg.Type {
	case model.MsgSolve:
		typ = model.MsgSolved
		content, err = h.solve(ctx, msg.Content)
	case model.MsgAir:
		typ = model.MsgAir
		content, err = airProperties(msg.Content)
	default:
		err = fmt.Errorf("no such type: %q", msg.Type)
	}
	if err != nil {
		log.WithFields(log.Fields{
			"session": h.id,
			"type":    msg.Type,
			"err":     err,
		}).Warn("request failed")
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}
	data, err := json.Marshal(content)
	if err != nil {
		return model.Msg{Type: model.MsgError, Content: err.Error()}
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func (h *Hub) solve(ctx context.Context, content string) (*model.Solution, error) {
	var s model.Scenario
	if err := json.Unmarshal([]byte(content), &s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	start := time.Now()
	sol, err := h.calc.Solve(ctx, &s)
	h.metrics.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.solves.WithLabelValues("error").Inc()
		return nil, err
	}
	h.metrics.solves.WithLabelValues("ok").Inc()
	h.metrics.spans.Add(float64(len(sol.Spans)))
	return sol, nil
}

func airProperties(content string) (*air.Properties, error) {
	var req model.AirRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return nil, fmt.Errorf("decode air request: %w", err)
	}
	var alt quantity.Vec
	if len(req.Altitude) > 0 {
		alt = quantity.Of(req.Altitude...)
	}
	return air.Evaluate(quantity.Of(req.Temperature...), alt)
}
