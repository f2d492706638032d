package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"linetemp/calculator"
	"linetemp/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	calc     *calculator.Calculator
	registry *prometheus.Registry
	metrics  *metrics
}

func NewServer(addr string, upgrader websocket.Upgrader, calc *calculator.Calculator) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		calc:     calc,
		registry: reg,
		metrics:  newMetrics(reg),
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithField("err", err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(s.calc, s.metrics)
	hub.conn = conn
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.handleRequest(ctx)
	go hub.handleResponse(ctx)

	log.WithField("session", hub.id).Info("连接建立")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithFields(log.Fields{
				"session": hub.id,
				"err":     err,
			}).Info("连接断开")
			return
		}
		select {
		case hub.msg <- msg:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/ws", s.serveWs)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("server listening")
	return http.ListenAndServe(s.addr, s.Handler())
}
