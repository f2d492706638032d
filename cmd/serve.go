package cmd

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"linetemp/calculator"
	"linetemp/server"
)

var (
	addr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve heat balance requests over websocket.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if addr != "" {
				cfg.Addr = addr
			}
			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			s := server.NewServer(cfg.Addr, upgrader, calculator.NewCalculator(cfg))
			return s.Serve()
		},
	}
)

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides [server] Addr")
}
