package stream

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vitalsign/vitalsign/vitals"
)

// Source produces health reports. *collect.Collector satisfies it.
type Source interface {
	GetMetrics(eventTag string) vitals.Report
}

// Config configures the streaming handler.
type Config struct {
	// Interval between pushes. Default: 5 seconds.
	Interval time.Duration

	// Logger receives connection lifecycle events. Default: slog.Default().
	Logger *slog.Logger

	// CheckOrigin overrides the upgrader's origin policy. Default: the
	// gorilla same-origin check.
	CheckOrigin func(r *http.Request) bool
}

// Handler upgrades the connection and streams reports from src.
func Handler(src Source, cfg Config) http.HandlerFunc {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	up := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     cfg.CheckOrigin,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the error response.
			return
		}
		defer conn.Close()

		log := cfg.Logger.With("conn", uuid.NewString(), "remote", r.RemoteAddr)
		log.Debug("metrics stream opened")

		// Drain the read side so close frames are processed.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		if err := conn.WriteJSON(src.GetMetrics("")); err != nil {
			log.Debug("metrics stream write failed", "error", err)
			return
		}

		for {
			select {
			case <-closed:
				log.Debug("metrics stream closed by client")
				return
			case <-ticker.C:
				if err := conn.WriteJSON(src.GetMetrics("")); err != nil {
					log.Debug("metrics stream write failed", "error", err)
					return
				}
			}
		}
	}
}
