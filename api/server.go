// Package api serves a running game to spectators over HTTP. It exposes the
// latest frame as JSON, a websocket stream of frames and the prometheus
// metrics of the process.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/snakearcade/snake/config"
	"github.com/snakearcade/snake/rules"
)

// Server is the spectator server. It implements worker.FrameSink so it can
// be attached straight to a runner.
type Server struct {
	hs  *http.Server
	hub *hub

	mu     sync.RWMutex
	latest []byte
}

// New creates a spectator server listening on addr.
func New(addr string) *Server {
	s := &Server{
		hub: newHub(config.SpectateFPS, config.SpectateBurst),
	}

	router := httprouter.New()
	router.GET("/game", s.handleGame)
	router.GET("/socket", s.handleSocket)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// Publish stores f as the latest frame and pushes it to connected spectators.
func (s *Server) Publish(f rules.Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		log.WithError(err).WithField("game", f.ID).Error("unable to marshal frame")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = data
	s.hub.broadcast(data, mustDeliver(f))
}

// subscribe registers c, queueing the latest frame first. It holds the frame
// lock so a concurrent Publish reaches c exactly once.
func (s *Server) subscribe(c *client) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest != nil {
		c.enqueue(s.latest)
	}
	s.hub.add(c)
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("spectator api serving")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the listener and disconnects every spectator.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.closeAll()
	return s.hs.Shutdown(ctx)
}

func (s *Server) latestFrame() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	data := s.latestFrame()
	if data == nil {
		writeError(w, http.StatusNotFound, "no game running yet")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warn("unable to write frame")
	}
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := newClient(conn)
	s.subscribe(c)

	go c.writePump()
	c.readPump(s.hub)
}

// mustDeliver reports whether a frame bypasses the spectator rate limit.
// Starts and ends of games are never dropped.
func mustDeliver(f rules.Frame) bool {
	return f.Turn == 0 || f.GameOver()
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		log.WithError(err).Warn("unable to write error response")
	}
}
