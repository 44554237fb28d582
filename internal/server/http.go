package server

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // Profiling
	"strconv"
	"time"

	"github.com/nancyzera/jurassic-game/internal/engine"
	"github.com/nancyzera/jurassic-game/internal/version"
	"github.com/nancyzera/jurassic-game/pkg/levels"
	"github.com/nancyzera/jurassic-game/pkg/logger"

	"github.com/klauspost/compress/gzhttp"
)

type Server struct {
	Engine *engine.GameService
	Port   string

	http *http.Server
}

func New(engine *engine.GameService, port string) *Server {
	s := &Server{
		Engine: engine,
		Port:   port,
	}
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler builds the route table. JSON endpoints are gzip-compressed;
// the websocket endpoint is not wrapped since it hijacks the connection.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("GET /health", enableCORS(s.handleHealth))
	mux.Handle("GET /version", gzhttp.GzipHandler(enableCORS(s.handleVersion)))
	mux.Handle("GET /levels", gzhttp.GzipHandler(enableCORS(s.handleLevels)))
	mux.Handle("GET /levels/{id}/layout", gzhttp.GzipHandler(enableCORS(s.handleLayout)))

	NewDebugHandler(s.Engine).RegisterRoutes(mux)

	// pprof registers itself on the default mux.
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	return mux
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	logger.Log.Infof("Jurassic Quest server running on :%s", s.Port)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS opens a session for the connection.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client, err := NewClient(s.Engine, conn)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to open session")
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, version.Info())
}

// /levels lists the catalog with initial unlock flags.
// /levels?name=cave resolves free text to one level.
func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, s.Engine.Catalog.Summaries())
		return
	}

	tpl, ok := s.Engine.Catalog.Lookup(name)
	if !ok {
		http.Error(w, "Level not found", http.StatusNotFound)
		return
	}
	summary := s.Engine.Catalog.Summaries()[tpl.ID-1]
	writeJSON(w, summary)
}

// /levels/{id}/layout returns the decorative scenery of a level. The
// layout depends only on the server seed and the level id.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Bad level id", http.StatusBadRequest)
		return
	}
	tpl, ok := s.Engine.Catalog.Level(id)
	if !ok {
		http.Error(w, "Level not found", http.StatusNotFound)
		return
	}

	rng := rand.New(rand.NewSource(s.Engine.Config().Seed ^ int64(id)))
	writeJSON(w, levels.Decorate(tpl.Environment, rng))
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("write json response failed")
	}
}
