// Package server wires the dispatcher, road-distance provider, and cache
// into an HTTP server.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"quantum-logistics-router/internal/distance"
	"quantum-logistics-router/internal/handlers"
	"quantum-logistics-router/internal/solver"
	"quantum-logistics-router/internal/sqlite"
)

// Server wraps the HTTP server and all dependencies
type Server struct {
	httpServer *http.Server
	handler    *handlers.Handler
	store      *sqlite.Store
	listener   net.Listener
	addr       string
}

// Config holds server configuration
type Config struct {
	Addr string // e.g., "127.0.0.1:8080" or "127.0.0.1:0" for random port
	// ORSAPIKey enables real-road distances. Empty disables them; solves
	// then run on great-circle distances only.
	ORSAPIKey string
	// CacheDBPath is the SQLite distance cache location. Empty disables
	// the persistent cache.
	CacheDBPath string
	// SolveTimeout bounds a single solve; zero selects the default.
	SolveTimeout time.Duration
}

// New creates and initializes a new server (does not start it)
func New(cfg Config) (*Server, error) {
	var store *sqlite.Store
	if cfg.CacheDBPath != "" {
		log.Printf("Initializing distance cache...")
		var err error
		store, err = sqlite.New(cfg.CacheDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize distance cache: %w", err)
		}
	}

	var provider distance.MatrixProvider
	if cfg.ORSAPIKey != "" {
		// A nil *sqlite.Store must not become a non-nil PairCache.
		var cache distance.PairCache
		if store != nil {
			cache = store
		}
		provider = distance.NewORSProvider(distance.Config{APIKey: cfg.ORSAPIKey}, cache)
		log.Printf("Road routing enabled (OpenRouteService)")
	} else {
		log.Printf("ORS_API_KEY not set, road routing disabled")
	}

	handler := &handlers.Handler{
		Solver: solver.New(provider, cfg.SolveTimeout),
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      loggingMiddleware(setupRoutes(handler)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		store:      store,
		addr:       cfg.Addr,
	}, nil
}

// Start starts the server and returns the actual address (useful for random port)
func (s *Server) Start() (string, error) {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen: %w", err)
	}

	s.listener = listener
	actualAddr := listener.Addr().String()
	log.Printf("Starting server on %s", actualAddr)

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return actualAddr, nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("cache close: %w", err)
		}
	}
	return nil
}

func setupRoutes(handler *handlers.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", requireMethod(http.MethodGet, handler.HandleHealthCheck))
	mux.HandleFunc("/api/routing-status", requireMethod(http.MethodGet, handler.HandleRoutingStatus))

	mux.HandleFunc("/api/test-data", requireMethod(http.MethodGet, handler.HandleTestData))
	mux.HandleFunc("/api/capitals", requireMethod(http.MethodGet, handler.HandleCapitals))
	mux.HandleFunc("/api/cities", requireMethod(http.MethodGet, handler.HandleCities))
	mux.HandleFunc("/api/cities/", requireMethod(http.MethodGet, handler.HandleCityNeighborhoods))

	mux.HandleFunc("/api/generate-route", requireMethod(http.MethodPost, handler.HandleGenerateRoute))
	mux.HandleFunc("/api/solve", requireMethod(http.MethodPost, handler.HandleSolve))
	mux.HandleFunc("/api/compare", requireMethod(http.MethodPost, handler.HandleCompare))

	return mux
}

func requireMethod(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		duration := time.Since(start)
		if !strings.HasPrefix(r.URL.Path, "/api/health") {
			log.Printf("%s %s %d %v", r.Method, r.URL.Path, lrw.statusCode, duration)
		}
	})
}
