package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/PotionCraft_Go/internal/economy"
	"github.com/osse101/PotionCraft_Go/internal/handler"
	"github.com/osse101/PotionCraft_Go/internal/logger"
	"github.com/osse101/PotionCraft_Go/internal/metrics"
	"github.com/osse101/PotionCraft_Go/internal/session"
	"github.com/osse101/PotionCraft_Go/internal/sse"
)

// Config holds the HTTP-facing settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
}

// Dependencies are the services the routes are bound to
type Dependencies struct {
	Store    handler.Pinger
	Sessions session.Service
	Economy  economy.Service
	Catalog  handler.Catalog
	Hub      *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the full route table with its middleware stack
func NewRouter(cfg Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	proxies := NewTrustedProxies(cfg.TrustedProxies)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, proxies, detector))
	r.Use(SecurityLoggingMiddleware(proxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion(cfg.ServiceName, cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	catalogHandler := handler.NewCatalogHandler(deps.Catalog, deps.Economy)
	sessions := handler.NewSessionHandler(deps.Sessions)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", sse.Handler(deps.Hub))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleList())
			r.Get("/sample", catalogHandler.HandleSample())
			r.Get("/search", catalogHandler.HandleSearch())
			r.Get("/tags", catalogHandler.HandleTags())
			r.Get("/items/{itemID}", catalogHandler.HandleItem())
		})
		r.Get("/pool", catalogHandler.HandlePoolStats())

		r.Post("/sessions", sessions.HandleCreate())
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", sessions.HandleGet())
			r.Delete("/", sessions.HandleDelete())

			r.Route("/wallet", func(r chi.Router) {
				r.Post("/connect", sessions.HandleConnect())
				r.Post("/disconnect", sessions.HandleDisconnect())
				r.Post("/spend", sessions.HandleSpend())
				r.Post("/earn", sessions.HandleEarn())
			})

			r.Get("/inventory", sessions.HandleInventory())
			r.Get("/inventory/stats", sessions.HandleStats())

			r.Route("/potions", func(r chi.Router) {
				r.Post("/craft", sessions.HandleCraft())
				r.Get("/craft-cost", sessions.HandleCraftCost())
				r.Post("/obtain", sessions.HandleObtain())
				r.Post("/try", sessions.HandleTry())
				r.Post("/use", sessions.HandleUse())
				r.Post("/sell", sessions.HandleSell())
			})

			r.Route("/staking", func(r chi.Router) {
				r.Post("/stake", sessions.HandleStake())
				r.Post("/unstake", sessions.HandleUnstake())
			})

			r.Get("/rewards", sessions.HandleRewards())
			r.Post("/rewards/claim", sessions.HandleClaim())

			r.Get("/app-state", sessions.HandleGetAppState())
			r.Put("/app-state", sessions.HandlePutAppState())

			r.Get("/export", sessions.HandleExport())
			r.Post("/import", sessions.HandleImport())
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets the event stream push through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
