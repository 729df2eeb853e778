package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sandevgo/docbot/internal/config"
	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/internal/service/agent"
	"github.com/sandevgo/docbot/pkg/log"
)

// Thinker is the agent surface exposed over HTTP.
type Thinker interface {
	Think(ctx context.Context, conversation []core.Turn) agent.Reply
}

type Server struct {
	cfg    *config.HTTPConfig
	agent  Thinker
	server *http.Server
}

func NewServer(cfg *config.HTTPConfig, agent Thinker) *Server {
	s := &Server{
		cfg:   cfg,
		agent: agent,
	}
	s.server = &http.Server{
		Addr:              cfg.Addr,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}
	return s
}

// Router builds the HTTP routes. Requests inherit the logger from ctx.
func (s *Server) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(withLogger(ctx))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(bearerAuth(s.cfg.APIToken))
		r.Post("/think", s.think)
	})

	return r
}

func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.Router(ctx)
	s.server.BaseContext = func(net.Listener) context.Context { return ctx }

	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http api")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func withLogger(ctx context.Context) func(http.Handler) http.Handler {
	base := log.FromCtx(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := base.With().
				Str("http_request_id", middleware.GetReqID(r.Context())).
				Logger()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context())))

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("took", time.Since(start)).
				Msg("http request")
		})
	}
}

func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				writeError(w, http.StatusUnauthorized, "invalid or missing token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
