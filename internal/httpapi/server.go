package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/webcheckd/urlcheck/internal/config"
	"github.com/webcheckd/urlcheck/internal/httpapi/middleware"
	"github.com/webcheckd/urlcheck/internal/probe"
)

type Server struct {
	Logger     *zap.Logger
	APIKeys    []string
	RPM        int
	Burst      int
	MaxTimeout time.Duration

	// NewChecker builds the checker for one request; tests may substitute.
	NewChecker func(timeout time.Duration, browserAgent bool) probe.Checker
}

func NewServer(l *zap.Logger, cfg config.Config) *Server {
	return &Server{
		Logger:     l,
		APIKeys:    cfg.APIKeys,
		RPM:        cfg.PublicRPM,
		Burst:      cfg.PublicBurst,
		MaxTimeout: cfg.MaxTimeout,
		NewChecker: func(timeout time.Duration, browserAgent bool) probe.Checker {
			return probe.NewURLChecker(timeout, browserAgent)
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(s.RPM, s.Burst))
		r.Use(middleware.RequireKey(s.APIKeys))
		r.Post("/api/check", s.handleCheck)
	})

	return r
}

type checkPayload struct {
	URL             string `json:"url"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
	UseBrowserAgent bool   `json:"use_browser_agent"`
}

type checkResponse struct {
	URL string `json:"url"`
	probe.Result
	CheckedAt time.Time `json:"checked_at"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var p checkPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.URL == "" {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	timeout := time.Duration(p.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = probe.DefaultTimeout
	}
	if s.MaxTimeout > 0 && timeout > s.MaxTimeout {
		timeout = s.MaxTimeout
	}

	out := s.NewChecker(timeout, p.UseBrowserAgent).Check(r.Context(), p.URL)

	s.Logger.Info("url_checked",
		zap.String("url", p.URL),
		zap.Bool("accessible", out.Accessible),
		zap.String("explanation", out.Explanation),
		zap.Int("status", out.StatusCode),
		zap.Bool("browser_agent", p.UseBrowserAgent),
		zap.Duration("timeout", timeout),
		zap.Float64("latency_ms", out.LatencyMS),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(checkResponse{
		URL:       p.URL,
		Result:    out,
		CheckedAt: time.Now().UTC(),
	})
}
