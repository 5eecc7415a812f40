package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer wires base routes (health, metrics) and the trivia API.
// db and triviaHandler may be nil, in which case their routes are not mounted.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, db Pinger, triviaHandler *trivia.HTTPHandler) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(cfg, logger, db, triviaHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler builds the routed handler wrapped in the middleware chain.
func NewHandler(cfg *config.App, logger zerolog.Logger, db Pinger, triviaHandler *trivia.HTTPHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	if db != nil {
		mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
			if err := db.Ping(r.Context()); err != nil {
				logging.FromContext(r.Context()).Error().Err(err).Msg("dependency ping failed")
				httperrors.RespondError(w, http.StatusBadGateway, "upstream error")
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"pong":true}`))
		})
	}

	if triviaHandler != nil {
		triviaHandler.Register(mux)
	}

	return chain(&router{mux: mux},
		requestLogger(logger),
		recoverer,
		instrument,
		cors(cfg.CORS),
	)
}

// router answers unmatched requests with JSON error bodies instead of the
// mux's plain-text 404 and 405 responses.
type router struct {
	mux *http.ServeMux
}

func (rt *router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, pattern := rt.mux.Handler(r)
	if pattern != "" {
		rt.mux.ServeHTTP(w, r)
		return
	}

	probe := &statusProbe{header: http.Header{}}
	h.ServeHTTP(probe, r)

	if probe.status == http.StatusMethodNotAllowed {
		if allow := probe.header.Get("Allow"); allow != "" {
			w.Header().Set("Allow", allow)
		}
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	httperrors.RespondNotFound(w, httperrors.MsgNotFound)
}

// statusProbe records the status a handler would have written, dropping the body.
type statusProbe struct {
	header http.Header
	status int
}

func (p *statusProbe) Header() http.Header { return p.header }

func (p *statusProbe) Write(b []byte) (int, error) {
	if p.status == 0 {
		p.status = http.StatusOK
	}
	return len(b), nil
}

func (p *statusProbe) WriteHeader(status int) {
	if p.status == 0 {
		p.status = status
	}
}
