package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/aventura-edu/backend/internal/config"
	"github.com/aventura-edu/backend/internal/game"
	httperrors "github.com/aventura-edu/backend/pkg/http/errors"
)

// GameService is the content pipeline surface the HTTP layer needs.
type GameService interface {
	GenerateQuestion(ctx context.Context, params game.GameParameters, index int) game.Question
	GenerateQuestionBatch(ctx context.Context, params game.GameParameters) [4]game.Question
	GenerateStory(ctx context.Context, params game.GameParameters) game.StoryData
	ClearSessionState()
}

// NewHTTPServer wires base routes (health, metrics) plus the game content
// endpoints. pool and rdb may be nil when the matching backend is disabled.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, rdb *redis.Client, svc GameService, prewarm chan<- game.GameParameters) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, rdb); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondError(w, http.StatusBadGateway, httperrors.ErrCodeUpstreamError, "upstream error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	h := &gameHandlers{svc: svc, prewarm: prewarm, logger: logger.With().Str("component", "http").Logger()}
	mux.HandleFunc("/v1/games/batch", h.batch)
	mux.HandleFunc("/v1/games/question", h.question)
	mux.HandleFunc("/v1/games/story", h.story)
	mux.HandleFunc("/v1/games/reset", h.reset)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsMiddleware(cfg.CORS, mux),
	}
}

type gameHandlers struct {
	svc     GameService
	prewarm chan<- game.GameParameters
	logger  zerolog.Logger
}

type gameRequest struct {
	game.GameParameters
	Index *int `json:"index,omitempty"`
}

func (h *gameHandlers) decode(w http.ResponseWriter, r *http.Request) (*gameRequest, bool) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return nil, false
	}
	var req gameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "malformed JSON body")
		return nil, false
	}
	if strings.TrimSpace(req.Subject) == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "subject is required", "subject")
		return nil, false
	}
	return &req, true
}

// batch starts a game: session state is reset and 4 fresh questions are
// produced. The same parameters are queued for prewarming so the next game on
// this theme has stored content waiting.
func (h *gameHandlers) batch(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	questions := h.svc.GenerateQuestionBatch(r.Context(), req.GameParameters)
	h.enqueuePrewarm(req.GameParameters)
	respondJSON(w, map[string]any{"questions": questions})
}

func (h *gameHandlers) question(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	index := 0
	if req.Index != nil {
		index = *req.Index
	} else if raw := r.URL.Query().Get("index"); raw != "" {
		var err error
		if index, err = strconv.Atoi(raw); err != nil {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidAngle, "index must be an integer")
			return
		}
	}
	if index < 0 || index >= len(game.Angles) {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidAngle, "index must be between 0 and 3")
		return
	}
	q := h.svc.GenerateQuestion(r.Context(), req.GameParameters, index)
	respondJSON(w, q)
}

func (h *gameHandlers) story(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	st := h.svc.GenerateStory(r.Context(), req.GameParameters)
	respondJSON(w, st)
}

func (h *gameHandlers) reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	h.svc.ClearSessionState()
	w.WriteHeader(http.StatusNoContent)
}

func (h *gameHandlers) enqueuePrewarm(params game.GameParameters) {
	if h.prewarm == nil {
		return
	}
	select {
	case h.prewarm <- params:
	default:
		h.logger.Debug().Msg("prewarm queue full, skipping")
	}
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, rdb *redis.Client) error {
	if pool != nil {
		if err := pool.Ping(ctx); err != nil {
			return err
		}
	}
	if rdb != nil {
		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}

func corsMiddleware(cfg config.CORS, next http.Handler) http.Handler {
	origins := map[string]bool{}
	for _, o := range cfg.AllowedOrigins {
		origins[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && origins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.AllowedMethods, ", "))
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.AllowedHeaders, ", "))
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			if cfg.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
