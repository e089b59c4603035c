package health

import (
	"net/http"

	"dronline/infras/postgres"
	"dronline/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{db: db, redis: redis}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports service liveness and dependency connectivity.
// @Summary Health check
// @Description Report service liveness, database and cache connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service healthy"
// @Failure 503 {object} response.Error
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: read database unreachable")
		response.WithUnhealthy(w)

		return
	}

	if err := handler.db.Write.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed: write database unreachable")
		response.WithUnhealthy(w)

		return
	}

	if err := handler.redis.Ping(r.Context()).Err(); err != nil {
		log.Error().Err(err).Msg("health check failed: redis unreachable")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
