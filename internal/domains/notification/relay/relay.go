package relay

import (
	"context"
	"time"

	"dronline/config"
	"dronline/infras/mailer"
	"dronline/infras/otel"
	"dronline/internal/domains/notification/model"
	"dronline/internal/domains/notification/repository"
	"dronline/shared"
	"dronline/shared/constant"
	gDto "dronline/shared/dto"
	"dronline/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	defaultPollInterval = 15
	defaultBatchSize    = 20
	defaultMaxAttempts  = 5
)

// Relay drains the notification outbox. Delivery is at least once: a crash
// between a successful Send and the status update redelivers on the next pass.
type Relay interface {
	Run(ctx context.Context)
	DispatchBatch(ctx context.Context) (int, error)
}

type relayImpl struct {
	repo   repository.Notification
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Notification, mailer mailer.Mailer, cfg *config.Config, otel otel.Otel) Relay {
	return &relayImpl{
		repo:   repo,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

func (r *relayImpl) Run(ctx context.Context) {
	interval := r.cfg.Outbox.PollIntervalSeconds
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	log.Info().Int("interval_seconds", interval).Msg("notification relay started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("notification relay stopped")

			return
		case <-ticker.C:
			if sent, err := r.DispatchBatch(ctx); err != nil {
				log.Error().Err(err).Msg("failed to dispatch notification batch")
			} else if sent > 0 {
				log.Info().Int("sent", sent).Msg("dispatched notifications")
			}
		}
	}
}

func (r *relayImpl) DispatchBatch(ctx context.Context) (sent int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".DispatchBatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	batchSize := r.cfg.Outbox.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	params := gDto.QueryParams{
		Limit:   batchSize,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	}

	pending, err := r.repo.GetAll(ctx, params, filter)
	if err != nil {
		return 0, err
	}

	for _, notification := range pending {
		if r.dispatch(ctx, notification) {
			sent++
		}
	}

	return sent, nil
}

func (r *relayImpl) dispatch(ctx context.Context, notification model.Notification) bool {
	maxAttempts := r.cfg.Outbox.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	filter := shared.FilterByID(notification.ID, model.FieldID, model.TableName)
	attempts := notification.Attempts + 1

	fields := map[string]any{
		model.FieldAttempts:      attempts,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if r.mailer.Send(ctx, notification.Recipient, notification.Subject, notification.Body) {
		fields[model.FieldStatus] = model.StatusSent
	} else {
		lastError := "smtp delivery failed"
		fields[model.FieldLastError] = lastError

		if attempts >= maxAttempts {
			fields[model.FieldStatus] = model.StatusFailed

			log.Error().
				Str("notification_id", notification.ID).
				Int("attempts", attempts).
				Msg("notification exhausted delivery attempts")
		}
	}

	if err := r.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("notification_id", notification.ID).Msg("failed to update notification state")

		return false
	}

	return fields[model.FieldStatus] == model.StatusSent
}
