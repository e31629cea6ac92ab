package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// aiRequestContext carries a request ID and operation name through the
// lifecycle of one AI request so all its log lines correlate.
type aiRequestContext struct {
	requestID string
	operation string
	startedAt time.Time
	logger    zerolog.Logger
}

func newAIRequestContext(operation string) *aiRequestContext {
	requestID := uuid.NewString()
	return &aiRequestContext{
		requestID: requestID,
		operation: operation,
		startedAt: time.Now(),
		logger: log.With().
			Str("request_id", requestID).
			Str("operation", operation).
			Logger(),
	}
}

func (ctx *aiRequestContext) logStart(fields map[string]interface{}) {
	ctx.logger.Info().Fields(fields).Msg("AI request received")
}

func (ctx *aiRequestContext) logModelCheck(model string) {
	ctx.logger.Debug().Str("model", model).Msg("Checking model availability")
}

func (ctx *aiRequestContext) logProcessing(model string) {
	ctx.logger.Info().Str("model", model).Msg("Processing AI request")
}

func (ctx *aiRequestContext) logSuccess(fields map[string]interface{}) {
	ctx.logger.Info().
		Fields(fields).
		Dur("elapsed", time.Since(ctx.startedAt)).
		Msg("AI request completed")
}

func (ctx *aiRequestContext) logError(err error) {
	ctx.logger.Error().
		Err(err).
		Dur("elapsed", time.Since(ctx.startedAt)).
		Msg("AI request failed")
}
