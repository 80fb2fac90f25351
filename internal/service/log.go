package service

import (
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"github.com/rs/zerolog"
)

// logFailure 業務錯誤記 warn, 其餘視為儲存層失敗記 error
func logFailure(logger *zerolog.Logger, err error, op string) {
	if apperr.IsBusiness(err) {
		logger.Warn().Err(err).Str("op", op).Msg("operation rejected")
		return
	}
	logger.Error().Err(err).Str("op", op).Msg("storage failure")
}
