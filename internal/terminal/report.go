package terminal

import (
	"errors"

	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
)

// report 印出錯誤後回到選單, 只有輸入結束才往上傳
func (c *Console) report(err error, op string) error {
	if err == nil {
		return nil
	}

	key := err.Error()
	var recErr *apperr.RecordError
	if errors.As(err, &recErr) {
		key = recErr.Key
	}

	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.printf("Dados inválidos: %v\n", err)
	case errors.Is(err, apperr.ErrConflict):
		c.printf("Registro já existe ou está em uso: %s\n", key)
	case errors.Is(err, apperr.ErrNotFound):
		c.printf("Registro não encontrado: %s\n", key)
	case errors.Is(err, apperr.ErrOutOfStock):
		c.printf("Produto sem estoque: %s\n", key)
	case errors.Is(err, apperr.ErrInsufficientStock):
		c.printf("Estoque insuficiente: %s\n", key)
	default:
		c.logger.Error().Err(err).Str("op", op).Msg("command failed")
		c.printf("Erro inesperado: %v\n", err)
	}
	return c.hold()
}
