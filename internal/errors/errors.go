package errors

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrValidation 輸入格式或數值不合法
	ErrValidation = errors.New("validation error")
	// ErrConflict 唯一鍵衝突
	ErrConflict = errors.New("conflict")
	// ErrNotFound 資料不存在
	ErrNotFound = errors.New("not found")
	// ErrOutOfStock 下單時商品無庫存
	ErrOutOfStock = errors.New("out of stock")
	// ErrInsufficientStock 庫存調整後會小於0
	ErrInsufficientStock = errors.New("insufficient stock")
)

// RecordError names the entity and key an operation failed on.
type RecordError struct {
	Entity string
	Key    string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Entity, e.Key, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewRecordError(entity, key string, err error) error {
	return &RecordError{
		Entity: entity,
		Key:    key,
		Err:    err,
	}
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// IsUniqueViolation 判斷是否為 driver 回傳的唯一鍵錯誤
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "unique constraint failed") ||
		strings.Contains(errStr, "duplicate key value") ||
		strings.Contains(errStr, "sqlstate 23505") ||
		strings.Contains(errStr, "error 1062")
}

// Translate maps storage errors onto the taxonomy, leaving everything else untouched.
func Translate(entity, key string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewRecordError(entity, key, ErrNotFound)
	case IsUniqueViolation(err):
		return NewRecordError(entity, key, ErrConflict)
	default:
		return err
	}
}

// IsBusiness reports whether err belongs to the taxonomy; anything else is a storage failure.
func IsBusiness(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrOutOfStock) ||
		errors.Is(err, ErrInsufficientStock)
}
