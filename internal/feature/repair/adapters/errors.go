package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"calc_backend/internal/feature/repair/domain"
)

// translateError は gorm のエラーをドメインエラーに変換します。
// ErrRecordNotFound は notFound に、context のキャンセル・期限切れはそのまま返し、
// それ以外は原因を保持したまま ErrStoreUnavailable として扱います。
func translateError(err error, notFound error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, notFound)
	}
	// タイムアウトはストア障害ではなく呼び出し側の期限
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
