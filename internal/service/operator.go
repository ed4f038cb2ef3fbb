package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Leganyst/flight-roster/internal/repository"
)

// Ошибки разбора created_by.
var (
	ErrOperatorNotFound = errors.New("operator not found")
)

// resolveOperator принимает id пользователя или его username.
// Пустое значение — ростер без автора.
//   - uuid передаётся дальше как есть, существование проверит генератор;
//   - username ищется в хранилище.
func resolveOperator(ctx context.Context, users repository.UserRepository, raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if id, err := uuid.Parse(raw); err == nil {
		return &id, nil
	}

	u, err := users.FindByUsername(ctx, raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}
	return &u.ID, nil
}
