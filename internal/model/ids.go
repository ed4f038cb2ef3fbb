package model

import "github.com/google/uuid"

// ensureID проставляет идентификатор перед вставкой, если он не задан.
// gen_random_uuid() есть только в Postgres, поэтому id генерируем на стороне приложения.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
