package impl

import (
	"io"
	"log/slog"

	"tasktag/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPrincipal() entity.Principal {
	return entity.Principal{
		UserID:   uuid.New(),
		Username: "alice",
	}
}
