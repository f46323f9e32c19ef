package usecase

import (
	"context"
	"iter"

	"livewell/internal/domain/entity"
)

// ChatUsecase runs one assistant turn.
type ChatUsecase interface {
	// Converse streams the reply to message as text fragments, in model order.
	// The sequence is lazy and single-use. It ends early with a non-nil error,
	// after which no more fragments follow.
	Converse(ctx context.Context, claims *entity.ClaimSet, message string) iter.Seq2[string, error]
}
