package usecase

import (
	"context"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
)

type EventProducer interface {
	WriteMessage(ctx context.Context, event *domain.Event) error
}
