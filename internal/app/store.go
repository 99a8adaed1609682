package app

import (
	"context"

	"github.com/misterclayt0n/ironlog/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/store_mock.go -package=mocks

// Store persists whole profiles. Get returns nil, nil when the profile does not exist.
type Store interface {
	Get(ctx context.Context, id string) (*models.Profile, error)
	Save(ctx context.Context, p *models.Profile) error
}

// Library resolves reference exercises and foods.
type Library interface {
	Exercise(id string) (models.Exercise, bool)
	Food(id string) (models.Food, bool)
}
