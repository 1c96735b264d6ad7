package domain

import "context"

type City struct {
	ID    int
	Name  string
	State string
}

type CityRepository interface {
	GetAll(ctx context.Context) ([]City, error)
}
