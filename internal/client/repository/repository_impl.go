package repository

import (
	"github.com/smallbiznis/coffeestore/internal/client/domain"
	"github.com/smallbiznis/coffeestore/internal/clock"
	"github.com/smallbiznis/coffeestore/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	repository.Repository[domain.Client]
}

func Provide(db *gorm.DB, clk clock.Clock) domain.Repository {
	return &repo{Repository: repository.ProvideStore[domain.Client](db, clk)}
}
