package repository

import (
	"github.com/smallbiznis/coffeestore/internal/clock"
	"github.com/smallbiznis/coffeestore/internal/coffee/domain"
	"github.com/smallbiznis/coffeestore/pkg/repository"
	"gorm.io/gorm"
)

type repo struct {
	repository.Repository[domain.Coffee]
}

func Provide(db *gorm.DB, clk clock.Clock) domain.Repository {
	return &repo{Repository: repository.ProvideStore[domain.Coffee](db, clk)}
}
