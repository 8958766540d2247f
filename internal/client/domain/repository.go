package domain

import "github.com/smallbiznis/coffeestore/pkg/repository"

type Repository interface {
	repository.Repository[Client]
}
