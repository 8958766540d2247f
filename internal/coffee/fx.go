package coffee

import (
	"github.com/smallbiznis/coffeestore/internal/coffee/repository"
	"github.com/smallbiznis/coffeestore/internal/coffee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("coffee.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
