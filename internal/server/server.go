package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/coffeestore/internal/address"
	addressdomain "github.com/smallbiznis/coffeestore/internal/address/domain"
	"github.com/smallbiznis/coffeestore/internal/audit"
	auditdomain "github.com/smallbiznis/coffeestore/internal/audit/domain"
	"github.com/smallbiznis/coffeestore/internal/client"
	clientdomain "github.com/smallbiznis/coffeestore/internal/client/domain"
	"github.com/smallbiznis/coffeestore/internal/coffee"
	coffeedomain "github.com/smallbiznis/coffeestore/internal/coffee/domain"
	"github.com/smallbiznis/coffeestore/internal/config"
	"github.com/smallbiznis/coffeestore/internal/observability"
	obsmiddleware "github.com/smallbiznis/coffeestore/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/coffeestore/internal/observability/metrics"
	obstracing "github.com/smallbiznis/coffeestore/internal/observability/tracing"
	"github.com/smallbiznis/coffeestore/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	audit.Module,
	address.Module,
	client.Module,
	coffee.Module,
	ratelimit.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterAPIRoutes()
	}),
	fx.Invoke(RunHTTP),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	log        *zap.Logger
	clientSvc  clientdomain.Service
	coffeeSvc  coffeedomain.Service
	addressSvc addressdomain.Service
	auditSvc   auditdomain.Service
	obsMetrics *obsmetrics.Metrics
	limiter    *ratelimit.Limiter
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	ClientSvc  clientdomain.Service
	CoffeeSvc  coffeedomain.Service
	AddressSvc addressdomain.Service
	AuditSvc   auditdomain.Service `optional:"true"`
	ObsMetrics *obsmetrics.Metrics `optional:"true"`
	Limiter    *ratelimit.Limiter  `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        log.Named("http.server"),
		clientSvc:  p.ClientSvc,
		coffeeSvc:  p.CoffeeSvc,
		addressSvc: p.AddressSvc,
		auditSvc:   p.AuditSvc,
		obsMetrics: p.ObsMetrics,
		limiter:    p.Limiter,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")
	limited := s.WriteRateLimit()

	clients := api.Group("/clients")
	{
		clients.GET("", s.ListClients)
		clients.GET("/:id", s.GetClientByID)
		clients.POST("", limited, s.CreateClient)
		clients.PUT("/:id", limited, s.UpdateClient)
		clients.PUT("/:id/activate", limited, s.ActivateClient)
		clients.DELETE("/:id/inactivate", limited, s.InactivateClient)
		clients.GET("/:id/addresses", s.ListClientAddresses)
		clients.POST("/:id/addresses", limited, s.AddClientAddress)
	}

	coffees := api.Group("/coffees")
	{
		coffees.GET("", s.ListCoffees)
		coffees.GET("/:id", s.GetCoffeeByID)
		coffees.POST("", limited, s.CreateCoffee)
		coffees.PUT("/:id", limited, s.UpdateCoffee)
		coffees.PUT("/:id/activate", limited, s.ActivateCoffee)
		coffees.DELETE("/:id/inactivate", limited, s.InactivateCoffee)
	}

	api.DELETE("/adresses/:id", limited, s.DeleteAddress)

	api.GET("/audit-logs/:target_type/:target_id", s.ListAuditLogs)
}
